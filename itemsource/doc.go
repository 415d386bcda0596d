/*
Package itemsource defines where the heterogeneous item lists handed to a
multitype.Adapter come from.

Every Source returns a fresh slice of typed values, materialised through a
registry.Entities that maps the record's type discriminator to a Go value:

	entities := registry.NewEntities()
	entities.Register("Post", func() any { return &feed.Post{} })

Implementations:
  - Static: in-memory list, used by tests
  - ddb: a single DynamoDB table, discriminated by the EntityType attribute
  - yamlfile: a YAML fixture whose entries carry a type key
  - cache: a read-through TTL cache in front of any other Source
*/
package itemsource
