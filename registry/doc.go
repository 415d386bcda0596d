/*
Package registry holds the two registries multitype is built on.

Type registry:
Types[H] is an ordered list of bindings (item type, handler, linker). A binding's
position in the list is the dispatch code a host uses as its recycling-pool key,
so codes are dense and a one-to-many block occupies a contiguous run of codes.

	types := registry.NewTypes[Handler](0)
	types.Register(registry.NewBinding(reflect.TypeFor[Post](), postHandler, nil))
	idx := types.FirstIndexOf(reflect.TypeOf(item))

Lookup is two-phase: an exact type match always wins; only when none exists is the
first binding declared for an interface the type implements used.

Entity registry:
Entities maps the type discriminator stored with a raw record to a factory for the
Go value it decodes into:

	registry.RegisterEntity("Post", func() any { return &feed.Post{} })

Neither registry is meant to be mutated while it is being read: populate them during
initialization.
*/
package registry
