/*
Package ddb loads multitype item lists from DynamoDB.

The source assumes a single-table design: one partition holds records of several
entity types, each carrying its entity name in the EntityType attribute. Records
are returned in sort key order, so the table's sort key defines list order:

	client, _ := ddb.NewDynamoDBClient(ctx, ddb.ClientConfig{Region: "us-east-1"})
	src, _ := ddb.NewSource(client, "feeds", "FEED#home", entities,
	    ddb.WithSortKeyPrefix("ITEM#"),
	    ddb.WithPageSize(25),
	    ddb.WithMaxRetries(3),
	)
	items, err := src.Load(ctx)

Throttling and internal server errors are retried with linear backoff. Records
whose entity name is not registered are skipped with a warning, or fail the load
when WithStrict is set.

Stream delivers the same items one at a time on a channel, with their raw
attributes and page metadata, for feeds too large to hold in memory:

	for r := range src.Stream(ctx) {
	    if r.Err != nil {
	        return r.Err
	    }
	    adapter.SetItems(append(adapter.Items(), r.Item))
	}
*/
package ddb
