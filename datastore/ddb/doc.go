/*
Package ddb provides a DynamoDB implementation of datastore.ContactStore.

The Store supports:
  - Single-table design; contact items are tagged with EntityType "Contact"
  - Macro-based key expansion (e.g., "CONTACT#{ID}")
  - One GSI partition per address book, sorted by creation time
  - Conditional writes: Create refuses taken ids, Delete reports missing ones
  - Paged listing with retry on throttling and transient errors

Key Layout:
Keys are macro templates expanded with item attributes:

	ddb.KeyLayout{
	    PK:     "CONTACT#{ID}",
	    SK:     "CONTACT#{ID}",
	    GSI1PK: "BOOK#{BookKey}",
	    GSI1SK: "CONTACT#{CreatedAt}#{ID}",
	}

Usage:

	client, err := ddb.NewDynamoDBClient(ctx, ddb.ClientConfig{Region: "us-east-1"})
	store := ddb.New(client, "Contacts",
	    ddb.WithRetry(ddb.WithMaxRetries(5), ddb.WithPageSize(50)),
	)

The integration tests (build tag "integration") read AWS settings from a
.env file or the environment.
*/
package ddb
