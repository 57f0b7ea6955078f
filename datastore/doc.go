/*
Package datastore defines the persistence contract behind store-backed
address books.

	type ContactStore interface {
	    GetOne(ctx context.Context, id string) (*contactmodels.ContactRecord, error)
	    Create(ctx context.Context, rec contactmodels.ContactRecord) error
	    Put(ctx context.Context, rec contactmodels.ContactRecord) error
	    Delete(ctx context.Context, id string) error
	    ListByBook(ctx context.Context, bookKey string) ([]contactmodels.ContactRecord, error)
	}

Implementations:
  - ddb: DynamoDB single-table store with a GSI per address book
  - rdb: SQL store on GORM (SQLite)
  - vcf: one vCard file per address book
  - memory: in-memory store with error injection, used for tests and demos

Missing records are reported with errors.NewNotFoundError and id clashes
on Create with errors.NewAlreadyExistsError.
*/
package datastore
