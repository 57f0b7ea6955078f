/*
Package addressbook defines the provider contract consumed by the registry.

An AddressBook is one named collection of contacts:

	type AddressBook interface {
	    Key() string
	    DisplayName() string
	    Permissions() contactmodels.Permission
	    Search(ctx context.Context, pattern string, searchProperties []string, opts contactmodels.SearchOptions) ([]*contactmodels.Contact, error)
	    Delete(ctx context.Context, id string) (bool, error)
	    CreateOrUpdate(ctx context.Context, properties *contactmodels.Contact) (*contactmodels.Contact, error)
	}

Implementations:
  - storebook: an address book over any datastore.ContactStore
  - mock: a recording test double
*/
package addressbook
