/*
Package backend turns configured address books into registered providers.

Each backend name ("memory", "vcf", "sqlite", "dynamodb") maps to a Factory
that opens a datastore.ContactStore for one config.AddressBook:

	backend.RegisterFactory("ldap", func(ctx context.Context, ab config.AddressBook) (datastore.ContactStore, error) {
	    return ldapstore.Dial(ctx, ab.Endpoint)
	})

Register opens every configured address book, wraps its store in a
storebook.AddressBook carrying the configured permissions and files it in a
contactstore.Registry. Factories are usually registered from init().
*/
package backend
