/*
Package contactstore lets an application search, create, update and delete
contacts across a set of registered address books.

The Registry stores no contacts itself. It maps address book keys to
providers implementing addressbook.AddressBook and dispatches to them:
  - Search fans out to every address book and concatenates the results
  - CreateOrUpdate and Delete go to the one address book named by key,
    after checking that its permission bitmask allows the operation

Basic Usage:

	reg := contactstore.New(contactstore.WithLogger(log))

	// Register an address book backed by any datastore
	personal := storebook.New("personal", "Personal", memory.New())
	reg.Register(personal)

	// Create a contact; the returned copy carries its new id
	jane, err := reg.CreateOrUpdate(ctx, contactmodels.NewContact().
	    Set(contactmodels.FieldFormattedName, "Jane Doe").
	    Set(contactmodels.FieldEmail, "jane@example.com"), "personal")

	// Search every address book
	found, err := reg.Search(ctx, "jane", []string{contactmodels.FieldEmail}, contactmodels.SearchOptions{})

Lookup failures are reported with the errors package: an unknown address
book key matches errors.ErrNotFound and a missing permission bit matches
errors.ErrPermissionDenied. Provider errors are returned unchanged.

Hosts that prefer a process-wide registry can use the package-level
functions, which operate on Default.
*/
package contactstore
