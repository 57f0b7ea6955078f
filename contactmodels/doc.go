/*
Package contactmodels defines the data types shared by the registry, the
address book providers and the datastores.

A Contact is an ordered list of fields. Each field carries a property name,
usually one of the vCard names exported here (FN, EMAIL, TEL, ...), and one
or more string values:

	c := contactmodels.NewContact().
	    Set(contactmodels.FieldFormattedName, "Jane Doe").
	    Set(contactmodels.FieldEmail, "jane@example.com", "jd@example.org")

The reserved "id" field identifies a stored contact. Providers treat a
contact carrying an id as an update and one without as a create.

Permission is the bitmask an address book reports for the mutating
operations it allows. SearchOptions, Match and Paginate give providers a
common reading of the search arguments.

ContactRecord is the persisted form written by datastores, with
timestamps in strfmt.DateTime.
*/
package contactmodels
