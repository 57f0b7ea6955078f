/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package addressbook

import (
	"context"

	"github.com/suparena/contactstore/contactmodels"
)

// AddressBook is a contact provider the registry dispatches to. Providers
// own storage, matching and validation; implementations must be safe for
// concurrent use.
type AddressBook interface {
	// Key is the stable identifier the registry files the address book under.
	Key() string

	// DisplayName is a human-readable label.
	DisplayName() string

	// Permissions reports the operations the address book allows.
	Permissions() contactmodels.Permission

	// Search returns the contacts whose searched properties match pattern.
	Search(ctx context.Context, pattern string, searchProperties []string, opts contactmodels.SearchOptions) ([]*contactmodels.Contact, error)

	// Delete removes the contact and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)

	// CreateOrUpdate stores the contact. A contact with an id updates the
	// existing record; one without is created and returned with its new id.
	CreateOrUpdate(ctx context.Context, properties *contactmodels.Contact) (*contactmodels.Contact, error)
}
