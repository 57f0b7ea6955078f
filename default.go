/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package contactstore

import (
	"context"

	"github.com/suparena/contactstore/addressbook"
	"github.com/suparena/contactstore/contactmodels"
)

// Default is the process-wide registry behind the package-level functions.
var Default = New()

// Register files ab in the Default registry.
func Register(ab addressbook.AddressBook) { Default.Register(ab) }

// Unregister removes ab from the Default registry.
func Unregister(ab addressbook.AddressBook) { Default.Unregister(ab) }

// RegisterLoader queues fn on the Default registry.
func RegisterLoader(fn Loader) { Default.RegisterLoader(fn) }

// Clear empties the Default registry.
func Clear() { Default.Clear() }

// IsEnabled reports whether the Default registry holds an address book.
func IsEnabled() bool { return Default.IsEnabled() }

// ListAddressBooks lists the Default registry's address books.
func ListAddressBooks() map[string]string { return Default.ListAddressBooks() }

// Search searches every address book in the Default registry.
func Search(ctx context.Context, pattern string, searchProperties []string, opts contactmodels.SearchOptions) ([]*contactmodels.Contact, error) {
	return Default.Search(ctx, pattern, searchProperties, opts)
}

// Delete removes a contact through the Default registry.
func Delete(ctx context.Context, id string, addressBookKey string) (bool, error) {
	return Default.Delete(ctx, id, addressBookKey)
}

// CreateOrUpdate stores a contact through the Default registry.
func CreateOrUpdate(ctx context.Context, properties *contactmodels.Contact, addressBookKey string) (*contactmodels.Contact, error) {
	return Default.CreateOrUpdate(ctx, properties, addressBookKey)
}
