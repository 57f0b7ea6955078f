/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a recording AddressBook for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/contactstore/contactmodels"
)

// SearchCall records the arguments of one Search call
type SearchCall struct {
	Pattern string
	Props   []string
	Opts    contactmodels.SearchOptions
}

// AddressBook is a mock implementation of addressbook.AddressBook for testing
type AddressBook struct {
	mu          sync.Mutex
	key         string
	displayName string
	permissions contactmodels.Permission

	searchResult []*contactmodels.Contact
	searchError  error
	deleteResult bool
	deleteError  error
	saveFunc     func(*contactmodels.Contact) (*contactmodels.Contact, error)

	searchCalls []SearchCall
	deleteCalls []string
	saveCalls   []*contactmodels.Contact
}

// New creates a mock address book with every permission granted
func New(key, displayName string) *AddressBook {
	return &AddressBook{
		key:         key,
		displayName: displayName,
		permissions: contactmodels.PermissionAll,
	}
}

// WithPermissions sets the reported permission bitmask
func (m *AddressBook) WithPermissions(p contactmodels.Permission) *AddressBook {
	m.permissions = p
	return m
}

// WithSearchResult sets the contacts every Search call returns
func (m *AddressBook) WithSearchResult(contacts ...*contactmodels.Contact) *AddressBook {
	m.searchResult = contacts
	return m
}

// WithSearchError makes Search return an error
func (m *AddressBook) WithSearchError(err error) *AddressBook {
	m.searchError = err
	return m
}

// WithDeleteResult sets the value Delete reports
func (m *AddressBook) WithDeleteResult(ok bool) *AddressBook {
	m.deleteResult = ok
	return m
}

// WithDeleteError makes Delete return an error
func (m *AddressBook) WithDeleteError(err error) *AddressBook {
	m.deleteError = err
	return m
}

// WithSaveFunc sets the function CreateOrUpdate delegates to
func (m *AddressBook) WithSaveFunc(f func(*contactmodels.Contact) (*contactmodels.Contact, error)) *AddressBook {
	m.saveFunc = f
	return m
}

func (m *AddressBook) Key() string { return m.key }

func (m *AddressBook) DisplayName() string { return m.displayName }

func (m *AddressBook) Permissions() contactmodels.Permission { return m.permissions }

// Search records the call and returns the canned result
func (m *AddressBook) Search(ctx context.Context, pattern string, searchProperties []string, opts contactmodels.SearchOptions) ([]*contactmodels.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.searchCalls = append(m.searchCalls, SearchCall{Pattern: pattern, Props: searchProperties, Opts: opts})
	if m.searchError != nil {
		return nil, m.searchError
	}
	return m.searchResult, nil
}

// Delete records the call and returns the canned result
func (m *AddressBook) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deleteCalls = append(m.deleteCalls, id)
	if m.deleteError != nil {
		return false, m.deleteError
	}
	return m.deleteResult, nil
}

// CreateOrUpdate records the call. Without a save func it echoes the input back.
func (m *AddressBook) CreateOrUpdate(ctx context.Context, properties *contactmodels.Contact) (*contactmodels.Contact, error) {
	m.mu.Lock()
	m.saveCalls = append(m.saveCalls, properties)
	saveFunc := m.saveFunc
	m.mu.Unlock()

	if saveFunc != nil {
		return saveFunc(properties)
	}
	return properties, nil
}

// Helper methods for testing

// SearchCalls returns the recorded Search calls
func (m *AddressBook) SearchCalls() []SearchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SearchCall(nil), m.searchCalls...)
}

// DeleteCalls returns the ids passed to Delete
func (m *AddressBook) DeleteCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleteCalls...)
}

// SaveCalls returns the contacts passed to CreateOrUpdate
func (m *AddressBook) SaveCalls() []*contactmodels.Contact {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*contactmodels.Contact(nil), m.saveCalls...)
}

// Calls returns the total number of delegated operations
func (m *AddressBook) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.searchCalls) + len(m.deleteCalls) + len(m.saveCalls)
}
