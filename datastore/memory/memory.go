/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides an in-memory ContactStore
package memory

import (
	"context"
	"sync"

	"github.com/suparena/contactstore/contactmodels"
	"github.com/suparena/contactstore/errors"
)

// Store is an in-memory implementation of datastore.ContactStore
type Store struct {
	mu          sync.RWMutex
	data        map[string]contactmodels.ContactRecord
	order       []string
	listFunc    func(ctx context.Context, bookKey string) ([]contactmodels.ContactRecord, error)
	putError    error
	deleteError error
	listError   error
}

// New creates a new empty Store
func New() *Store {
	return &Store{
		data: make(map[string]contactmodels.ContactRecord),
	}
}

// WithListFunc sets a custom list function for testing
func (m *Store) WithListFunc(f func(ctx context.Context, bookKey string) ([]contactmodels.ContactRecord, error)) *Store {
	m.listFunc = f
	return m
}

// WithPutError makes Create and Put operations return an error
func (m *Store) WithPutError(err error) *Store {
	m.putError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *Store) WithDeleteError(err error) *Store {
	m.deleteError = err
	return m
}

// WithListError makes ListByBook operations return an error
func (m *Store) WithListError(err error) *Store {
	m.listError = err
	return m
}

// GetOne retrieves a record by id
func (m *Store) GetOne(ctx context.Context, id string) (*contactmodels.ContactRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if rec, exists := m.data[id]; exists {
		return &rec, nil
	}
	return nil, errors.NewNotFoundError("contact", id)
}

// Create stores a record whose id is not taken yet
func (m *Store) Create(ctx context.Context, rec contactmodels.ContactRecord) error {
	if m.putError != nil {
		return m.putError
	}
	if rec.ID == "" {
		return errors.NewValidationError("id", "must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[rec.ID]; exists {
		return errors.NewAlreadyExistsError("contact", rec.ID)
	}
	m.data[rec.ID] = rec
	m.order = append(m.order, rec.ID)
	return nil
}

// Put stores a record, replacing any record with the same id
func (m *Store) Put(ctx context.Context, rec contactmodels.ContactRecord) error {
	if m.putError != nil {
		return m.putError
	}
	if rec.ID == "" {
		return errors.NewValidationError("id", "must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[rec.ID]; !exists {
		m.order = append(m.order, rec.ID)
	}
	m.data[rec.ID] = rec
	return nil
}

// Delete removes a record by id
func (m *Store) Delete(ctx context.Context, id string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[id]; !exists {
		return errors.NewNotFoundError("contact", id)
	}
	delete(m.data, id)
	for i, k := range m.order {
		if k == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListByBook returns the records of one address book in insertion order
func (m *Store) ListByBook(ctx context.Context, bookKey string) ([]contactmodels.ContactRecord, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, bookKey)
	}
	if m.listError != nil {
		return nil, m.listError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]contactmodels.ContactRecord, 0)
	for _, id := range m.order {
		if rec := m.data[id]; rec.BookKey == bookKey {
			results = append(results, rec)
		}
	}
	return results, nil
}

// Helper methods for testing

// Count returns the number of stored records
func (m *Store) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *Store) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]contactmodels.ContactRecord)
	m.order = nil
}
