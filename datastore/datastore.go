/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/contactstore/contactmodels"
)

// ContactStore persists contact records for store-backed address books.
// Records of every address book may share one store; ListByBook selects
// one book.
type ContactStore interface {
	// GetOne returns the record with the given id, or a not found error.
	GetOne(ctx context.Context, id string) (*contactmodels.ContactRecord, error)

	// Create stores a new record and fails with an already exists error
	// when the id is taken.
	Create(ctx context.Context, rec contactmodels.ContactRecord) error

	// Put stores the record, replacing any record with the same id.
	Put(ctx context.Context, rec contactmodels.ContactRecord) error

	// Delete removes the record with the given id, or returns a not found error.
	Delete(ctx context.Context, id string) error

	// ListByBook returns the records of one address book in creation order.
	ListByBook(ctx context.Context, bookKey string) ([]contactmodels.ContactRecord, error)
}
