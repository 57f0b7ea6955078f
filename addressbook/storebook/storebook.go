/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package storebook implements addressbook.AddressBook on top of a
// datastore.ContactStore.
package storebook

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/suparena/contactstore/addressbook"
	"github.com/suparena/contactstore/contactmodels"
	"github.com/suparena/contactstore/datastore"
	"github.com/suparena/contactstore/errors"
)

// AddressBook keeps its contacts in a ContactStore, tagged with its key.
// Several address books may share one store.
type AddressBook struct {
	key         string
	displayName string
	permissions contactmodels.Permission
	store       datastore.ContactStore
	now         func() time.Time
	newID       func() string
	log         zerolog.Logger
}

// Option configures an AddressBook.
type Option func(*AddressBook)

// WithPermissions sets the reported permission bitmask. The default is PermissionAll.
func WithPermissions(p contactmodels.Permission) Option {
	return func(ab *AddressBook) { ab.permissions = p }
}

// WithLogger sets the logger for create, update and delete events.
func WithLogger(log zerolog.Logger) Option {
	return func(ab *AddressBook) { ab.log = log }
}

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(ab *AddressBook) { ab.now = now }
}

// WithIDFunc overrides how ids are assigned to new contacts.
func WithIDFunc(f func() string) Option {
	return func(ab *AddressBook) { ab.newID = f }
}

// New creates an address book over store.
func New(key, displayName string, store datastore.ContactStore, opts ...Option) *AddressBook {
	ab := &AddressBook{
		key:         key,
		displayName: displayName,
		permissions: contactmodels.PermissionAll,
		store:       store,
		now:         time.Now,
		newID:       uuid.NewString,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(ab)
	}
	return ab
}

func (ab *AddressBook) Key() string { return ab.key }

func (ab *AddressBook) DisplayName() string { return ab.displayName }

func (ab *AddressBook) Permissions() contactmodels.Permission { return ab.permissions }

// Search lists the address book and keeps the contacts matching pattern,
// then applies the offset and limit.
func (ab *AddressBook) Search(ctx context.Context, pattern string, searchProperties []string, opts contactmodels.SearchOptions) ([]*contactmodels.Contact, error) {
	recs, err := ab.store.ListByBook(ctx, ab.key)
	if err != nil {
		return nil, fmt.Errorf("list address book %q: %w", ab.key, err)
	}

	matches := make([]*contactmodels.Contact, 0, len(recs))
	for _, rec := range recs {
		c := rec.Contact()
		if contactmodels.Match(c, pattern, searchProperties, opts) {
			matches = append(matches, c)
		}
	}
	return contactmodels.Paginate(matches, opts), nil
}

// Delete removes the contact and reports whether this address book held it.
func (ab *AddressBook) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := ab.owned(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if err := ab.store.Delete(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete contact %q: %w", id, err)
	}
	ab.log.Debug().Str("address_book", ab.key).Str("contact", id).Msg("deleted contact")
	return true, nil
}

// CreateOrUpdate creates the contact when it carries no id, assigning a
// new one, and otherwise replaces the existing contact's properties.
// Updating an id this address book does not hold is a not found error.
func (ab *AddressBook) CreateOrUpdate(ctx context.Context, properties *contactmodels.Contact) (*contactmodels.Contact, error) {
	if properties == nil {
		return nil, errors.NewValidationError("", "contact is required")
	}

	id := properties.ID()
	if id == "" {
		c := properties.Clone().SetID(ab.newID())
		rec := contactmodels.NewRecord(ab.key, c, ab.now())
		if err := ab.store.Create(ctx, rec); err != nil {
			return nil, fmt.Errorf("create contact: %w", err)
		}
		ab.log.Debug().Str("address_book", ab.key).Str("contact", rec.ID).Msg("created contact")
		return rec.Contact(), nil
	}

	existing, err := ab.owned(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := contactmodels.NewRecord(ab.key, properties, ab.now())
	rec.CreatedAt = existing.CreatedAt
	if err := ab.store.Put(ctx, rec); err != nil {
		return nil, fmt.Errorf("update contact %q: %w", id, err)
	}
	ab.log.Debug().Str("address_book", ab.key).Str("contact", id).Msg("updated contact")
	return rec.Contact(), nil
}

// owned fetches the record and checks it belongs to this address book.
func (ab *AddressBook) owned(ctx context.Context, id string) (*contactmodels.ContactRecord, error) {
	rec, err := ab.store.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.BookKey != ab.key {
		return nil, errors.NewNotFoundError("contact", id)
	}
	return rec, nil
}

var _ addressbook.AddressBook = (*AddressBook)(nil)
