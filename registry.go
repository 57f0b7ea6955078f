/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package contactstore

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/suparena/contactstore/addressbook"
	"github.com/suparena/contactstore/contactmodels"
	"github.com/suparena/contactstore/errors"
)

// Loader registers address books on first use of the registry.
// A loader must only call Register, Unregister or RegisterLoader.
type Loader func(r *Registry)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registry lifecycle events.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// Registry maps address book keys to providers and dispatches contact
// operations to them. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	books   map[string]addressbook.AddressBook
	order   []string
	loaders []Loader
	// gen changes on Clear so load never trims a queue it did not run.
	gen uint64

	// loadMu serializes loader runs so readers never observe a half-loaded registry.
	loadMu sync.Mutex
	log    zerolog.Logger
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		books: make(map[string]addressbook.AddressBook),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register files ab under ab.Key(), replacing any address book already
// registered with that key. A replaced entry keeps its search position.
func (r *Registry) Register(ab addressbook.AddressBook) {
	key := ab.Key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.books[key]; !exists {
		r.order = append(r.order, key)
	}
	r.books[key] = ab
	r.log.Debug().Str("address_book", key).Msg("registered address book")
}

// Unregister removes the address book filed under ab.Key(), if any.
func (r *Registry) Unregister(ab addressbook.AddressBook) {
	key := ab.Key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.books[key]; !exists {
		return
	}
	delete(r.books, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.log.Debug().Str("address_book", key).Msg("unregistered address book")
}

// RegisterLoader queues fn to run before the next read operation.
func (r *Registry) RegisterLoader(fn Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders = append(r.loaders, fn)
}

// Clear removes every address book and every pending loader.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.books = make(map[string]addressbook.AddressBook)
	r.order = nil
	r.loaders = nil
	r.gen++
	r.log.Debug().Msg("cleared address books")
}

// load runs pending loaders. Loaders stay queued until they have run so a
// concurrent reader waits on loadMu instead of seeing a partial registry.
func (r *Registry) load() {
	r.mu.RLock()
	pending := len(r.loaders) > 0
	r.mu.RUnlock()
	if !pending {
		return
	}

	r.loadMu.Lock()
	defer r.loadMu.Unlock()

	for {
		r.mu.RLock()
		loaders := append([]Loader(nil), r.loaders...)
		gen := r.gen
		r.mu.RUnlock()
		if len(loaders) == 0 {
			return
		}

		for _, fn := range loaders {
			fn(r)
		}

		r.mu.Lock()
		if r.gen == gen {
			r.loaders = r.loaders[len(loaders):]
		}
		r.mu.Unlock()
		r.log.Debug().Int("loaders", len(loaders)).Msg("ran address book loaders")
	}
}

// IsEnabled reports whether at least one address book is registered.
func (r *Registry) IsEnabled() bool {
	r.load()

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books) > 0
}

// Get returns the address book registered under key.
func (r *Registry) Get(key string) (addressbook.AddressBook, bool) {
	r.load()

	r.mu.RLock()
	defer r.mu.RUnlock()
	ab, ok := r.books[key]
	return ab, ok
}

// AddressBooks returns the registered address books in search order.
func (r *Registry) AddressBooks() []addressbook.AddressBook {
	r.load()

	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]addressbook.AddressBook, 0, len(r.order))
	for _, key := range r.order {
		books = append(books, r.books[key])
	}
	return books
}

// ListAddressBooks maps every registered key to its display name.
func (r *Registry) ListAddressBooks() map[string]string {
	r.load()

	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make(map[string]string, len(r.books))
	for key, ab := range r.books {
		names[key] = ab.DisplayName()
	}
	return names
}

// Search asks every address book, in registration order, for contacts
// matching pattern and concatenates the results. An empty pattern matches
// every contact. Results are not deduplicated across address books.
// A provider error aborts the search and is returned as is.
func (r *Registry) Search(ctx context.Context, pattern string, searchProperties []string, opts contactmodels.SearchOptions) ([]*contactmodels.Contact, error) {
	result := make([]*contactmodels.Contact, 0)
	for _, ab := range r.AddressBooks() {
		found, err := ab.Search(ctx, pattern, searchProperties, opts)
		if err != nil {
			return nil, err
		}
		result = append(result, found...)
	}

	r.log.Debug().
		Str("pattern", pattern).
		Strs("properties", searchProperties).
		Int("results", len(result)).
		Msg("searched address books")
	return result, nil
}

// Delete removes a contact from the address book registered under
// addressBookKey. It fails with a not-found error for an unknown key and a
// permission error when the address book does not allow deletes; in both
// cases no provider is called.
func (r *Registry) Delete(ctx context.Context, id string, addressBookKey string) (bool, error) {
	ab, err := r.permitted(addressBookKey, contactmodels.PermissionDelete, "delete")
	if err != nil {
		return false, err
	}
	return ab.Delete(ctx, id)
}

// CreateOrUpdate stores properties in the address book registered under
// addressBookKey and returns the contact the provider persisted. Lookup
// and permission failures are reported as in Delete, using the create bit.
func (r *Registry) CreateOrUpdate(ctx context.Context, properties *contactmodels.Contact, addressBookKey string) (*contactmodels.Contact, error) {
	ab, err := r.permitted(addressBookKey, contactmodels.PermissionCreate, "create")
	if err != nil {
		return nil, err
	}
	return ab.CreateOrUpdate(ctx, properties)
}

func (r *Registry) permitted(key string, want contactmodels.Permission, op string) (addressbook.AddressBook, error) {
	ab, ok := r.Get(key)
	if !ok {
		return nil, errors.NewNotFoundError("address book", key)
	}
	if !ab.Permissions().Has(want) {
		r.log.Debug().Str("address_book", key).Str("operation", op).Msg("operation not permitted")
		return nil, errors.NewPermissionDeniedError(op, key)
	}
	return ab, nil
}
