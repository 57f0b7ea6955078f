/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package backend

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/suparena/contactstore"
	"github.com/suparena/contactstore/addressbook/storebook"
	"github.com/suparena/contactstore/config"
	"github.com/suparena/contactstore/datastore"
	"github.com/suparena/contactstore/datastore/ddb"
	"github.com/suparena/contactstore/datastore/memory"
	"github.com/suparena/contactstore/datastore/rdb"
	"github.com/suparena/contactstore/datastore/vcf"
)

// Factory opens the contact store behind one configured address book.
type Factory func(ctx context.Context, ab config.AddressBook) (datastore.ContactStore, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

func init() {
	RegisterFactory(config.BackendMemory, openMemory)
	RegisterFactory(config.BackendVCF, openVCF)
	RegisterFactory(config.BackendSQLite, openSQLite)
	RegisterFactory(config.BackendDynamoDB, openDynamoDB)
}

// RegisterFactory registers fn for the backend name.
// If a factory is already registered for the name, it panics to prevent accidental overrides.
func RegisterFactory(name string, fn Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("backend: factory %q already registered", name))
	}
	factories[name] = fn
}

// GetFactory returns the factory registered for name.
func GetFactory(name string) (Factory, error) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("backend: no factory registered for %q", name)
	}
	return fn, nil
}

// Names lists the registered backend names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open builds the address book described by ab.
func Open(ctx context.Context, ab config.AddressBook) (*storebook.AddressBook, error) {
	fn, err := GetFactory(ab.Backend)
	if err != nil {
		return nil, err
	}
	perm, err := ab.PermissionMask()
	if err != nil {
		return nil, fmt.Errorf("address book %q: %w", ab.Key, err)
	}
	store, err := fn(ctx, ab)
	if err != nil {
		return nil, fmt.Errorf("open %s backend for address book %q: %w", ab.Backend, ab.Key, err)
	}
	return storebook.New(ab.Key, ab.Name, store,
		storebook.WithPermissions(perm),
		storebook.WithLogger(*zerolog.Ctx(ctx)),
	), nil
}

// Register opens every address book in cfg and registers it with r, in
// configuration order. Nothing is registered when any book fails to open.
func Register(ctx context.Context, r *contactstore.Registry, cfg *config.Config) error {
	books := make([]*storebook.AddressBook, 0, len(cfg.AddressBooks))
	for _, ab := range cfg.AddressBooks {
		book, err := Open(ctx, ab)
		if err != nil {
			return err
		}
		books = append(books, book)
	}
	for _, book := range books {
		r.Register(book)
	}
	return nil
}

func openMemory(_ context.Context, _ config.AddressBook) (datastore.ContactStore, error) {
	return memory.New(), nil
}

func openVCF(_ context.Context, ab config.AddressBook) (datastore.ContactStore, error) {
	return vcf.Open(ab.Path, ab.Key)
}

func openSQLite(_ context.Context, ab config.AddressBook) (datastore.ContactStore, error) {
	db, err := rdb.OpenFromURL(ab.DSN)
	if err != nil {
		return nil, err
	}
	if err := rdb.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return rdb.New(db), nil
}

func openDynamoDB(ctx context.Context, ab config.AddressBook) (datastore.ContactStore, error) {
	client, err := ddb.NewDynamoDBClient(ctx, ddb.ClientConfig{
		Region:   ab.Region,
		Endpoint: ab.Endpoint,
	})
	if err != nil {
		return nil, err
	}
	return ddb.New(client, ab.Table, ddb.WithLogger(*zerolog.Ctx(ctx))), nil
}
