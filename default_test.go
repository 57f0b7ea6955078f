/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package contactstore

import (
	"context"
	"testing"

	"github.com/suparena/contactstore/addressbook/mock"
	"github.com/suparena/contactstore/contactmodels"
)

func TestDefaultRegistry(t *testing.T) {
	Clear()
	defer Clear()

	if IsEnabled() {
		t.Fatal("Default registry should start empty")
	}

	ab := mock.New("book1", "Personal").
		WithSearchResult(contactNamed("c-1", "Jane")).
		WithDeleteResult(true)
	Register(ab)

	if books := ListAddressBooks(); books["book1"] != "Personal" {
		t.Errorf("Expected book1 in the default registry, got %v", books)
	}

	ctx := context.Background()
	found, err := Search(ctx, "", nil, contactmodels.SearchOptions{})
	if err != nil || len(found) != 1 {
		t.Errorf("Expected one contact, got %v (%v)", found, err)
	}

	if ok, err := Delete(ctx, "c-1", "book1"); err != nil || !ok {
		t.Errorf("Expected (true, nil), got (%v, %v)", ok, err)
	}

	saved, err := CreateOrUpdate(ctx, contactNamed("c-2", "John"), "book1")
	if err != nil || saved.ID() != "c-2" {
		t.Errorf("Expected the echoed contact, got %v (%v)", saved, err)
	}

	Unregister(ab)
	if IsEnabled() {
		t.Error("Default registry should be empty after Unregister")
	}

	RegisterLoader(func(r *Registry) { r.Register(ab) })
	if !IsEnabled() {
		t.Error("Default registry should run its loaders")
	}
}
