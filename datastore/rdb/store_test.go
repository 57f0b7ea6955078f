/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/suparena/contactstore/contactmodels"
	"github.com/suparena/contactstore/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := OpenFromURL("sqlite:" + filepath.Join(t.TempDir(), "contacts.db"))
	if err != nil {
		t.Fatalf("OpenFromURL() error = %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}
	return New(db)
}

func newRecord(id, book string, created time.Time) contactmodels.ContactRecord {
	c := contactmodels.NewContact().
		SetID(id).
		Set(contactmodels.FieldFormattedName, "Contact "+id).
		Set(contactmodels.FieldTelephone, "+1 555 0100", "+1 555 0101")
	return contactmodels.NewRecord(book, c, created)
}

func TestOpenFromURL(t *testing.T) {
	if _, err := OpenFromURL("postgres://localhost/contacts"); err == nil {
		t.Error("OpenFromURL() expected error for unsupported scheme")
	}
	if _, err := OpenFromURL("sqlite3:" + filepath.Join(t.TempDir(), "alias.db")); err != nil {
		t.Errorf("OpenFromURL() sqlite3 alias error = %v", err)
	}
}

func TestStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	created := time.Date(2025, 4, 1, 8, 30, 0, 0, time.UTC)

	if err := s.Create(ctx, newRecord("c-1", "personal", created)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.Create(ctx, newRecord("c-1", "personal", created)); !errors.IsAlreadyExists(err) {
		t.Errorf("Create() duplicate error = %v, want already exists", err)
	}

	rec, err := s.GetOne(ctx, "c-1")
	if err != nil {
		t.Fatalf("GetOne() error = %v", err)
	}
	if !time.Time(rec.CreatedAt).Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", rec.CreatedAt, created)
	}
	if got := rec.Contact().Values(contactmodels.FieldTelephone); len(got) != 2 {
		t.Errorf("TEL = %v, want 2 values", got)
	}

	updated := newRecord("c-1", "personal", created)
	updated.Fields = []contactmodels.Field{{Name: contactmodels.FieldFormattedName, Values: []string{"Renamed"}}}
	if err := s.Put(ctx, updated); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	rec, _ = s.GetOne(ctx, "c-1")
	if rec.Contact().Get(contactmodels.FieldFormattedName) != "Renamed" {
		t.Errorf("Put() did not replace fields: %+v", rec)
	}

	if err := s.Put(ctx, newRecord("c-2", "personal", created)); err != nil {
		t.Fatalf("Put() insert error = %v", err)
	}
	if _, err := s.GetOne(ctx, "c-2"); err != nil {
		t.Errorf("Put() should insert missing rows, GetOne() error = %v", err)
	}

	if err := s.Delete(ctx, "c-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Delete(ctx, "c-1"); !errors.IsNotFound(err) {
		t.Errorf("Delete() second error = %v, want not found", err)
	}
	if _, err := s.GetOne(ctx, "c-1"); !errors.IsNotFound(err) {
		t.Errorf("GetOne() error = %v, want not found", err)
	}
}

func TestStoreListByBook(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	base := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

	for i, tc := range []struct{ id, book string }{
		{"c-3", "personal"},
		{"c-1", "work"},
		{"c-2", "personal"},
	} {
		if err := s.Create(ctx, newRecord(tc.id, tc.book, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	recs, err := s.ListByBook(ctx, "personal")
	if err != nil {
		t.Fatalf("ListByBook() error = %v", err)
	}
	if len(recs) != 2 || recs[0].ID != "c-3" || recs[1].ID != "c-2" {
		t.Errorf("ListByBook() = %v, want [c-3 c-2] in creation order", recs)
	}
}
