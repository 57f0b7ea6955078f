/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package vcf provides a ContactStore kept in a single vCard file.
package vcf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/contactstore/contactmodels"
	"github.com/suparena/contactstore/datastore"
	"github.com/suparena/contactstore/errors"
)

// fieldCreated carries the record creation time; REV carries the update time.
const fieldCreated = "X-CREATED"

// Store holds the contacts of one address book in a .vcf file. The whole
// file is rewritten on every change.
type Store struct {
	mu      sync.RWMutex
	path    string
	bookKey string
	records []contactmodels.ContactRecord
}

// Open loads the vCard file at path for the address book bookKey. A
// missing file is an empty address book; it is created on the first write.
func Open(path, bookKey string) (*Store, error) {
	s := &Store{path: path, bookKey: bookKey}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := vcard.NewDecoder(f)
	for {
		card, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		rec, err := s.cardToRecord(card)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		s.records = append(s.records, rec)
	}
	return s, nil
}

func (s *Store) cardToRecord(card vcard.Card) (contactmodels.ContactRecord, error) {
	created, err := parseStamp(card.Value(fieldCreated))
	if err != nil {
		return contactmodels.ContactRecord{}, err
	}
	updated, err := parseStamp(card.Value(vcard.FieldRevision))
	if err != nil {
		return contactmodels.ContactRecord{}, err
	}
	delete(card, fieldCreated)
	delete(card, vcard.FieldRevision)

	c := contactmodels.FromCard(card)
	if c.ID() == "" {
		return contactmodels.ContactRecord{}, errors.NewValidationError(vcard.FieldUID, "card without UID")
	}
	rec := contactmodels.NewRecord(s.bookKey, c, time.Time(created))
	rec.UpdatedAt = updated
	return rec, nil
}

func recordToCard(rec contactmodels.ContactRecord) vcard.Card {
	card := rec.Contact().Card()
	card.SetValue(fieldCreated, rec.CreatedAt.String())
	card.SetValue(vcard.FieldRevision, rec.UpdatedAt.String())
	return card
}

func parseStamp(s string) (strfmt.DateTime, error) {
	if s == "" {
		return strfmt.DateTime{}, nil
	}
	return strfmt.ParseDateTime(s)
}

// flush writes every record to a temporary file and renames it over path.
// Callers hold s.mu.
func (s *Store) flush() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".contacts-*.vcf")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	enc := vcard.NewEncoder(tmp)
	for _, rec := range s.records {
		if err := enc.Encode(recordToCard(rec)); err != nil {
			tmp.Close()
			return fmt.Errorf("encode contact %q: %w", rec.ID, err)
		}
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *Store) index(id string) int {
	for i, rec := range s.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) check(rec contactmodels.ContactRecord) error {
	if rec.ID == "" {
		return errors.NewValidationError("id", "must not be empty")
	}
	if rec.BookKey != s.bookKey {
		return errors.NewValidationError("bookKey", fmt.Sprintf("file holds address book %q", s.bookKey))
	}
	return nil
}

// GetOne retrieves a record by id
func (s *Store) GetOne(ctx context.Context, id string) (*contactmodels.ContactRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.index(id); i >= 0 {
		rec := s.records[i]
		return &rec, nil
	}
	return nil, errors.NewNotFoundError("contact", id)
}

// Create appends a record whose id is not taken yet
func (s *Store) Create(ctx context.Context, rec contactmodels.ContactRecord) error {
	if err := s.check(rec); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index(rec.ID) >= 0 {
		return errors.NewAlreadyExistsError("contact", rec.ID)
	}
	s.records = append(s.records, rec)
	if err := s.flush(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return err
	}
	return nil
}

// Put replaces the record with the same id, or appends it
func (s *Store) Put(ctx context.Context, rec contactmodels.ContactRecord) error {
	if err := s.check(rec); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(rec.ID); i >= 0 {
		prev := s.records[i]
		s.records[i] = rec
		if err := s.flush(); err != nil {
			s.records[i] = prev
			return err
		}
		return nil
	}
	s.records = append(s.records, rec)
	if err := s.flush(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return err
	}
	return nil
}

// Delete removes a record by id
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return errors.NewNotFoundError("contact", id)
	}
	prev := s.records
	s.records = append(append([]contactmodels.ContactRecord(nil), s.records[:i]...), s.records[i+1:]...)
	if err := s.flush(); err != nil {
		s.records = prev
		return err
	}
	return nil
}

// ListByBook returns the file's records in file order. Other address books
// are always empty.
func (s *Store) ListByBook(ctx context.Context, bookKey string) ([]contactmodels.ContactRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if bookKey != s.bookKey {
		return []contactmodels.ContactRecord{}, nil
	}
	return append([]contactmodels.ContactRecord{}, s.records...), nil
}

var _ datastore.ContactStore = (*Store)(nil)
