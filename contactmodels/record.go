/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package contactmodels

import (
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
)

// ContactRecord is the persisted form of a contact, owned by one address book.
type ContactRecord struct {
	// ID is the contact id, unique within the store.
	ID string `json:"id"`
	// BookKey is the key of the address book that owns the contact.
	BookKey string `json:"bookKey"`
	// Fields holds every property except the id.
	Fields []Field `json:"fields"`
	// Format: date-time
	CreatedAt strfmt.DateTime `json:"createdAt"`
	// Format: date-time
	UpdatedAt strfmt.DateTime `json:"updatedAt"`
}

// NewRecord builds the record for c in the given address book. The id is
// taken from c; both timestamps are set to now.
func NewRecord(bookKey string, c *Contact, now time.Time) ContactRecord {
	ts := strfmt.DateTime(now.UTC())
	rec := ContactRecord{
		ID:        c.ID(),
		BookKey:   bookKey,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	for _, f := range c.Fields {
		if strings.EqualFold(f.Name, FieldID) {
			continue
		}
		rec.Fields = append(rec.Fields, Field{Name: f.Name, Values: append([]string(nil), f.Values...)})
	}
	return rec
}

// Contact returns the contact stored in the record, id first.
func (r ContactRecord) Contact() *Contact {
	c := &Contact{Fields: make([]Field, 0, len(r.Fields)+1)}
	for _, f := range r.Fields {
		c.Fields = append(c.Fields, Field{Name: f.Name, Values: append([]string(nil), f.Values...)})
	}
	return c.SetID(r.ID)
}
