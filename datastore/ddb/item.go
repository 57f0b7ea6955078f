/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/contactstore/contactmodels"
)

// entityType tags contact items in a shared single table.
const entityType = "Contact"

// contactItem is the DynamoDB form of a ContactRecord. Timestamps are kept
// as strings so GSI1SK sorts them lexically.
type contactItem struct {
	ID         string                `dynamodbav:"ID"`
	BookKey    string                `dynamodbav:"BookKey"`
	Fields     []contactmodels.Field `dynamodbav:"Fields"`
	CreatedAt  string                `dynamodbav:"CreatedAt"`
	UpdatedAt  string                `dynamodbav:"UpdatedAt"`
	EntityType string                `dynamodbav:"EntityType"`
}

func toItem(rec contactmodels.ContactRecord) contactItem {
	return contactItem{
		ID:         rec.ID,
		BookKey:    rec.BookKey,
		Fields:     rec.Fields,
		CreatedAt:  rec.CreatedAt.String(),
		UpdatedAt:  rec.UpdatedAt.String(),
		EntityType: entityType,
	}
}

func (it contactItem) record() (contactmodels.ContactRecord, error) {
	rec := contactmodels.ContactRecord{
		ID:      it.ID,
		BookKey: it.BookKey,
		Fields:  it.Fields,
	}
	var err error
	if rec.CreatedAt, err = parseTime(it.CreatedAt); err != nil {
		return rec, fmt.Errorf("contact %q CreatedAt: %w", it.ID, err)
	}
	if rec.UpdatedAt, err = parseTime(it.UpdatedAt); err != nil {
		return rec, fmt.Errorf("contact %q UpdatedAt: %w", it.ID, err)
	}
	return rec, nil
}

func parseTime(s string) (strfmt.DateTime, error) {
	if s == "" {
		return strfmt.DateTime{}, nil
	}
	return strfmt.ParseDateTime(s)
}
