/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rdb

import (
	"encoding/json"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/contactstore/contactmodels"
)

// ContactRow persistence model. Timestamps are written as given, not by GORM.
type ContactRow struct {
	ID        string    `gorm:"primaryKey;type:text;not null"`
	BookKey   string    `gorm:"type:text;not null;index"`
	Fields    string    `gorm:"type:text"` // JSON encoded []contactmodels.Field
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (ContactRow) TableName() string { return "contacts" }

func recordToRow(rec contactmodels.ContactRecord) (*ContactRow, error) {
	row := &ContactRow{
		ID:        rec.ID,
		BookKey:   rec.BookKey,
		CreatedAt: time.Time(rec.CreatedAt).UTC(),
		UpdatedAt: time.Time(rec.UpdatedAt).UTC(),
	}
	if len(rec.Fields) > 0 {
		fieldsJSON, err := json.Marshal(rec.Fields)
		if err != nil {
			return nil, err
		}
		row.Fields = string(fieldsJSON)
	}
	return row, nil
}

func rowToRecord(r *ContactRow) (contactmodels.ContactRecord, error) {
	rec := contactmodels.ContactRecord{
		ID:        r.ID,
		BookKey:   r.BookKey,
		CreatedAt: strfmt.DateTime(r.CreatedAt.UTC()),
		UpdatedAt: strfmt.DateTime(r.UpdatedAt.UTC()),
	}
	if r.Fields != "" {
		if err := json.Unmarshal([]byte(r.Fields), &rec.Fields); err != nil {
			return rec, err
		}
	}
	return rec, nil
}
