/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/suparena/contactstore/contactmodels"
	"github.com/suparena/contactstore/datastore"
	cserrors "github.com/suparena/contactstore/errors"
)

// Store implements datastore.ContactStore on a relational database.
type Store struct{ db *gorm.DB }

func New(db *gorm.DB) *Store { return &Store{db: db} }

func (s *Store) GetOne(ctx context.Context, id string) (*contactmodels.ContactRecord, error) {
	var row ContactRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cserrors.NewNotFoundError("contact", id)
		}
		return nil, err
	}
	rec, err := rowToRecord(&row)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) Create(ctx context.Context, rec contactmodels.ContactRecord) error {
	row, err := recordToRow(rec)
	if err != nil {
		return err
	}
	if row.ID == "" {
		return cserrors.NewValidationError("id", "must not be empty")
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&ContactRow{}).Where("id = ?", row.ID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return cserrors.NewAlreadyExistsError("contact", row.ID)
		}
		return tx.Create(row).Error
	})
}

func (s *Store) Put(ctx context.Context, rec contactmodels.ContactRecord) error {
	row, err := recordToRow(rec)
	if err != nil {
		return err
	}
	if row.ID == "" {
		return cserrors.NewValidationError("id", "must not be empty")
	}
	return s.db.WithContext(ctx).Save(row).Error
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&ContactRow{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return cserrors.NewNotFoundError("contact", id)
	}
	return nil
}

func (s *Store) ListByBook(ctx context.Context, bookKey string) ([]contactmodels.ContactRecord, error) {
	var rows []ContactRow
	if err := s.db.WithContext(ctx).Where("book_key = ?", bookKey).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]contactmodels.ContactRecord, 0, len(rows))
	for i := range rows {
		rec, err := rowToRecord(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

var _ datastore.ContactStore = (*Store)(nil)
