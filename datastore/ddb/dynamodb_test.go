/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/suparena/contactstore/contactmodels"
	"github.com/suparena/contactstore/errors"
)

func testRecord(id, book string, created time.Time) contactmodels.ContactRecord {
	c := contactmodels.NewContact().
		SetID(id).
		Set(contactmodels.FieldFormattedName, "Contact "+id).
		Set(contactmodels.FieldEmail, id+"@example.com", id+"@example.org")
	return contactmodels.NewRecord(book, c, created)
}

func TestStoreCRUD(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	store := New(api, "Contacts")
	created := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	if err := store.Create(ctx, testRecord("c-1", "personal", created)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	rec, err := store.GetOne(ctx, "c-1")
	if err != nil {
		t.Fatalf("GetOne failed: %v", err)
	}
	if rec.BookKey != "personal" || time.Time(rec.CreatedAt) != created {
		t.Errorf("Unexpected record: %+v", rec)
	}
	c := rec.Contact()
	if c.ID() != "c-1" || len(c.Values(contactmodels.FieldEmail)) != 2 {
		t.Errorf("Unexpected contact: %+v", c)
	}

	item := api.items["CONTACT#c-1|CONTACT#c-1"]
	if str(item["GSI1PK"]) != "BOOK#personal" {
		t.Errorf("Expected GSI1PK BOOK#personal, got %q", str(item["GSI1PK"]))
	}
	if str(item["EntityType"]) != "Contact" {
		t.Errorf("Expected EntityType Contact, got %q", str(item["EntityType"]))
	}

	if err := store.Create(ctx, testRecord("c-1", "personal", created)); !errors.IsAlreadyExists(err) {
		t.Errorf("Expected already exists, got %v", err)
	}
	if err := store.Put(ctx, testRecord("c-1", "work", created)); err != nil {
		t.Errorf("Put failed: %v", err)
	}

	if err := store.Delete(ctx, "c-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetOne(ctx, "c-1"); !errors.IsNotFound(err) {
		t.Errorf("Expected not found after delete, got %v", err)
	}
	if err := store.Delete(ctx, "c-1"); !errors.IsNotFound(err) {
		t.Errorf("Expected not found on second delete, got %v", err)
	}
}

func TestStoreRejectsEmptyID(t *testing.T) {
	store := New(newFakeAPI(), "Contacts")
	err := store.Put(context.Background(), testRecord("", "personal", time.Now()))
	if !errors.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestStoreListByBook(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	store := New(api, "Contacts", WithRetry(WithPageSize(2)))
	base := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		book := "personal"
		if i == 2 {
			book = "work"
		}
		rec := testRecord(fmt.Sprintf("c-%d", i), book, base.Add(time.Duration(i)*time.Minute))
		if err := store.Create(ctx, rec); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	recs, err := store.ListByBook(ctx, "personal")
	if err != nil {
		t.Fatalf("ListByBook failed: %v", err)
	}
	got := ""
	for _, r := range recs {
		got += r.ID + " "
	}
	if got != "c-0 c-1 c-3 c-4 " {
		t.Errorf("Expected creation order across pages, got %q", got)
	}
	if api.queryCalls < 2 {
		t.Errorf("Expected paging with page size 2, got %d query calls", api.queryCalls)
	}

	empty, err := store.ListByBook(ctx, "nobody")
	if err != nil || len(empty) != 0 {
		t.Errorf("Expected no records, got %v (%v)", empty, err)
	}
}

func TestStoreListRetries(t *testing.T) {
	ctx := context.Background()

	t.Run("TransientErrors", func(t *testing.T) {
		api := newFakeAPI()
		api.queryErrs = []error{&types.InternalServerError{}, &types.ProvisionedThroughputExceededException{}}
		store := New(api, "Contacts", WithRetry(WithRetryBackoff(time.Millisecond)))

		if _, err := store.ListByBook(ctx, "personal"); err != nil {
			t.Fatalf("Expected retries to succeed, got %v", err)
		}
		if api.queryCalls != 3 {
			t.Errorf("Expected 3 query calls, got %d", api.queryCalls)
		}
	})

	t.Run("WrappedByClient", func(t *testing.T) {
		api := newFakeAPI()
		api.queryErrs = []error{
			&smithy.OperationError{ServiceID: "DynamoDB", OperationName: "Query", Err: &types.InternalServerError{}},
			fmt.Errorf("send: %w", &smithy.OperationError{
				ServiceID:     "DynamoDB",
				OperationName: "Query",
				Err:           &smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down"},
			}),
		}
		store := New(api, "Contacts", WithRetry(WithRetryBackoff(time.Millisecond)))

		if _, err := store.ListByBook(ctx, "personal"); err != nil {
			t.Fatalf("Expected retries to succeed, got %v", err)
		}
		if api.queryCalls != 3 {
			t.Errorf("Expected 3 query calls, got %d", api.queryCalls)
		}
	})

	t.Run("GivesUp", func(t *testing.T) {
		api := newFakeAPI()
		api.queryErrs = []error{&types.InternalServerError{}, &types.InternalServerError{}, &types.InternalServerError{}}
		store := New(api, "Contacts", WithRetry(WithMaxRetries(1), WithRetryBackoff(time.Millisecond)))

		if _, err := store.ListByBook(ctx, "personal"); err == nil {
			t.Fatal("Expected an error after exhausting retries")
		}
		if api.queryCalls != 2 {
			t.Errorf("Expected 2 query calls, got %d", api.queryCalls)
		}
	})

	t.Run("PermanentError", func(t *testing.T) {
		api := newFakeAPI()
		api.queryErrs = []error{&types.ResourceNotFoundException{}}
		store := New(api, "Contacts", WithRetry(WithRetryBackoff(time.Millisecond)))

		if _, err := store.ListByBook(ctx, "personal"); err == nil {
			t.Fatal("Expected the permanent error")
		}
		if api.queryCalls != 1 {
			t.Errorf("Expected no retry, got %d query calls", api.queryCalls)
		}
	})
}
