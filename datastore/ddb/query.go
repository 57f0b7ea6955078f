/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/suparena/contactstore/contactmodels"
)

// RetryOptions configures paging and retries for ListByBook.
type RetryOptions struct {
	MaxRetries   int           // Retry attempts for transient errors (default: 3)
	RetryBackoff time.Duration // Backoff between retries (default: 1s)
	PageSize     int32         // Items per DynamoDB page (default: 100)
}

// RetryOption is a functional option for RetryOptions.
type RetryOption func(*RetryOptions)

// DefaultRetryOptions returns default retry options.
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxRetries:   3,
		RetryBackoff: time.Second,
		PageSize:     100,
	}
}

// WithMaxRetries sets the maximum retry attempts
func WithMaxRetries(retries int) RetryOption {
	return func(opts *RetryOptions) {
		opts.MaxRetries = retries
	}
}

// WithRetryBackoff sets the retry backoff duration
func WithRetryBackoff(backoff time.Duration) RetryOption {
	return func(opts *RetryOptions) {
		opts.RetryBackoff = backoff
	}
}

// WithPageSize sets the DynamoDB page size
func WithPageSize(size int32) RetryOption {
	return func(opts *RetryOptions) {
		opts.PageSize = size
	}
}

// ListByBook queries the address book's GSI partition page by page and
// returns its records in GSI sort order, which is creation order.
func (s *Store) ListByBook(ctx context.Context, bookKey string) ([]contactmodels.ContactRecord, error) {
	partition, err := s.layout.bookPartition(bookKey)
	if err != nil {
		return nil, err
	}

	keyCond := "#pk = :pk"
	input := &sdk.QueryInput{
		TableName:                &s.tableName,
		IndexName:                aws.String(s.gsi.IndexName),
		KeyConditionExpression:   &keyCond,
		ExpressionAttributeNames: map[string]string{"#pk": s.gsi.PartitionKeyName},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: partition},
		},
		ScanIndexForward: aws.Bool(true),
	}
	if s.retry.PageSize > 0 {
		input.Limit = aws.Int32(s.retry.PageSize)
	}

	results := make([]contactmodels.ContactRecord, 0)
	pages := 0
	for {
		out, err := s.queryWithRetry(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}
		pages++

		for _, item := range out.Items {
			var it contactItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, fmt.Errorf("failed to unmarshal item: %w", err)
			}
			if it.EntityType != "" && it.EntityType != entityType {
				continue
			}
			rec, err := it.record()
			if err != nil {
				return nil, err
			}
			results = append(results, rec)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	s.log.Debug().
		Str("address_book", bookKey).
		Int("pages", pages).
		Int("items", len(results)).
		Msg("listed address book")
	return results, nil
}

// queryWithRetry executes a query, retrying transient failures with a
// linearly growing backoff.
func (s *Store) queryWithRetry(ctx context.Context, input *sdk.QueryInput) (*sdk.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= s.retry.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		out, err := s.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}

		lastErr = err
		if !isRetryableError(err) {
			return nil, err
		}

		if attempt < s.retry.MaxRetries {
			s.log.Warn().Err(err).Int("attempt", attempt+1).Msg("retrying DynamoDB query")
			backoff := time.Duration(attempt+1) * s.retry.RetryBackoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", s.retry.MaxRetries, lastErr)
}

// isRetryableError determines if a DynamoDB error is retryable. The SDK
// client wraps service errors in *smithy.OperationError.
func isRetryableError(err error) bool {
	var throughput *types.ProvisionedThroughputExceededException
	var limit *types.RequestLimitExceeded
	var internal *types.InternalServerError
	if errors.As(err, &throughput) || errors.As(err, &limit) || errors.As(err, &internal) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ThrottlingException" {
		return true
	}

	// Check for AWS SDK retryable errors
	var retryable interface{ RetryableError() bool }
	if errors.As(err, &retryable) {
		return retryable.RetryableError()
	}

	return false
}
