/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/suparena/contactstore/contactmodels"
	"github.com/suparena/contactstore/datastore"
	cserrors "github.com/suparena/contactstore/errors"
)

// API is the subset of the DynamoDB client the store uses.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// ClientConfig holds the connection settings for NewDynamoDBClient.
type ClientConfig struct {
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are
// used when an access key is given, the default chain otherwise.
func NewDynamoDBClient(ctx context.Context, cc ClientConfig) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cc.Region),
	}
	if cc.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cc.AccessKey, cc.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if cc.Endpoint != "" {
			o.BaseEndpoint = aws.String(cc.Endpoint)
		}
	})

	zerolog.Ctx(ctx).Debug().Str("region", cc.Region).Str("endpoint", cc.Endpoint).Msg("DynamoDB client initialized")
	return client, nil
}

// Store implements datastore.ContactStore on a single DynamoDB table.
type Store struct {
	client    API
	tableName string
	layout    KeyLayout
	gsi       GSIConfig
	retry     RetryOptions
	log       zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithKeyLayout overrides DefaultKeyLayout.
func WithKeyLayout(l KeyLayout) Option {
	return func(s *Store) { s.layout = l }
}

// WithGSIConfig overrides DefaultGSIConfig.
func WithGSIConfig(g GSIConfig) Option {
	return func(s *Store) { s.gsi = g }
}

// WithRetry sets the retry and paging behaviour of ListByBook.
func WithRetry(opts ...RetryOption) Option {
	return func(s *Store) {
		for _, opt := range opts {
			opt(&s.retry)
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New constructs a Store over client and tableName.
func New(client API, tableName string, opts ...Option) *Store {
	s := &Store{
		client:    client,
		tableName: tableName,
		layout:    DefaultKeyLayout,
		gsi:       DefaultGSIConfig,
		retry:     DefaultRetryOptions(),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetOne retrieves a single contact record by id.
func (s *Store) GetOne(ctx context.Context, id string) (*contactmodels.ContactRecord, error) {
	key, err := s.layout.primaryKey(id)
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &s.tableName,
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, cserrors.NewNotFoundError("contact", id)
	}

	var it contactItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	rec, err := it.record()
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create stores a record, failing when the id is already taken.
func (s *Store) Create(ctx context.Context, rec contactmodels.ContactRecord) error {
	err := s.put(ctx, rec, aws.String("attribute_not_exists(PK)"))
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return cserrors.NewAlreadyExistsError("contact", rec.ID)
	}
	return err
}

// Put stores a record, replacing any record with the same id.
func (s *Store) Put(ctx context.Context, rec contactmodels.ContactRecord) error {
	return s.put(ctx, rec, nil)
}

func (s *Store) put(ctx context.Context, rec contactmodels.ContactRecord, condition *string) error {
	if rec.ID == "" {
		return cserrors.NewValidationError("id", "must not be empty")
	}

	it := toItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("failed to marshal contact: %w", err)
	}

	// Expand macros using the item itself and add PK, SK and GSI keys.
	expanded, err := s.layout.expand(it)
	if err != nil {
		return err
	}
	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           &s.tableName,
		Item:                av,
		ConditionExpression: condition,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	s.log.Debug().Str("contact", rec.ID).Str("address_book", rec.BookKey).Msg("stored contact item")
	return nil
}

// Delete removes a record by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	key, err := s.layout.primaryKey(id)
	if err != nil {
		return fmt.Errorf("failed to build key for Delete: %w", err)
	}

	_, err = s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName:           &s.tableName,
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return cserrors.NewNotFoundError("contact", id)
		}
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

var _ datastore.ContactStore = (*Store)(nil)
