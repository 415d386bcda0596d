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

	mterrors "github.com/suparena/multitype/errors"
	"github.com/suparena/multitype/internal/log"
	"github.com/suparena/multitype/registry"
)

// Source loads every item of one partition of a single-table DynamoDB design,
// decoding each into the Go value registered for its EntityType attribute.
type Source struct {
	client    QueryAPI
	tableName string
	partition string
	entities  *registry.Entities
	options   Options
}

// NewSource creates a Source reading partition from tableName.
func NewSource(client QueryAPI, tableName, partition string, entities *registry.Entities, opts ...Option) (*Source, error) {
	if tableName == "" {
		return nil, mterrors.NewValidationError("table", "required")
	}
	if partition == "" {
		return nil, mterrors.NewValidationError("partition", "required")
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Source{
		client:    client,
		tableName: tableName,
		partition: partition,
		entities:  entities,
		options:   options,
	}, nil
}

// Load queries the partition page by page, in sort key order, and returns all
// decoded items.
func (s *Source) Load(ctx context.Context) ([]any, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var items []any
	for r := range s.Stream(ctx) {
		if r.Err != nil {
			return nil, r.Err
		}
		items = append(items, r.Item)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Source) buildQuery() *sdk.QueryInput {
	keyCond := "#pk = :pk"
	names := map[string]string{"#pk": s.options.PartitionKeyName}
	values := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: s.partition},
	}
	if s.options.SortKeyPrefix != "" {
		keyCond += " AND begins_with(#sk, :sk)"
		names["#sk"] = s.options.SortKeyName
		values[":sk"] = &types.AttributeValueMemberS{Value: s.options.SortKeyPrefix}
	}

	input := &sdk.QueryInput{
		TableName:                 aws.String(s.tableName),
		KeyConditionExpression:    aws.String(keyCond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		Limit:                     aws.Int32(s.options.PageSize),
		ScanIndexForward:          aws.Bool(!s.options.Descending),
	}
	if s.options.IndexName != "" {
		input.IndexName = aws.String(s.options.IndexName)
	}
	return input
}

// decode uses the EntityType attribute to select the factory from the entity
// registry so that each item is unmarshaled to its proper type.
func (s *Source) decode(raw map[string]types.AttributeValue) (any, error) {
	attr, ok := raw[s.options.TypeAttribute]
	if !ok {
		return nil, mterrors.NewValidationError(s.options.TypeAttribute, "missing type attribute in item")
	}
	var entityType string
	if err := attributevalue.Unmarshal(attr, &entityType); err != nil {
		return nil, mterrors.NewDecodeError(s.options.TypeAttribute, err)
	}

	obj, err := s.entities.New(entityType)
	if err != nil {
		return nil, err
	}
	if err := attributevalue.UnmarshalMap(raw, obj); err != nil {
		return nil, mterrors.NewDecodeError(entityType, err)
	}
	return obj, nil
}

// queryWithRetry executes a query with configurable retry logic
func (s *Source) queryWithRetry(ctx context.Context, input *sdk.QueryInput) (*sdk.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= s.options.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := s.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !isRetryableError(err) {
			return nil, fmt.Errorf("query %s: %w", s.tableName, err)
		}

		if attempt < s.options.MaxRetries {
			log.Warn(log.CatSource, "retrying query", "table", s.tableName, "attempt", attempt+1, "error", err)
			backoff := time.Duration(attempt+1) * s.options.RetryBackoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query %s failed after %d retries: %w", s.tableName, s.options.MaxRetries, lastErr)
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	var throughput *types.ProvisionedThroughputExceededException
	var limit *types.RequestLimitExceeded
	var internal *types.InternalServerError
	if errors.As(err, &throughput) || errors.As(err, &limit) || errors.As(err, &internal) {
		return true
	}

	var retryable interface{ IsRetryable() bool }
	if errors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}
