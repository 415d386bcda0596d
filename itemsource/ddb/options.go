/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import "time"

// Options configures a Source.
type Options struct {
	PartitionKeyName string         // Partition key attribute (default: PK)
	SortKeyName      string         // Sort key attribute (default: SK)
	SortKeyPrefix    string         // Optional begins_with condition on the sort key
	IndexName        string         // Optional secondary index to query
	TypeAttribute    string         // Attribute holding the entity name (default: EntityType)
	PageSize         int32          // Items per DynamoDB page (default: 100)
	MaxItems         int            // Stop after this many items; 0 means no limit
	Descending       bool           // Traverse the sort key in descending order
	MaxRetries       int            // Retry attempts for transient errors (default: 3)
	RetryBackoff     time.Duration  // Backoff between retries, multiplied by the attempt (default: 1s)
	Strict           bool           // Fail on unknown entities instead of skipping them
	BufferSize       int            // Stream channel buffer size (default: 100)
	ProgressHandler  func(Progress) // Optional callback after each page
}

// Option is a functional option for configuring a Source
type Option func(*Options)

// DefaultOptions returns default source options
func DefaultOptions() Options {
	return Options{
		PartitionKeyName: "PK",
		SortKeyName:      "SK",
		TypeAttribute:    "EntityType",
		PageSize:         100,
		MaxRetries:       3,
		RetryBackoff:     time.Second,
		BufferSize:       100,
	}
}

// WithSortKeyPrefix restricts the query to sort keys beginning with prefix
func WithSortKeyPrefix(prefix string) Option {
	return func(opts *Options) {
		opts.SortKeyPrefix = prefix
	}
}

// WithIndex queries a secondary index with the given key attribute names
func WithIndex(name, partitionKey, sortKey string) Option {
	return func(opts *Options) {
		opts.IndexName = name
		opts.PartitionKeyName = partitionKey
		opts.SortKeyName = sortKey
	}
}

// WithTypeAttribute sets the attribute holding the entity name
func WithTypeAttribute(attr string) Option {
	return func(opts *Options) {
		opts.TypeAttribute = attr
	}
}

// WithPageSize sets the DynamoDB page size
func WithPageSize(size int32) Option {
	return func(opts *Options) {
		opts.PageSize = size
	}
}

// WithMaxItems caps the number of items loaded
func WithMaxItems(n int) Option {
	return func(opts *Options) {
		opts.MaxItems = n
	}
}

// WithDescending traverses the sort key in descending order
func WithDescending() Option {
	return func(opts *Options) {
		opts.Descending = true
	}
}

// WithMaxRetries sets the maximum retry attempts
func WithMaxRetries(retries int) Option {
	return func(opts *Options) {
		opts.MaxRetries = retries
	}
}

// WithRetryBackoff sets the retry backoff duration
func WithRetryBackoff(backoff time.Duration) Option {
	return func(opts *Options) {
		opts.RetryBackoff = backoff
	}
}

// WithStrict makes unknown entities fail the load
func WithStrict() Option {
	return func(opts *Options) {
		opts.Strict = true
	}
}

// WithBufferSize sets the Stream channel buffer size
func WithBufferSize(size int) Option {
	return func(opts *Options) {
		opts.BufferSize = size
	}
}

// WithProgressHandler sets a callback invoked after each page
func WithProgressHandler(handler func(Progress)) Option {
	return func(opts *Options) {
		opts.ProgressHandler = handler
	}
}
