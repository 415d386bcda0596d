/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	mterrors "github.com/suparena/multitype/errors"
	"github.com/suparena/multitype/internal/log"
)

// Result is a single streamed item with its metadata. A Result with Err set is
// always the last one sent.
type Result struct {
	Item any                             // The decoded item
	Raw  map[string]types.AttributeValue // Raw DynamoDB attributes
	Err  error
	Meta Meta
}

// Meta describes where a streamed item came from.
type Meta struct {
	Index     int64     // Item index in stream (0-based)
	Page      int       // DynamoDB page number (1-based)
	Timestamp time.Time // When item was retrieved
}

// Progress is reported to the progress handler after each page.
type Progress struct {
	Items     int64 // Items sent so far
	Pages     int   // Pages fetched so far
	Skipped   int   // Items skipped as unknown entities
	LastKey   map[string]types.AttributeValue
	StartTime time.Time
	Rate      float64 // Items per second
}

// Stream queries the partition in the background and sends each decoded item
// on the returned channel, which is closed when the partition is exhausted,
// MaxItems is reached, an error is sent or ctx is done.
func (s *Source) Stream(ctx context.Context) <-chan Result {
	ch := make(chan Result, s.options.BufferSize)
	go s.streamWorker(ctx, ch)
	return ch
}

func (s *Source) streamWorker(ctx context.Context, ch chan<- Result) {
	defer close(ch)

	send := func(r Result) bool {
		select {
		case ch <- r:
			return true
		case <-ctx.Done():
			return false
		}
	}

	progress := Progress{StartTime: time.Now()}
	input := s.buildQuery()
	for {
		out, err := s.queryWithRetry(ctx, input)
		if err != nil {
			send(Result{Err: err, Meta: Meta{Index: progress.Items, Page: progress.Pages, Timestamp: time.Now()}})
			return
		}
		progress.Pages++

		for _, raw := range out.Items {
			meta := Meta{Index: progress.Items, Page: progress.Pages, Timestamp: time.Now()}
			item, err := s.decode(raw)
			if err != nil {
				if s.options.Strict || !mterrors.IsUnknownEntity(err) {
					send(Result{Raw: raw, Err: err, Meta: meta})
					return
				}
				log.Warn(log.CatSource, "skipping unknown entity", "table", s.tableName, "error", err)
				progress.Skipped++
				continue
			}
			if !send(Result{Item: item, Raw: raw, Meta: meta}) {
				return
			}
			progress.Items++
			if s.options.MaxItems > 0 && progress.Items >= int64(s.options.MaxItems) {
				return
			}
		}

		progress.LastKey = out.LastEvaluatedKey
		s.reportProgress(progress)

		if len(out.LastEvaluatedKey) == 0 {
			return
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (s *Source) reportProgress(p Progress) {
	log.Debug(log.CatSource, "page loaded", "table", s.tableName, "page", p.Pages, "items", p.Items)
	if s.options.ProgressHandler == nil {
		return
	}
	if elapsed := time.Since(p.StartTime).Seconds(); elapsed > 0 {
		p.Rate = float64(p.Items) / elapsed
	}
	s.options.ProgressHandler(p)
}
