/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package listview is a small text list host for multitype adapters. It keeps one
// recycling pool per dispatch code and drives the handler lifecycle the way a
// virtualized list would: create or reuse, bind, attach, then detach and recycle.
package listview

import (
	"context"
	"fmt"
	"io"

	"github.com/suparena/multitype/internal/log"
)

// DefaultMaxPooled is the number of idle presentations kept per dispatch code.
const DefaultMaxPooled = 5

// Dispatcher is the part of multitype.Adapter the list host calls.
type Dispatcher interface {
	ItemCount() int
	ItemViewType(position int) (int, error)
	CreatePresentation(ctx context.Context, code int) (any, error)
	Bind(code int, presentation any, position int, payloads ...any) error
	Recycled(code int, presentation any)
	FailedToRecycle(code int, presentation any) bool
	Attached(code int, presentation any)
	Detached(code int, presentation any)
}

// TransientState is implemented by presentations that may refuse recycling.
type TransientState interface {
	HasTransientState() bool
}

// Stats counts presentation lifecycle events since the list was created.
type Stats struct {
	Created  int
	Reused   int
	Recycled int
	Dropped  int
}

// List renders every item of a Dispatcher, one presentation per row.
type List struct {
	adapter   Dispatcher
	maxPooled int
	pool      map[int][]any
	stats     Stats
}

// New creates a List over adapter.
func New(adapter Dispatcher) *List {
	return &List{
		adapter:   adapter,
		maxPooled: DefaultMaxPooled,
		pool:      make(map[int][]any),
	}
}

// SetMaxPooled sets how many idle presentations are kept per dispatch code.
func (l *List) SetMaxPooled(n int) {
	l.maxPooled = n
}

// Stats returns the lifecycle counters.
func (l *List) Stats() Stats {
	return l.stats
}

// Pooled returns the number of idle presentations for code.
func (l *List) Pooled(code int) int {
	return len(l.pool[code])
}

type row struct {
	code         int
	presentation any
}

// Render writes every row to w. Presentations must implement io.WriterTo. All
// presentations attached during the pass are detached and recycled before
// Render returns, including when it fails.
func (l *List) Render(ctx context.Context, w io.Writer) error {
	var rows []row
	defer func() {
		for _, r := range rows {
			l.adapter.Detached(r.code, r.presentation)
			l.recycle(r.code, r.presentation)
		}
	}()

	for position := 0; position < l.adapter.ItemCount(); position++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		code, err := l.adapter.ItemViewType(position)
		if err != nil {
			return fmt.Errorf("position %d: %w", position, err)
		}

		p, err := l.obtain(ctx, code)
		if err != nil {
			return fmt.Errorf("position %d: create presentation: %w", position, err)
		}
		if err := l.adapter.Bind(code, p, position); err != nil {
			l.recycle(code, p)
			return fmt.Errorf("position %d: bind: %w", position, err)
		}
		l.adapter.Attached(code, p)
		rows = append(rows, row{code: code, presentation: p})

		wt, ok := p.(io.WriterTo)
		if !ok {
			return fmt.Errorf("position %d: presentation %T does not implement io.WriterTo", position, p)
		}
		if _, err := wt.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

func (l *List) obtain(ctx context.Context, code int) (any, error) {
	if idle := l.pool[code]; len(idle) > 0 {
		p := idle[len(idle)-1]
		l.pool[code] = idle[:len(idle)-1]
		l.stats.Reused++
		return p, nil
	}

	p, err := l.adapter.CreatePresentation(ctx, code)
	if err != nil {
		return nil, err
	}
	l.stats.Created++
	log.Debug(log.CatView, "presentation created", "code", code)
	return p, nil
}

func (l *List) recycle(code int, p any) {
	if ts, ok := p.(TransientState); ok && ts.HasTransientState() {
		if !l.adapter.FailedToRecycle(code, p) {
			l.stats.Dropped++
			log.Debug(log.CatView, "presentation dropped", "code", code, "reason", "transient state")
			return
		}
	}

	l.adapter.Recycled(code, p)
	if len(l.pool[code]) >= l.maxPooled {
		l.stats.Dropped++
		return
	}
	l.pool[code] = append(l.pool[code], p)
	l.stats.Recycled++
}
