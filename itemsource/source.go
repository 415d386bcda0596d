/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemsource

import (
	"context"
	"slices"
)

// Source loads the ordered, heterogeneous item list a multitype.Adapter dispatches.
type Source interface {
	Load(ctx context.Context) ([]any, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]any, error)

// Load calls f(ctx).
func (f SourceFunc) Load(ctx context.Context) ([]any, error) {
	return f(ctx)
}

// Static is an in-memory Source.
type Static []any

// Load returns a copy of the items.
func (s Static) Load(ctx context.Context) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone([]any(s)), nil
}
