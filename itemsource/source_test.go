/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemsource_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/multitype/itemsource"
)

func TestStatic(t *testing.T) {
	src := itemsource.Static{"a", 1, 2.5}

	items, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []any{"a", 1, 2.5}, items)

	items[0] = "changed"
	again, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", again[0], "callers get their own copy")
}

func TestStatic_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := itemsource.Static{"a"}.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSourceFunc(t *testing.T) {
	var src itemsource.Source = itemsource.SourceFunc(func(context.Context) ([]any, error) {
		return []any{"x"}, nil
	})
	items, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
