/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package multitype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/multitype"
	"github.com/suparena/multitype/errors"
)

func requireProgrammingFault(t *testing.T, fn func()) any {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	require.NotNil(t, recovered, "expected a panic")
	assert.True(t, errors.IsProgramming(recovered), "unexpected panic value %v", recovered)
	return recovered
}

func TestOneToMany_LinkerBeforeToFaults(t *testing.T) {
	a := multitype.New()
	builder := multitype.RegisterOneToMany[text](a)

	r := requireProgrammingFault(t, func() {
		builder.WithLinker(func(int, text) int { return 0 })
	})
	_, ok := r.(*errors.BuilderStateError)
	assert.True(t, ok)

	requireProgrammingFault(t, func() {
		builder.WithSelector(func(int, text) multitype.Handler { return nil })
	})
	assert.Equal(t, 0, a.Types().Size())
}

func TestOneToMany_EmptyToFaults(t *testing.T) {
	a := multitype.New()
	requireProgrammingFault(t, func() {
		multitype.RegisterOneToMany[text](a).To()
	})
}

func TestOneToMany_NilLinkerFaults(t *testing.T) {
	a := multitype.New()
	requireProgrammingFault(t, func() {
		multitype.RegisterOneToMany[text](a).To(newHandler("h")).WithLinker(nil)
	})
	assert.Equal(t, 0, a.Types().Size())
}

func TestOneToMany_BindTwiceFaults(t *testing.T) {
	a := multitype.New()
	builder := multitype.RegisterOneToMany[text](a).To(newHandler("h0"))
	builder.WithLinker(func(int, text) int { return 0 })

	requireProgrammingFault(t, func() {
		builder.WithLinker(func(int, text) int { return 0 })
	})
	requireProgrammingFault(t, func() {
		builder.To(newHandler("late"))
	})
	assert.Equal(t, 1, a.Types().Size())
}

func TestOneToMany_LastToWins(t *testing.T) {
	a := multitype.New()
	kept := newHandler("kept")
	multitype.RegisterOneToMany[text](a).
		To(newHandler("dropped0"), newHandler("dropped1")).
		To(kept).
		WithLinker(func(int, text) int { return 0 })

	require.Equal(t, 1, a.Types().Size())
	assert.Same(t, kept, a.HandlerForCode(0))
	assert.Same(t, a, kept.Adapter())
}

func TestOneToMany_UnfinishedChainOnlyEvicts(t *testing.T) {
	a := multitype.New()
	multitype.Register[text](a, newHandler("old"))
	multitype.Register[dog](a, newHandler("dog"))

	multitype.RegisterOneToMany[text](a).To(newHandler("never"))

	require.Equal(t, 1, a.Types().Size())
	_, err := a.ResolveDispatchCode(0, text{})
	assert.True(t, errors.IsHandlerNotFound(err))
}

func TestOneToMany_RegisteringAgainReplacesBlock(t *testing.T) {
	a := multitype.New()
	multitype.RegisterOneToMany[text](a).
		To(newHandler("a"), newHandler("b"), newHandler("c")).
		WithLinker(func(int, text) int { return 2 })
	multitype.Register[dog](a, newHandler("dog"))

	single := newHandler("single")
	multitype.Register[text](a, single)

	require.Equal(t, 2, a.Types().Size())
	assert.Equal(t, 0, mustResolve(t, a, 0, dog{}))
	assert.Same(t, single, a.HandlerForCode(mustResolve(t, a, 0, text{})))
}

func TestOneToMany_RuntimeType(t *testing.T) {
	a := multitype.New()
	h0, h1 := newHandler("h0"), newHandler("h1")
	a.RegisterOneToManyType(typeOf(text{})).
		To(h0, h1).
		WithLinker(func(position int, item any) int { return position % 2 })

	assert.Same(t, h1, a.HandlerForCode(mustResolve(t, a, 3, text{})))
	assert.Same(t, h0, a.HandlerForCode(mustResolve(t, a, 4, text{})))
}

func TestOneToMany_SelectorResolvesHandlerPosition(t *testing.T) {
	a := multitype.New()
	multitype.Register[dog](a, newHandler("dog"))

	short, long := newHandler("short"), newHandler("long")
	multitype.RegisterOneToMany[text](a).
		To(short, long).
		WithSelector(func(_ int, item text) multitype.Handler {
			if len(item.content) > 3 {
				return long
			}
			return short
		})

	assert.Equal(t, 2, mustResolve(t, a, 0, text{content: "longer"}))
	assert.Equal(t, 1, mustResolve(t, a, 0, text{content: "ab"}))
}

type otherHandler struct{ textHandler }

func TestOneToMany_SelectorMatchesByHandlerType(t *testing.T) {
	a := multitype.New()
	first := newHandler("first")
	other := &otherHandler{}
	multitype.RegisterOneToMany[text](a).
		To(first, other).
		WithSelector(func(int, text) multitype.Handler { return &otherHandler{} })

	assert.Equal(t, 1, mustResolve(t, a, 0, text{}))
}

func TestOneToMany_SelectorOutsideBlockFaults(t *testing.T) {
	a := multitype.New()
	multitype.RegisterOneToMany[text](a).
		To(newHandler("only")).
		WithSelector(func(int, text) multitype.Handler { return &otherHandler{} })

	r := requireProgrammingFault(t, func() {
		_, _ = a.ResolveDispatchCode(0, text{})
	})
	mismatch, ok := r.(*errors.SelectorMismatchError)
	require.True(t, ok)
	assert.Equal(t, "*multitype_test.otherHandler", mismatch.Selected)
	assert.Equal(t, []string{"*multitype_test.textHandler"}, mismatch.Handlers)

	requireProgrammingFault(t, func() {
		multitype.RegisterOneToMany[dog](a).
			To(newHandler("dog")).
			WithSelector(func(int, dog) multitype.Handler { return nil })
		_, _ = a.ResolveDispatchCode(0, dog{})
	})
}
