/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package multitype

import (
	"reflect"
	"slices"

	"github.com/suparena/multitype/errors"
	"github.com/suparena/multitype/registry"
)

type builderState int

const (
	collecting builderState = iota
	bound
)

// OneToManyBuilder registers several handlers for one item type as a contiguous
// block of dispatch codes. Supply the handlers with To, then finish with
// WithLinker or WithSelector; nothing is registered until then.
type OneToManyBuilder[T any] struct {
	adapter  *Adapter
	typ      reflect.Type
	handlers []Handler
	state    builderState
}

// RegisterOneToMany evicts the handlers registered for T and starts a
// one-to-many registration for it.
func RegisterOneToMany[T any](a *Adapter) *OneToManyBuilder[T] {
	return newOneToManyBuilder[T](a, reflect.TypeFor[T]())
}

// RegisterOneToManyType is RegisterOneToMany for a type known only at run time.
func (a *Adapter) RegisterOneToManyType(t reflect.Type) *OneToManyBuilder[any] {
	return newOneToManyBuilder[any](a, t)
}

func newOneToManyBuilder[T any](a *Adapter, t reflect.Type) *OneToManyBuilder[T] {
	a.unregisterAllTypesIfNeeded(t)
	return &OneToManyBuilder[T]{adapter: a, typ: t}
}

// To sets the handlers of the block, in code order. A later call replaces the
// handlers of an earlier one.
func (b *OneToManyBuilder[T]) To(handlers ...Handler) *OneToManyBuilder[T] {
	b.mustBeCollecting()
	if len(handlers) == 0 {
		b.fault("To requires at least one handler")
	}
	b.handlers = slices.Clone(handlers)
	return b
}

// WithLinker registers the block. linker returns, for an item, the offset of its
// handler within the handlers passed to To.
func (b *OneToManyBuilder[T]) WithLinker(linker func(position int, item T) int) {
	b.mustHaveHandlers()
	if linker == nil {
		b.fault("nil linker")
	}
	b.bind(registry.LinkerFunc(func(position int, item any) int {
		return linker(position, item.(T))
	}))
}

// WithSelector registers the block. selector returns, for an item, the handler
// to use; it must be one of the handlers passed to To.
func (b *OneToManyBuilder[T]) WithSelector(selector func(position int, item T) Handler) {
	b.mustHaveHandlers()
	if selector == nil {
		b.fault("nil selector")
	}
	b.bind(&selectorLinker[T]{typ: b.typ, selector: selector, handlers: b.handlers})
}

func (b *OneToManyBuilder[T]) bind(linker registry.Linker) {
	for _, h := range b.handlers {
		b.adapter.register(registry.NewBinding(b.typ, h, linker))
	}
	b.state = bound
}

func (b *OneToManyBuilder[T]) mustBeCollecting() {
	if b.state != collecting {
		b.fault("block already registered")
	}
}

func (b *OneToManyBuilder[T]) mustHaveHandlers() {
	b.mustBeCollecting()
	if len(b.handlers) == 0 {
		b.fault("linker bound before handlers were supplied with To")
	}
}

func (b *OneToManyBuilder[T]) fault(msg string) {
	panic(&errors.BuilderStateError{Type: b.typ, Message: msg})
}
