/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package multitype

import (
	"context"
	"reflect"

	"github.com/suparena/multitype/errors"
	"github.com/suparena/multitype/internal/log"
	"github.com/suparena/multitype/registry"
)

// Adapter resolves, for each item of a heterogeneous list, the handler responsible
// for it and the dispatch code a host uses to pool presentations.
//
// Adapter is not safe for concurrent mutation. Register every type before the host
// starts resolving codes; concurrent reads are safe only while no registration runs.
type Adapter struct {
	items []any
	types *registry.Types[Handler]
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithItems sets the initial item list.
func WithItems(items []any) Option {
	return func(a *Adapter) {
		a.items = items
	}
}

// WithInitialCapacity preallocates room for n bindings.
func WithInitialCapacity(n int) Option {
	return func(a *Adapter) {
		a.types = registry.NewTypes[Handler](n)
	}
}

// WithTypes makes the adapter use types as its registry.
func WithTypes(types *registry.Types[Handler]) Option {
	return func(a *Adapter) {
		a.types = types
	}
}

// New creates an Adapter.
func New(opts ...Option) *Adapter {
	a := &Adapter{}
	for _, opt := range opts {
		opt(a)
	}
	if a.types == nil {
		a.types = registry.NewTypes[Handler](0)
	}
	return a
}

// Register binds items of type T to h, replacing any handlers previously
// registered for T.
func Register[T any](a *Adapter, h Handler) {
	a.RegisterType(reflect.TypeFor[T](), h)
}

// RegisterType binds items of type t to h, replacing any handlers previously
// registered for t.
func (a *Adapter) RegisterType(t reflect.Type, h Handler) {
	a.unregisterAllTypesIfNeeded(t)
	a.register(registry.NewBinding[Handler](t, h, nil))
}

// RegisterAll merges every binding of types into this adapter. A type present in
// both is replaced by the incoming block; other bindings keep their codes
// relative to each other.
func (a *Adapter) RegisterAll(types *registry.Types[Handler]) {
	merged := make(map[reflect.Type]bool)
	for _, b := range types.Bindings() {
		if !merged[b.Type] {
			a.unregisterAllTypesIfNeeded(b.Type)
			merged[b.Type] = true
		}
		a.register(b)
	}
}

func (a *Adapter) register(b registry.Binding[Handler]) {
	a.types.Register(b)
	b.Handler.attach(a)
}

func (a *Adapter) unregisterAllTypesIfNeeded(t reflect.Type) {
	if a.types.Unregister(t) {
		log.Warn(log.CatRegistry, "registered type overwritten", "type", t)
	}
}

// Types returns the adapter's registry.
func (a *Adapter) Types() *registry.Types[Handler] {
	return a.types
}

// Items returns the current item list.
func (a *Adapter) Items() []any {
	return a.items
}

// SetItems replaces the item list. The adapter never caches positions, so the
// next resolution reads the new list.
func (a *Adapter) SetItems(items []any) {
	a.items = items
}

// ItemCount returns the number of items.
func (a *Adapter) ItemCount() int {
	return len(a.items)
}

// ResolveDispatchCode returns the code of the handler responsible for item at
// position: the index of the first binding matching the item's type, plus the
// offset chosen by that binding's linker. An item whose type has no exact or
// ancestor binding yields an *errors.HandlerNotFoundError.
func (a *Adapter) ResolveDispatchCode(position int, item any) (int, error) {
	t := reflect.TypeOf(item)
	index := a.types.FirstIndexOf(t)
	if index == registry.NotFound {
		return 0, errors.NewHandlerNotFoundError(t)
	}
	linker := a.types.Get(index).Linker
	return index + linker.Index(position, item), nil
}

// ItemViewType resolves the dispatch code for the item currently at position.
func (a *Adapter) ItemViewType(position int) (int, error) {
	return a.ResolveDispatchCode(position, a.items[position])
}

// HandlerForCode returns the handler registered at code. An unknown code panics
// with an *errors.IndexOutOfRangeError.
func (a *Adapter) HandlerForCode(code int) Handler {
	return a.types.Get(code).Handler
}

// CreatePresentation asks the handler at code for a new presentation.
func (a *Adapter) CreatePresentation(ctx context.Context, code int) (any, error) {
	return a.HandlerForCode(code).CreatePresentation(ctx)
}

// Bind binds the item at position into a presentation created for code.
func (a *Adapter) Bind(code int, presentation any, position int, payloads ...any) error {
	return a.HandlerForCode(code).Bind(presentation, a.items[position], payloads)
}

// ItemID returns the stable id the responsible handler reports for the item at position.
func (a *Adapter) ItemID(position int) (int64, error) {
	code, err := a.ItemViewType(position)
	if err != nil {
		return NoID, err
	}
	return a.HandlerForCode(code).ItemID(a.items[position]), nil
}

// Recycled forwards a recycle event to the handler at code.
func (a *Adapter) Recycled(code int, presentation any) {
	a.HandlerForCode(code).Recycled(presentation)
}

// FailedToRecycle forwards a failed recycle to the handler at code.
func (a *Adapter) FailedToRecycle(code int, presentation any) bool {
	return a.HandlerForCode(code).FailedToRecycle(presentation)
}

// Attached forwards an attach event to the handler at code.
func (a *Adapter) Attached(code int, presentation any) {
	a.HandlerForCode(code).Attached(presentation)
}

// Detached forwards a detach event to the handler at code.
func (a *Adapter) Detached(code int, presentation any) {
	a.HandlerForCode(code).Detached(presentation)
}
