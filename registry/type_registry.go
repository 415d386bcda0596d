/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"slices"

	"github.com/suparena/multitype/errors"
)

// NotFound is returned by FirstIndexOf when no binding matches.
const NotFound = -1

// Binding pairs an item type with the handler responsible for it and the linker
// used to choose among several handlers registered for that type.
// Bindings are values; replacing one means unregistering its type.
type Binding[H any] struct {
	Type    reflect.Type
	Handler H
	Linker  Linker
}

// NewBinding creates a Binding, falling back to DefaultLinker when linker is nil.
func NewBinding[H any](t reflect.Type, handler H, linker Linker) Binding[H] {
	if linker == nil {
		linker = DefaultLinker
	}
	return Binding[H]{Type: t, Handler: handler, Linker: linker}
}

// IsAncestor reports whether values of type t may be dispatched to a binding
// declared for ancestor. In Go the only ancestors are interfaces t implements.
func IsAncestor(ancestor, t reflect.Type) bool {
	return ancestor != nil && t != nil && t.AssignableTo(ancestor)
}

// Types is an ordered registry of bindings. A binding's position is its dispatch
// code, so insertion order is significant.
//
// Types performs no locking: register everything before dispatching and do not
// mutate it while readers are resolving codes.
type Types[H any] struct {
	bindings []Binding[H]
}

// NewTypes creates an empty registry with room for capacity bindings.
func NewTypes[H any](capacity int) *Types[H] {
	return &Types[H]{bindings: make([]Binding[H], 0, capacity)}
}

// Register appends b. It does not check for existing bindings of the same type.
func (r *Types[H]) Register(b Binding[H]) {
	r.bindings = append(r.bindings, b)
}

// Unregister removes every binding declared for t and reports whether any existed.
func (r *Types[H]) Unregister(t reflect.Type) bool {
	before := len(r.bindings)
	r.bindings = slices.DeleteFunc(r.bindings, func(b Binding[H]) bool {
		return b.Type == t
	})
	return len(r.bindings) != before
}

// Get returns the binding at index. An index outside [0, Size()) panics with
// an *errors.IndexOutOfRangeError.
func (r *Types[H]) Get(index int) Binding[H] {
	if index < 0 || index >= len(r.bindings) {
		panic(&errors.IndexOutOfRangeError{Index: index, Size: len(r.bindings)})
	}
	return r.bindings[index]
}

// FirstIndexOf returns the position of the first binding declared exactly for t,
// or failing that the first binding declared for an ancestor of t, or NotFound.
func (r *Types[H]) FirstIndexOf(t reflect.Type) int {
	for i, b := range r.bindings {
		if b.Type == t {
			return i
		}
	}
	for i, b := range r.bindings {
		if IsAncestor(b.Type, t) {
			return i
		}
	}
	return NotFound
}

// Size returns the number of bindings.
func (r *Types[H]) Size() int {
	return len(r.bindings)
}

// Bindings returns a copy of the bindings in dispatch-code order.
func (r *Types[H]) Bindings() []Binding[H] {
	return slices.Clone(r.bindings)
}

// Clone returns an independent registry with the same bindings.
func (r *Types[H]) Clone() *Types[H] {
	return &Types[H]{bindings: slices.Clone(r.bindings)}
}
