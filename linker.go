/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package multitype

import (
	"fmt"
	"reflect"

	"github.com/suparena/multitype/errors"
)

// selectorLinker turns a handler-returning selector into a block offset.
type selectorLinker[T any] struct {
	typ      reflect.Type
	selector func(position int, item T) Handler
	handlers []Handler
}

func (l *selectorLinker[T]) Index(position int, item any) int {
	selected := l.selector(position, item.(T))
	if i := indexOfHandler(l.handlers, selected); i >= 0 {
		return i
	}

	names := make([]string, len(l.handlers))
	for i, h := range l.handlers {
		names[i] = fmt.Sprintf("%T", h)
	}
	panic(&errors.SelectorMismatchError{
		Type:     l.typ,
		Selected: fmt.Sprintf("%T", selected),
		Handlers: names,
	})
}

// indexOfHandler returns the position of selected in handlers, preferring the
// identical instance and otherwise the first handler of the same dynamic type.
func indexOfHandler(handlers []Handler, selected Handler) int {
	st := reflect.TypeOf(selected)
	if st == nil {
		return -1
	}
	if st.Comparable() {
		for i, h := range handlers {
			if h == selected {
				return i
			}
		}
	}
	for i, h := range handlers {
		if reflect.TypeOf(h) == st {
			return i
		}
	}
	return -1
}
