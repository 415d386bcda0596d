/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/suparena/multitype/errors"
)

type shape interface{ Area() float64 }
type named interface{ Name() string }

type square struct{ side float64 }

func (s square) Area() float64 { return s.side * s.side }
func (s square) Name() string { return "square" }

type circle struct{ r float64 }

func (c circle) Area() float64 { return 3 * c.r * c.r }

type label struct{}

var (
	shapeType  = reflect.TypeFor[shape]()
	namedType  = reflect.TypeFor[named]()
	squareType = reflect.TypeFor[square]()
	circleType = reflect.TypeFor[circle]()
	labelType  = reflect.TypeFor[label]()
)

func bind(t reflect.Type, h string) Binding[string] {
	return NewBinding(t, h, nil)
}

func TestTypes_RegisterAppendsInOrder(t *testing.T) {
	types := NewTypes[string](0)
	types.Register(bind(squareType, "sq"))
	types.Register(bind(circleType, "ci"))

	require.Equal(t, 2, types.Size())
	assert.Equal(t, "sq", types.Get(0).Handler)
	assert.Equal(t, "ci", types.Get(1).Handler)
	assert.Equal(t, DefaultLinker, types.Get(0).Linker)
}

func TestTypes_UnregisterRemovesEveryBinding(t *testing.T) {
	types := NewTypes[string](0)
	types.Register(bind(squareType, "sq0"))
	types.Register(bind(circleType, "ci"))
	types.Register(bind(squareType, "sq1"))

	require.True(t, types.Unregister(squareType))
	require.Equal(t, 1, types.Size())
	assert.Equal(t, "ci", types.Get(0).Handler)

	assert.False(t, types.Unregister(squareType), "second unregister is a no-op")
	assert.False(t, types.Unregister(labelType))
}

func TestTypes_GetOutOfRangePanics(t *testing.T) {
	types := NewTypes[string](0)
	types.Register(bind(squareType, "sq"))

	for _, idx := range []int{-1, 1, 10} {
		t.Run(fmt.Sprint(idx), func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				assert.True(t, errors.IsProgramming(r))
				fault, ok := r.(*errors.IndexOutOfRangeError)
				require.True(t, ok)
				assert.Equal(t, idx, fault.Index)
				assert.Equal(t, 1, fault.Size)
			}()
			types.Get(idx)
		})
	}
}

func TestTypes_FirstIndexOf(t *testing.T) {
	tests := []struct {
		name     string
		bindings []reflect.Type
		query    reflect.Type
		want     int
	}{
		{"exact match", []reflect.Type{circleType, squareType}, squareType, 1},
		{"exact beats earlier ancestor", []reflect.Type{shapeType, squareType}, squareType, 1},
		{"ancestor fallback", []reflect.Type{labelType, shapeType}, circleType, 1},
		{"first registered ancestor wins", []reflect.Type{namedType, shapeType}, squareType, 0},
		{"first registered ancestor wins reversed", []reflect.Type{shapeType, namedType}, squareType, 0},
		{"unrelated ancestor skipped", []reflect.Type{namedType, shapeType}, circleType, 1},
		{"not found", []reflect.Type{squareType}, labelType, NotFound},
		{"nil type", []reflect.Type{shapeType}, nil, NotFound},
		{"empty registry", nil, squareType, NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			types := NewTypes[string](len(tt.bindings))
			for i, bt := range tt.bindings {
				types.Register(bind(bt, fmt.Sprint(i)))
			}
			assert.Equal(t, tt.want, types.FirstIndexOf(tt.query))
		})
	}
}

func TestTypes_CloneIsIndependent(t *testing.T) {
	types := NewTypes[string](0)
	types.Register(bind(squareType, "sq"))

	clone := types.Clone()
	clone.Register(bind(circleType, "ci"))
	types.Unregister(squareType)

	assert.Equal(t, 0, types.Size())
	require.Equal(t, 2, clone.Size())
	assert.Equal(t, "sq", clone.Get(0).Handler)

	snapshot := clone.Bindings()
	snapshot[0].Handler = "changed"
	assert.Equal(t, "sq", clone.Get(0).Handler)
}

func TestLinkerFunc(t *testing.T) {
	l := LinkerFunc(func(position int, item any) int { return position % 2 })
	assert.Equal(t, 1, l.Index(3, nil))
	assert.Equal(t, 0, DefaultLinker.Index(7, "anything"))
}

// Property: after any sequence of registrations and removals, each binding's code
// is its position and every remaining binding is the one last registered for it.
func TestTypes_PositionalCodesProperty(t *testing.T) {
	pool := []reflect.Type{squareType, circleType, labelType, shapeType, namedType}

	rapid.Check(t, func(t *rapid.T) {
		types := NewTypes[string](0)
		var model []Binding[string]

		numOps := rapid.IntRange(1, 60).Draw(t, "numOps")
		for i := 0; i < numOps; i++ {
			typ := pool[rapid.IntRange(0, len(pool)-1).Draw(t, "type")]
			if rapid.Bool().Draw(t, "register") {
				b := bind(typ, fmt.Sprintf("h%d", i))
				types.Register(b)
				model = append(model, b)
				continue
			}

			removed := types.Unregister(typ)
			kept := model[:0:0]
			for _, b := range model {
				if b.Type != typ {
					kept = append(kept, b)
				}
			}
			if removed != (len(kept) != len(model)) {
				t.Fatalf("Unregister(%v) reported %v", typ, removed)
			}
			model = kept
		}

		if types.Size() != len(model) {
			t.Fatalf("size %d, model %d", types.Size(), len(model))
		}
		for code, b := range model {
			if got := types.Get(code); got.Type != b.Type || got.Handler != b.Handler {
				t.Fatalf("code %d: got %v/%s want %v/%s", code, got.Type, got.Handler, b.Type, b.Handler)
			}
		}
		for _, typ := range pool {
			idx := types.FirstIndexOf(typ)
			if idx == NotFound {
				continue
			}
			if got := types.Get(idx).Type; got != typ && !IsAncestor(got, typ) {
				t.Fatalf("FirstIndexOf(%v) returned unrelated binding %v", typ, got)
			}
		}
	})
}
