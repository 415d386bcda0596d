/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/multitype/errors"
)

// Factory returns a fresh, addressable value (normally a pointer) that a raw
// record can be decoded into.
type Factory func() any

// Entities maps entity names, as stored in a record's type discriminator, to the
// factory producing the Go value for that entity.
type Entities struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewEntities creates an empty entity registry.
func NewEntities() *Entities {
	return &Entities{factories: make(map[string]Factory)}
}

// Register registers a factory for the given entity name.
// If the name is already registered, it panics to prevent accidental overrides.
func (e *Entities) Register(name string, fn Factory) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.factories[name]; exists {
		panic(fmt.Sprintf("entity registry: entity %q already registered", name))
	}
	e.factories[name] = fn
}

// New returns a fresh value for the named entity, or an *errors.UnknownEntityError.
func (e *Entities) New(name string) (any, error) {
	e.mu.RLock()
	fn, ok := e.factories[name]
	e.mu.RUnlock()

	if !ok {
		return nil, errors.NewUnknownEntityError(name)
	}
	return fn(), nil
}

// Names returns the registered entity names in sorted order.
func (e *Entities) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.factories))
	for name := range e.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultEntities = NewEntities()

// DefaultEntities returns the process-wide entity registry populated by RegisterEntity.
func DefaultEntities() *Entities {
	return defaultEntities
}

// RegisterEntity registers a factory in the process-wide entity registry.
func RegisterEntity(name string, fn Factory) {
	defaultEntities.Register(name, fn)
}

// NewEntity returns a fresh value for name from the process-wide entity registry.
func NewEntity(name string) (any, error) {
	return defaultEntities.New(name)
}
