/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package yamlfile loads multitype item lists from YAML fixtures of the form
//
//	items:
//	  - type: Post
//	    title: Hello
//	  - type: Photo
//	    url: https://example.com/a.png
//
// Each entry is decoded into the value registered for its type key.
package yamlfile

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/multitype/errors"
	"github.com/suparena/multitype/internal/log"
	"github.com/suparena/multitype/registry"
)

// TypeKey is the mapping key naming an entry's entity.
const TypeKey = "type"

type document struct {
	Items []yaml.Node `yaml:"items"`
}

// Source reads a YAML fixture from disk on every Load.
type Source struct {
	path     string
	entities *registry.Entities
	strict   bool
}

// New creates a Source for the fixture at path. When strict is set an entry
// with an unregistered type fails the load instead of being skipped.
func New(path string, entities *registry.Entities, strict bool) *Source {
	return &Source{path: path, entities: entities, strict: strict}
}

// Load reads and decodes the fixture.
func (s *Source) Load(ctx context.Context) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("fixture", s.path)
		}
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	return Decode(f, s.entities, s.strict)
}

// Decode reads one YAML document from r and decodes its items.
func Decode(r io.Reader, entities *registry.Entities, strict bool) ([]any, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.NewDecodeError("fixture", err)
	}

	items := make([]any, 0, len(doc.Items))
	for i := range doc.Items {
		node := &doc.Items[i]

		var head struct {
			Type string `yaml:"type"`
		}
		if err := node.Decode(&head); err != nil {
			return nil, errors.NewDecodeError(fmt.Sprintf("item %d", i), err)
		}
		if head.Type == "" {
			return nil, errors.NewValidationError(TypeKey, fmt.Sprintf("item %d (line %d) has no type", i, node.Line))
		}

		obj, err := entities.New(head.Type)
		if err != nil {
			if strict {
				return nil, err
			}
			log.Warn(log.CatSource, "skipping unknown entity", "type", head.Type, "line", node.Line)
			continue
		}
		if err := node.Decode(obj); err != nil {
			return nil, errors.NewDecodeError(head.Type, err)
		}
		items = append(items, obj)
	}
	return items, nil
}
