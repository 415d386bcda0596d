/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package yamlfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/multitype/errors"
	"github.com/suparena/multitype/registry"
)

type post struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type photo struct {
	URL string `yaml:"url"`
}

func entities() *registry.Entities {
	e := registry.NewEntities()
	e.Register("Post", func() any { return &post{} })
	e.Register("Photo", func() any { return &photo{} })
	return e
}

const fixture = `
items:
  - type: Post
    title: Hello
    body: world
  - type: Photo
    url: https://example.com/a.png
  - type: Comment
    text: ignored
  - type: Post
    title: Again
`

func TestDecode(t *testing.T) {
	items, err := Decode(strings.NewReader(fixture), entities(), false)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, &post{Title: "Hello", Body: "world"}, items[0])
	assert.Equal(t, &photo{URL: "https://example.com/a.png"}, items[1])
	assert.Equal(t, &post{Title: "Again"}, items[2])
}

func TestDecode_Strict(t *testing.T) {
	_, err := Decode(strings.NewReader(fixture), entities(), true)
	assert.True(t, errors.IsUnknownEntity(err))
}

func TestDecode_MissingType(t *testing.T) {
	_, err := Decode(strings.NewReader("items:\n  - title: x\n"), entities(), false)
	assert.True(t, errors.IsValidationError(err))
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader("items: [unclosed"), entities(), false)
	assert.True(t, errors.IsDecode(err))
}

func TestDecode_Empty(t *testing.T) {
	items, err := Decode(strings.NewReader(""), entities(), false)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	items, err := New(path, entities(), false).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestSource_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "none.yaml"), entities(), false).Load(context.Background())
	assert.True(t, errors.IsNotFound(err))
}
