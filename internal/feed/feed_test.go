/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package feed

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/multitype"
	"github.com/suparena/multitype/itemsource/yamlfile"
	"github.com/suparena/multitype/listview"
	"github.com/suparena/multitype/registry"
)

func loadFixture(t *testing.T) []any {
	t.Helper()
	entities := registry.NewEntities()
	RegisterEntities(entities)
	items, err := yamlfile.New("testdata/feed.yaml", entities, false).Load(context.Background())
	require.NoError(t, err)
	return items
}

func TestFixtureDecodesKnownEntities(t *testing.T) {
	items := loadFixture(t)
	require.Len(t, items, 5, "unknown Poll entry is skipped")

	post, ok := items[0].(*Post)
	require.True(t, ok)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, 2025, time.Time(post.Published.DateTime).Year())
	assert.IsType(t, &Photo{}, items[1])
	assert.IsType(t, &Maintenance{}, items[3])
	assert.IsType(t, &Release{}, items[4])
}

func TestDispatchCodes(t *testing.T) {
	items := loadFixture(t)
	a := multitype.New(multitype.WithItems(items))
	Register(a)

	// Short post, long post, photo, notice; codes follow registration order.
	want := []int{0, 2, 1, 3, 3}
	for pos, code := range want {
		got, err := a.ItemViewType(pos)
		require.NoError(t, err)
		assert.Equal(t, code, got, "position %d", pos)
	}
	assert.IsType(t, &LongPostHandler{}, a.HandlerForCode(1))
	assert.IsType(t, &NoticeHandler{}, a.HandlerForCode(3))
}

func TestRenderFeed(t *testing.T) {
	a := multitype.New(multitype.WithItems(loadFixture(t)))
	Register(a)

	var buf bytes.Buffer
	require.NoError(t, listview.New(a).Render(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, "[post] Hello by ana")
	assert.Contains(t, out, "[article] Release notes explained by ben")
	assert.Contains(t, out, "more characters")
	assert.Contains(t, out, "[photo] Sunset (1920x1080)")
	assert.Contains(t, out, "[notice:warn] Maintenance 02:00-03:00 UTC")
	assert.Contains(t, out, "[notice:info] Version 2.4.0 is out: faster sync")
	assert.Less(t, strings.Index(out, "[post]"), strings.Index(out, "[photo]"))
}

func TestItemIDsAreStable(t *testing.T) {
	a := multitype.New(multitype.WithItems([]any{&Post{ID: "p-1"}, &Post{ID: "p-1", Body: strings.Repeat("x", 200)}, &Release{}}))
	Register(a)

	short, err := a.ItemID(0)
	require.NoError(t, err)
	long, err := a.ItemID(1)
	require.NoError(t, err)
	assert.Equal(t, short, long)
	assert.GreaterOrEqual(t, short, int64(0))

	none, err := a.ItemID(2)
	require.NoError(t, err)
	assert.Equal(t, int64(multitype.NoID), none)
}

func TestTimestampAttributeValue(t *testing.T) {
	dt, err := strfmt.ParseDateTime("2025-03-01T09:30:00Z")
	require.NoError(t, err)
	in := Post{ID: "p-1", Published: Timestamp{dt}}

	av, err := attributevalue.MarshalMap(in)
	require.NoError(t, err)
	s, ok := av["Published"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(s.Value, "2025-03-01T09:30:00"))

	var out Post
	require.NoError(t, attributevalue.UnmarshalMap(av, &out))
	assert.True(t, time.Time(in.Published.DateTime).Equal(time.Time(out.Published.DateTime)))

	err = out.Published.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberN{Value: "1"})
	assert.Error(t, err)
}
