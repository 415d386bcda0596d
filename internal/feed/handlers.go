/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package feed

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/suparena/multitype"
	"github.com/suparena/multitype/listview"
)

// LongBodyThreshold is the body length above which a post uses the long layout.
const LongBodyThreshold = 100

// Register binds the feed item types to their handlers.
func Register(a *multitype.Adapter) {
	multitype.RegisterOneToMany[*Post](a).
		To(&ShortPostHandler{}, &LongPostHandler{}).
		WithLinker(func(_ int, p *Post) int {
			if len(p.Body) > LongBodyThreshold {
				return 1
			}
			return 0
		})
	multitype.Register[*Photo](a, &PhotoHandler{})
	multitype.Register[Notice](a, &NoticeHandler{})
}

func textView(p any) *listview.TextView {
	return p.(*listview.TextView)
}

func newTextView(context.Context) (any, error) {
	return &listview.TextView{}, nil
}

func stableID(id string) int64 {
	if id == "" {
		return multitype.NoID
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return int64(h.Sum64() >> 1)
}

type ShortPostHandler struct {
	multitype.BaseHandler
}

func (h *ShortPostHandler) CreatePresentation(ctx context.Context) (any, error) {
	return newTextView(ctx)
}

func (h *ShortPostHandler) Bind(p any, item any, _ []any) error {
	post := item.(*Post)
	textView(p).SetLines(
		fmt.Sprintf("[post] %s by %s", post.Title, post.Author),
		"  "+post.Body,
	)
	return nil
}

func (h *ShortPostHandler) ItemID(item any) int64 {
	return stableID(item.(*Post).ID)
}

// LongPostHandler shows a post's first LongBodyThreshold characters and how
// much was cut.
type LongPostHandler struct {
	multitype.BaseHandler
}

func (h *LongPostHandler) CreatePresentation(ctx context.Context) (any, error) {
	return newTextView(ctx)
}

func (h *LongPostHandler) Bind(p any, item any, _ []any) error {
	post := item.(*Post)
	body := []rune(post.Body)
	lines := []string{fmt.Sprintf("[article] %s by %s (%s)", post.Title, post.Author, post.Published)}
	if len(body) <= LongBodyThreshold {
		lines = append(lines, "  "+post.Body)
	} else {
		lines = append(lines,
			"  "+strings.TrimSpace(string(body[:LongBodyThreshold]))+"...",
			fmt.Sprintf("  (%d more characters)", len(body)-LongBodyThreshold),
		)
	}
	textView(p).SetLines(lines...)
	return nil
}

func (h *LongPostHandler) ItemID(item any) int64 {
	return stableID(item.(*Post).ID)
}

type PhotoHandler struct {
	multitype.BaseHandler
}

func (h *PhotoHandler) CreatePresentation(ctx context.Context) (any, error) {
	return newTextView(ctx)
}

func (h *PhotoHandler) Bind(p any, item any, _ []any) error {
	photo := item.(*Photo)
	textView(p).SetLines(
		fmt.Sprintf("[photo] %s (%dx%d)", photo.Caption, photo.Width, photo.Height),
		"  "+photo.URL,
	)
	return nil
}

func (h *PhotoHandler) ItemID(item any) int64 {
	return stableID(item.(*Photo).ID)
}

type NoticeHandler struct {
	multitype.BaseHandler
}

func (h *NoticeHandler) CreatePresentation(ctx context.Context) (any, error) {
	return newTextView(ctx)
}

func (h *NoticeHandler) Bind(p any, item any, _ []any) error {
	notice := item.(Notice)
	textView(p).SetLines(fmt.Sprintf("[notice:%s] %s", notice.Severity(), notice.Headline()))
	return nil
}
