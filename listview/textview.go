/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package listview

import (
	"io"
	"strings"
)

// TextView is a plain-text presentation: a block of lines followed by a blank line.
type TextView struct {
	lines     []string
	Transient bool
}

// SetLines replaces the view's content.
func (v *TextView) SetLines(lines ...string) {
	v.lines = append(v.lines[:0], lines...)
}

// Lines returns the current content.
func (v *TextView) Lines() []string {
	return v.lines
}

func (v *TextView) HasTransientState() bool {
	return v.Transient
}

// WriteTo writes the lines followed by a separating blank line.
func (v *TextView) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, strings.Join(v.lines, "\n")+"\n\n")
	return int64(n), err
}
