/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

// Linker picks one handler out of a block of handlers registered for the same
// item type. Index returns an offset in [0, k) for a block of k handlers.
type Linker interface {
	Index(position int, item any) int
}

// LinkerFunc adapts a plain function to the Linker interface.
type LinkerFunc func(position int, item any) int

// Index calls f(position, item).
func (f LinkerFunc) Index(position int, item any) int {
	return f(position, item)
}

type defaultLinker struct{}

func (defaultLinker) Index(int, any) int { return 0 }

// DefaultLinker always selects the first handler of a block.
var DefaultLinker Linker = defaultLinker{}
