/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command multitype loads a heterogeneous item feed, dispatches every item to
// its registered handler and renders the result.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
