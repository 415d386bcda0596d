/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suparena/multitype"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := multitype.GetVersionInfo()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "multitype version %s\n", info.Version)
			_, _ = fmt.Fprintf(out, "Git commit: %s\n", info.GitCommit)
			_, _ = fmt.Fprintf(out, "Build date: %s\n", info.BuildDate)
			_, err := fmt.Fprintf(out, "Go version: %s\n", info.GoVersion)
			return err
		},
	}
}
