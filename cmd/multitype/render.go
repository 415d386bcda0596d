/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suparena/multitype/internal/log"
	"github.com/suparena/multitype/listview"
)

func newRenderCmd(a *app) *cobra.Command {
	var showStats bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every item of the feed",
		Long: `Load the configured feed, resolve a handler for each item and print
the rendered rows in order.

Examples:
  # Render the feed described by ./multitype.yaml
  multitype render

  # Render from another config and print pooling statistics
  multitype render -c staging.yaml --stats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := a.adapter(cmd.Context())
			if err != nil {
				return err
			}

			list := listview.New(adapter)
			list.SetMaxPooled(a.cfg.MaxPooled)
			if err := list.Render(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return err
			}

			stats := list.Stats()
			log.Debug(log.CatView, "render complete",
				"created", stats.Created, "reused", stats.Reused,
				"recycled", stats.Recycled, "dropped", stats.Dropped)
			if showStats {
				_, err = fmt.Fprintf(cmd.ErrOrStderr(), "created=%d reused=%d recycled=%d dropped=%d\n",
					stats.Created, stats.Reused, stats.Recycled, stats.Dropped)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&showStats, "stats", false, "print presentation pooling statistics")
	return cmd
}
