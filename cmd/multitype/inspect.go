/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/suparena/multitype"
	"github.com/suparena/multitype/internal/feed"
	"github.com/suparena/multitype/registry"
)

func newInspectCmd(a *app) *cobra.Command {
	var resolve bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the dispatch table",
		Long: `Print one row per dispatch code: the item type, its handler and linker.
With --resolve, also load the feed and print the code chosen for each position.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !resolve {
				adapter := multitype.New()
				feed.Register(adapter)
				writeBindings(out, adapter.Types())
				return nil
			}

			adapter, err := a.adapter(cmd.Context())
			if err != nil {
				return err
			}
			writeBindings(out, adapter.Types())
			_, _ = fmt.Fprintln(out)
			return writePositions(out, adapter)
		},
	}

	cmd.Flags().BoolVar(&resolve, "resolve", false, "load the feed and resolve each position")
	return cmd
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	return table
}

func writeBindings(w io.Writer, types *registry.Types[multitype.Handler]) {
	table := newTable(w, "Code", "Type", "Handler", "Linker")
	for code, b := range types.Bindings() {
		table.Append([]string{
			strconv.Itoa(code),
			b.Type.String(),
			fmt.Sprintf("%T", b.Handler),
			linkerName(b.Linker),
		})
	}
	table.Render()
}

func writePositions(w io.Writer, adapter *multitype.Adapter) error {
	table := newTable(w, "Position", "Item", "Code", "Handler")
	for pos, item := range adapter.Items() {
		code, err := adapter.ItemViewType(pos)
		if err != nil {
			return err
		}
		table.Append([]string{
			strconv.Itoa(pos),
			fmt.Sprintf("%T", item),
			strconv.Itoa(code),
			fmt.Sprintf("%T", adapter.HandlerForCode(code)),
		})
	}
	table.Render()
	return nil
}

func linkerName(l registry.Linker) string {
	if l == registry.DefaultLinker {
		return "default"
	}
	return fmt.Sprintf("%T", l)
}
