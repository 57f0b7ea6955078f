/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"github.com/spf13/cobra"

	"github.com/suparena/contactstore/contactmodels"
)

func newCmdSearch() *cobra.Command {
	var (
		props []string
		opts  contactmodels.SearchOptions
	)
	cmd := &cobra.Command{
		Use:   "search [pattern]",
		Short: "Search every address book",
		Long:  "Search every address book in configuration order. An empty pattern lists all contacts.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ctx, err := buildRegistry(cmd)
			if err != nil {
				return err
			}
			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}
			found, err := r.Search(ctx, pattern, props, opts)
			if err != nil {
				return err
			}
			for _, c := range found {
				if err := printJSON(cmd, c); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&props, "prop", "p", nil, "Restrict matching to these fields (repeatable)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Maximum results per address book (0 = no limit)")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "Results to skip per address book")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Require an exact match instead of a substring")
	return cmd
}
