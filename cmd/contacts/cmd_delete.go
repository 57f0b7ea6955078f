/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"github.com/spf13/cobra"
)

func newCmdDelete() *cobra.Command {
	var book string
	cmd := &cobra.Command{
		Use:   "delete --book KEY ID",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ctx, err := buildRegistry(cmd)
			if err != nil {
				return err
			}
			deleted, err := r.Delete(ctx, args[0], book)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{"id": args[0], "deleted": deleted})
		},
	}
	cmd.Flags().StringVarP(&book, "book", "b", "", "Address book key")
	_ = cmd.MarkFlagRequired("book")
	return cmd
}
