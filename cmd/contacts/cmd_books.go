/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"github.com/spf13/cobra"
)

type bookInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Permissions string `json:"permissions"`
}

func newCmdBooks() *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List the configured address books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := buildRegistry(cmd)
			if err != nil {
				return err
			}
			for _, ab := range r.AddressBooks() {
				info := bookInfo{Key: ab.Key(), Name: ab.DisplayName(), Permissions: ab.Permissions().String()}
				if err := printJSON(cmd, info); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
