/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suparena/contactstore/contactmodels"
)

func newCmdPut() *cobra.Command {
	var book, id string
	cmd := &cobra.Command{
		Use:   "put --book KEY FIELD=VALUE...",
		Short: "Create a contact, or update it when --id is given",
		Long: "Create a contact, or update it when --id is given. Repeating a field\n" +
			"adds another value, e.g. EMAIL=a@example.com EMAIL=b@example.com.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseFields(args)
			if err != nil {
				return err
			}
			if id != "" {
				c.SetID(id)
			}
			r, ctx, err := buildRegistry(cmd)
			if err != nil {
				return err
			}
			saved, err := r.CreateOrUpdate(ctx, c, book)
			if err != nil {
				return err
			}
			return printJSON(cmd, saved)
		},
	}
	cmd.Flags().StringVarP(&book, "book", "b", "", "Address book key")
	cmd.Flags().StringVar(&id, "id", "", "Id of the contact to update")
	_ = cmd.MarkFlagRequired("book")
	return cmd
}

// parseFields builds a contact from FIELD=VALUE arguments, keeping first-seen
// field order.
func parseFields(args []string) (*contactmodels.Contact, error) {
	c := contactmodels.NewContact()
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid field %q, want FIELD=VALUE", arg)
		}
		c.Set(name, append(c.Values(name), value)...)
	}
	return c, nil
}
