/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/suparena/contactstore"
	"github.com/suparena/contactstore/backend"
	"github.com/suparena/contactstore/config"
)

// findFlag recursively searches parents for a flag.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

func flagString(cmd *cobra.Command, name string) string {
	if f := findFlag(cmd, name); f != nil {
		return f.Value.String()
	}
	return ""
}

// buildRegistry loads the configuration named by --config, installs the
// configured logger on the command context and registers every address book.
func buildRegistry(cmd *cobra.Command) (*contactstore.Registry, context.Context, error) {
	cfg, err := config.Load(flagString(cmd, "config"))
	if err != nil {
		return nil, nil, err
	}
	if v := flagString(cmd, "log-format"); v != "" {
		cfg.Logging.Format = v
	}
	if v := flagString(cmd, "log-level"); v != "" {
		cfg.Logging.Level = v
	}
	log, err := cfg.Logging.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	ctx := log.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	r := contactstore.New(contactstore.WithLogger(log))
	if err := backend.Register(ctx, r, cfg); err != nil {
		return nil, nil, err
	}
	return r, ctx, nil
}

// printJSON writes each value as one JSON line.
func printJSON(cmd *cobra.Command, values ...any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, v := range values {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
