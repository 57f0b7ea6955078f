/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command contacts searches and edits the address books declared in a
// contactstore configuration file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suparena/contactstore"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contacts",
		Short:   "Address book CLI",
		Version: contactstore.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultConfig := os.Getenv("CONTACTS_CONFIG")
	if defaultConfig == "" {
		defaultConfig = "contacts.yaml"
	}
	cmd.PersistentFlags().String("config", defaultConfig, "Configuration file (env CONTACTS_CONFIG)")
	cmd.PersistentFlags().String("log-format", "", "Log format (console|json), overrides the configuration file")
	cmd.PersistentFlags().String("log-level", "", "Log level, overrides the configuration file")

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdBooks())
	cmd.AddCommand(newCmdSearch())
	cmd.AddCommand(newCmdPut())
	cmd.AddCommand(newCmdDelete())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "contacts: %s\n", err)
		os.Exit(1)
	}
}
