/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suparena/contactstore"
)

// newCmdVersion returns a command that prints the build information.
func newCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			info := contactstore.GetVersionInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "contacts version %s\n", info.Version)
			fmt.Fprintf(out, "Git commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "Go version: %s\n", info.GoVersion)
		},
	}
}
