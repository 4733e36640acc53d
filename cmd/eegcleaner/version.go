package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/eegcleaner/pkg/git"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version tag stamped on review logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		tag := cfg.Version
		if tag == "" {
			var err error
			tag, err = git.NewClient(cfg.VersionDir, logger).Version(cmd.Context())
			if err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "eegcleaner version %s\n", tag)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
