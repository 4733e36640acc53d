package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/eegcleaner"
	"github.com/aretw0/eegcleaner/internal/platform"
	"github.com/aretw0/eegcleaner/pkg/adapters/fs"
)

var (
	showYAML bool
)

var showCmd = &cobra.Command{
	Use:   "show [dir]",
	Short: "Print the review log of a directory",
	Long: `Print the review log of a directory, creating or completing it on disk.
Without an argument, the closest directory holding a log above the working
directory is used, or the working directory itself.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		} else if found, err := platform.FindLogDir(".", cfg.FileName); err == nil {
			dir = found
		}

		log, err := eegcleaner.ReadLog(cmd.Context(), dir, options()...)
		if err != nil {
			return fmt.Errorf("failed to read log: %w", err)
		}

		var data []byte
		if showYAML {
			data, err = fs.EncodeYAML(log)
		} else {
			data, err = fs.EncodeJSON(log)
		}
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showYAML, "yaml", false, "Output in YAML format")
}
