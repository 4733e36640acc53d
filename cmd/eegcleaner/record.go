package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/eegcleaner"
)

var recordCmd = &cobra.Command{
	Use:   "record <descriptor>",
	Short: "Record the decisions carried by an artifact",
	Long: `Record the bad channels, retained epochs or excluded components of the
artifact described by a YAML or JSON descriptor. An artifact already present
in the log is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDescriptor(args[0])
		if err != nil {
			return err
		}
		artifact, err := d.artifact()
		if err != nil {
			return err
		}

		if err := eegcleaner.UpdateLog(cmd.Context(), d.Dir, artifact, options()...); err != nil {
			return fmt.Errorf("failed to update log: %w", err)
		}
		name := artifact.Name()
		if name == "" {
			name = filepath.Base(d.Dir)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "recorded %s/%s in %s\n", artifact.Kind(), name, d.Dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)
}
