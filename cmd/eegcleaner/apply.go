package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/eegcleaner"
)

var (
	applyRequired bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <descriptor>",
	Short: "Apply recorded decisions to an artifact",
	Long: `Apply the decisions recorded in the directory log to the artifact described
by a YAML or JSON descriptor, and print the reconciled artifact.`,
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

		if err := eegcleaner.Reject(cmd.Context(), d.Dir, artifact, applyRequired, options()...); err != nil {
			return fmt.Errorf("failed to apply log: %w", err)
		}

		out := describe(artifact)
		out.Dir = d.Dir
		data, err := yaml.Marshal(out)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyRequired, "required", false, "Fail when the directory has no log")
}
