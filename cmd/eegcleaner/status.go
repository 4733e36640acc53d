package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/eegcleaner"
	"github.com/aretw0/eegcleaner/pkg/core"
)

var (
	statusKind  string
	statusQuiet bool
)

var statusCmd = &cobra.Command{
	Use:   "status <artifact-path>",
	Short: "Tell whether an artifact was reviewed",
	Long: `Tell whether the log next to an artifact holds a record for it.
With --quiet nothing is printed and the exit code is 1 when it was not reviewed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := core.ParseKind(statusKind)
		if err != nil {
			return err
		}
		cleaned, err := eegcleaner.IsCleaned(cmd.Context(), args[0], kind, options()...)
		if err != nil {
			return err
		}
		if statusQuiet {
			if !cleaned {
				os.Exit(1)
			}
			return nil
		}
		if cleaned {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: reviewed (%s)\n", args[0], kind)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: not reviewed (%s)\n", args[0], kind)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVarP(&statusKind, "kind", "k", string(core.KindRaw), "Artifact kind: raws, epochs or icas")
	statusCmd.Flags().BoolVarP(&statusQuiet, "quiet", "q", false, "Report through the exit code only")
}
