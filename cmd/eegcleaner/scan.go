package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/eegcleaner/internal/platform"
	"github.com/aretw0/eegcleaner/pkg/core"
)

var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "Summarize every review log below a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		return scan(cmd.Context(), cmd.OutOrStdout(), root)
	},
}

// scan prints one line per log found below root. Logs are only loaded, never
// completed or rewritten.
func scan(ctx context.Context, w io.Writer, root string) error {
	matches, err := doublestar.Glob(os.DirFS(root), "**/"+cfg.FileName)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", root, err)
	}

	store := platform.NewStore(options()...)
	for _, match := range matches {
		dir := filepath.Join(root, filepath.Dir(match))
		log, found, err := store.Load(ctx, dir)
		if err != nil {
			logger.Warn("skipping unreadable log", "dir", dir, "error", err)
			continue
		}
		if !found {
			continue
		}
		version := log.Config.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "%s\t%s=%d\t%s=%d\t%s=%d\tversion=%s\n", dir,
			core.KindRaw, log.Len(core.KindRaw),
			core.KindEpochs, log.Len(core.KindEpochs),
			core.KindICA, log.Len(core.KindICA),
			version)
	}
	logger.Debug("scan finished", "root", root, "logs", len(matches))
	return nil
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
