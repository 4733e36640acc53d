package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/eegcleaner/internal/platform"
	"github.com/aretw0/eegcleaner/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Report review logs as they change",
	Long: `Watch a directory tree and print a summary of every review log written
below it, until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return watch(ctx, cmd.OutOrStdout(), root)
	},
}

func watch(ctx context.Context, w io.Writer, root string) error {
	store := platform.NewStore(options()...)
	watcher, ok := store.(core.Watcher)
	if !ok {
		return fmt.Errorf("store %T cannot watch", store)
	}

	events, err := watcher.Watch(ctx, root)
	if err != nil {
		return err
	}
	logger.Info("watching review logs", "root", root)

	for e := range events {
		if e.Type == core.EventDelete {
			fmt.Fprintf(w, "%s\tremoved\n", e.Dir)
			continue
		}
		log, found, err := store.Load(ctx, e.Dir)
		if err != nil || !found {
			logger.Debug("log vanished before it could be read", "dir", e.Dir, "error", err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s=%d\t%s=%d\t%s=%d\n", e.Dir,
			core.KindRaw, log.Len(core.KindRaw),
			core.KindEpochs, log.Len(core.KindEpochs),
			core.KindICA, log.Len(core.KindICA))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
