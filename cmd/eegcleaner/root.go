package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/eegcleaner"
	"github.com/aretw0/eegcleaner/internal/config"
)

var (
	verbose    bool
	fileName   string
	versionTag string

	cfg    config.Config
	logger = slog.New(slog.DiscardHandler)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "eegcleaner",
	Short: "Keep EEG cleaning decisions next to the data",
	Long: `eegcleaner records the bad channels, rejected epochs and excluded ICA
components chosen during a manual review in a JSON log inside each reviewed
directory, and applies them again when the data is reloaded.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if fileName != "" {
			cfg.FileName = fileName
		}
		if versionTag != "" {
			cfg.Version = versionTag
		}

		level := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}
		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
		return nil
	},
}

// options translates the loaded configuration into library options.
func options() []eegcleaner.Option {
	opts := []eegcleaner.Option{
		eegcleaner.WithLogger(logger),
		eegcleaner.WithFileName(cfg.FileName),
		eegcleaner.WithVersionDir(cfg.VersionDir),
	}
	if cfg.Version != "" {
		opts = append(opts, eegcleaner.WithVersion(cfg.Version))
	}
	return opts
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&fileName, "file-name", "", "Log file name (overrides EEGCLEANER_FILE_NAME)")
	rootCmd.PersistentFlags().StringVar(&versionTag, "version-tag", "", "Version tag stamped on logs (overrides EEGCLEANER_VERSION)")
}
