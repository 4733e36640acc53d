package platform

import (
	"log/slog"

	"github.com/aretw0/eegcleaner/pkg/core"
)

// options holds the internal configuration for the cleaner.
type options struct {
	store      core.Store
	logger     *slog.Logger
	version    core.VersionProvider
	versionDir string
	fileName   string
}

// Option defines a functional option for configuring the cleaner.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		versionDir: ".",
		fileName:   core.DefaultFileName,
	}
}

// WithLogger sets the logger for the store and the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom store (e.g. an in-memory one in tests).
// If provided, the filesystem store is skipped and file name and version
// options are ignored.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithVersionProvider sets where the version tag stamped on logs comes from.
// Defaults to `git describe --always` in the version directory.
func WithVersionProvider(p core.VersionProvider) Option {
	return func(o *options) {
		o.version = p
	}
}

// WithVersion stamps logs with a fixed version tag.
func WithVersion(tag string) Option {
	return func(o *options) {
		o.version = core.StaticVersion(tag)
	}
}

// WithVersionDir sets the git checkout queried for the version tag.
// Defaults to the working directory.
func WithVersionDir(dir string) Option {
	return func(o *options) {
		o.versionDir = dir
	}
}

// WithFileName overrides the log file name (default "eeg_cleaner.json").
func WithFileName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.fileName = name
		}
	}
}
