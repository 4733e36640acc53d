package eegcleaner

import (
	"context"
	"log/slog"

	"github.com/aretw0/eegcleaner/internal/platform"
	"github.com/aretw0/eegcleaner/pkg/cleaner"
	"github.com/aretw0/eegcleaner/pkg/core"
)

// --- Types ---

// Kind names one of the three artifact families of a log.
type Kind = core.Kind

const (
	KindRaw    = core.KindRaw
	KindEpochs = core.KindEpochs
	KindICA    = core.KindICA
)

// LogFile is the content of a directory's review log.
type LogFile = core.LogFile

// Artifact is a raw recording, an epoched recording or an ICA decomposition.
type Artifact = core.Artifact

// Raw, Epochs and ICA are the concrete artifacts.
type (
	Raw    = core.Raw
	Epochs = core.Epochs
	ICA    = core.ICA
)

// --- Configuration ---

// Option defines a functional option for configuring the cleaner.
type Option = platform.Option

// WithLogger sets the logger for the store and the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom log store.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithVersionProvider sets where the version tag stamped on logs comes from.
func WithVersionProvider(p core.VersionProvider) Option {
	return platform.WithVersionProvider(p)
}

// WithVersion stamps logs with a fixed version tag instead of asking git.
func WithVersion(tag string) Option {
	return platform.WithVersion(tag)
}

// WithVersionDir sets the git checkout queried for the version tag.
func WithVersionDir(dir string) Option {
	return platform.WithVersionDir(dir)
}

// WithFileName overrides the log file name.
func WithFileName(name string) Option {
	return platform.WithFileName(name)
}

// --- Factory ---

// New creates a cleaner service.
func New(opts ...Option) *cleaner.Service {
	return platform.New(opts...)
}

// --- Operations ---

// ReadLog returns the log owning path, creating and completing it on disk.
func ReadLog(ctx context.Context, path string, opts ...Option) (*LogFile, error) {
	return platform.ReadLog(ctx, path, opts...)
}

// SaveLog overwrites the log owning path.
func SaveLog(ctx context.Context, path string, log *LogFile, opts ...Option) error {
	return platform.SaveLog(ctx, path, log, opts...)
}

// UpdateLog records the decisions carried by artifact. Existing records are
// never overwritten.
func UpdateLog(ctx context.Context, path string, artifact Artifact, opts ...Option) error {
	return platform.UpdateLog(ctx, path, artifact, opts...)
}

// Reject applies the decisions recorded for artifact onto it in place.
// With required set, a directory without a log is an error.
func Reject(ctx context.Context, path string, artifact Artifact, required bool, opts ...Option) error {
	return platform.Reject(ctx, path, artifact, required, opts...)
}

// IsCleaned reports whether the artifact at path has a record under kind.
func IsCleaned(ctx context.Context, path string, kind Kind, opts ...Option) (bool, error) {
	return platform.IsCleaned(ctx, path, kind, opts...)
}
