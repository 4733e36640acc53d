package platform

import (
	"context"

	"github.com/aretw0/eegcleaner/pkg/core"
)

// ReadLog loads, completes and persists the log owning path.
func ReadLog(ctx context.Context, path string, opts ...Option) (*core.LogFile, error) {
	return NewStore(opts...).Read(ctx, path)
}

// SaveLog overwrites the log owning path.
func SaveLog(ctx context.Context, path string, log *core.LogFile, opts ...Option) error {
	return NewStore(opts...).Write(ctx, path, log)
}

// UpdateLog records the decisions set on artifact.
func UpdateLog(ctx context.Context, path string, artifact core.Artifact, opts ...Option) error {
	return New(opts...).Update(ctx, path, artifact)
}

// Reject applies the stored decisions onto artifact.
func Reject(ctx context.Context, path string, artifact core.Artifact, required bool, opts ...Option) error {
	return New(opts...).Reject(ctx, path, artifact, required)
}

// IsCleaned reports whether the artifact at path was reviewed under kind.
func IsCleaned(ctx context.Context, path string, kind core.Kind, opts ...Option) (bool, error) {
	return New(opts...).IsCleaned(ctx, path, kind)
}
