package core

import "context"

// Store loads and persists the log file owning a path.
// A path is either a reviewed directory or a file inside it.
type Store interface {
	// Read loads the log (or an empty one), completes its schema, stamps the
	// version and persists the result before returning it.
	Read(ctx context.Context, path string) (*LogFile, error)

	// Write completes the schema of log, stamps the version and overwrites the file.
	Write(ctx context.Context, path string, log *LogFile) error

	// Load reads the log without creating, healing or persisting anything.
	// It returns false when no log file exists.
	Load(ctx context.Context, path string) (*LogFile, bool, error)

	// Exists reports whether a log file exists for path.
	Exists(path string) (bool, error)
}

// VersionProvider returns the identifier of the running reviewer build.
type VersionProvider interface {
	Version(ctx context.Context) (string, error)
}

// StaticVersion is a VersionProvider returning a fixed tag.
type StaticVersion string

func (v StaticVersion) Version(context.Context) (string, error) {
	return string(v), nil
}

// Watcher is implemented by stores that can report log changes.
type Watcher interface {
	Watch(ctx context.Context, root string) (<-chan Event, error)
}
