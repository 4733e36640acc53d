// Package fs stores review logs as one JSON file per directory.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/eegcleaner/pkg/core"
)

// Config holds the configuration for the filesystem store.
type Config struct {
	FileName string               // defaults to core.DefaultFileName
	Version  core.VersionProvider // required
	Logger   *slog.Logger
	Perm     os.FileMode // defaults to 0644
}

// Store implements core.Store on the local filesystem.
//
// It holds no lock: two processes reviewing the same directory overwrite each
// other's changes, last writer wins.
type Store struct {
	config Config
	logger *slog.Logger

	mu    sync.Mutex
	stats stats
}

// NewStore creates a filesystem store.
func NewStore(config Config) *Store {
	if config.FileName == "" {
		config.FileName = core.DefaultFileName
	}
	if config.Perm == 0 {
		config.Perm = 0644
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{config: config, logger: logger}
}

var _ core.Store = (*Store)(nil)

// ResolveDir returns the directory owning path. An existing directory owns
// itself; a file, existing or not, is owned by its parent.
func ResolveDir(path string) (string, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrStorageUnavailable, err)
	}

	info, err := os.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		return abs, nil
	case err != nil && !os.IsNotExist(err):
		return "", fmt.Errorf("%w: %w", core.ErrStorageUnavailable, err)
	}

	dir := filepath.Dir(abs)
	info, err = os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: no directory owns %s", core.ErrStorageUnavailable, path)
	}
	return dir, nil
}

// LogPath returns the log file owning path.
func (s *Store) LogPath(path string) (string, error) {
	dir, err := ResolveDir(path)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, s.config.FileName), nil
}

// Exists reports whether the log file owning path is present.
func (s *Store) Exists(path string) (bool, error) {
	file, err := s.LogPath(path)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(file)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", core.ErrStorageUnavailable, err)
	}
	return true, nil
}

// Load reads the log owning path without touching the disk otherwise.
func (s *Store) Load(ctx context.Context, path string) (*core.LogFile, bool, error) {
	file, err := s.LogPath(path)
	if err != nil {
		return nil, false, err
	}
	log, _, found, err := s.load(file)
	return log, found, err
}

// Read loads the log owning path, or starts an empty one, and persists the
// completed result before returning it.
func (s *Store) Read(ctx context.Context, path string) (*core.LogFile, error) {
	file, err := s.LogPath(path)
	if err != nil {
		return nil, err
	}

	log, healed, found, err := s.load(file)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.Debug("no review log found, creating one", "file", file)
	} else if len(healed) > 0 {
		s.logger.Debug("completed review log schema", "file", file, "keys", healed)
	}
	if len(healed) > 0 {
		s.track(func(st *stats) { st.Heals++ })
	}

	if err := s.persist(ctx, file, log); err != nil {
		return nil, err
	}
	s.track(func(st *stats) { st.Reads++ })
	return log, nil
}

// Write completes log and overwrites the log file owning path with it.
func (s *Store) Write(ctx context.Context, path string, log *core.LogFile) error {
	if log == nil {
		return fmt.Errorf("cannot write a nil review log")
	}
	file, err := s.LogPath(path)
	if err != nil {
		return err
	}
	return s.persist(ctx, file, log)
}

func (s *Store) load(file string) (log *core.LogFile, healed []string, found bool, err error) {
	data, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		log, healed, err = healSchema(nil)
		return log, healed, false, err
	}
	if err != nil {
		return nil, nil, false, fmt.Errorf("%w: %w", core.ErrStorageUnavailable, err)
	}

	log, healed, err = decodeLogFile(data)
	if err != nil {
		return nil, nil, true, fmt.Errorf("%w: %s: %w", core.ErrStorageUnavailable, file, err)
	}
	return log, healed, true, nil
}

func (s *Store) persist(ctx context.Context, file string, log *core.LogFile) error {
	normalize(log)

	if s.config.Version == nil {
		return fmt.Errorf("%w: no version provider configured", core.ErrStorageUnavailable)
	}
	current, err := s.config.Version.Version(ctx)
	if err != nil {
		return fmt.Errorf("%w: cannot determine reviewer version: %w", core.ErrStorageUnavailable, err)
	}
	s.stampVersion(file, log, current)

	data, err := encodeLogFile(log)
	if err != nil {
		return fmt.Errorf("failed to encode review log: %w", err)
	}
	if err := replaceFile(file, data, s.config.Perm); err != nil {
		return fmt.Errorf("%w: %w", core.ErrStorageUnavailable, err)
	}

	s.logger.Debug("saved review log", "file", file)
	s.track(func(st *stats) {
		st.Writes++
		st.LastFile = file
	})
	return nil
}

// stampVersion records current on a log without a tag, an empty tag included.
// A log written by another version keeps its tag and only produces a warning.
func (s *Store) stampVersion(file string, log *core.LogFile, current string) {
	switch log.Config.Version {
	case "":
		log.Config.Version = current
	case current:
	default:
		s.logger.Warn("directory was cleaned with a previous version of the cleaner, the new version might fail",
			"file", file,
			"previous", log.Config.Version,
			"current", current,
		)
		s.track(func(st *stats) { st.VersionWarnings++ })
	}
}
