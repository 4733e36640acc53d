package fs

import (
	"github.com/aretw0/introspection"
)

type stats struct {
	Reads           int
	Writes          int
	Heals           int
	VersionWarnings int
	LastFile        string
}

// StoreState exposes internal state for observability.
type StoreState struct {
	FileName        string `json:"file_name"`
	Reads           int    `json:"reads"`
	Writes          int    `json:"writes"`
	Heals           int    `json:"heals"`
	VersionWarnings int    `json:"version_warnings"`
	LastFile        string `json:"last_file,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return StoreState{
		FileName:        s.config.FileName,
		Reads:           s.stats.Reads,
		Writes:          s.stats.Writes,
		Heals:           s.stats.Heals,
		VersionWarnings: s.stats.VersionWarnings,
		LastFile:        s.stats.LastFile,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "log-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) track(fn func(*stats)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.stats)
}
