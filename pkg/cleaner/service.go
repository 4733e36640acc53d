package cleaner

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/aretw0/eegcleaner/pkg/core"
)

// Service handles reconciliation and recording of review decisions.
// It is not safe to run two services against the same directory at once.
type Service struct {
	store  core.Store
	logger *slog.Logger

	mu    sync.Mutex
	stats stats
}

// NewService creates a new Service.
func NewService(store core.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, logger: logger}
}

// Store returns the store the service reads and writes through.
func (s *Service) Store() core.Store {
	return s.store
}

// recordName is the key an artifact is recorded under. An artifact without a
// filename of its own is named after the path it was loaded from.
func recordName(path string, a core.Artifact) string {
	if name := a.Name(); name != "" {
		return name
	}
	return filepath.Base(path)
}

// union returns stored followed by the entries of current it lacks.
func union(stored, current []string) []string {
	out := make([]string, 0, len(stored)+len(current))
	seen := make(map[string]bool, len(stored)+len(current))
	for _, list := range [][]string{stored, current} {
		for _, ch := range list {
			if !seen[ch] {
				seen[ch] = true
				out = append(out, ch)
			}
		}
	}
	return out
}

func cloneStrings(xs []string) []string {
	return append(make([]string, 0, len(xs)), xs...)
}

func cloneInts(xs []int) []int {
	return append(make([]int, 0, len(xs)), xs...)
}
