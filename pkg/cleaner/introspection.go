package cleaner

import (
	"github.com/aretw0/introspection"
)

type stats struct {
	Applied  int
	Recorded int
	Skipped  int
}

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Applied   int    `json:"applied"`
	Recorded  int    `json:"recorded"`
	Skipped   int    `json:"skipped"`
	StoreType string `json:"store_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	storeType := "unknown"
	if comp, ok := s.store.(introspection.Component); ok {
		storeType = comp.ComponentType()
	}

	return ServiceState{
		Applied:   s.stats.Applied,
		Recorded:  s.stats.Recorded,
		Skipped:   s.stats.Skipped,
		StoreType: storeType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "cleaner"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)

func (s *Service) track(fn func(*stats)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.stats)
}
