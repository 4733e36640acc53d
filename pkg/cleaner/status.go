package cleaner

import (
	"context"
	"path/filepath"

	"github.com/aretw0/eegcleaner/pkg/core"
)

// IsCleaned reports whether the artifact at path has a record under kind.
// It never creates or modifies the log.
func (s *Service) IsCleaned(ctx context.Context, path string, kind core.Kind) (bool, error) {
	k, err := core.ParseKind(string(kind))
	if err != nil {
		return false, err
	}
	s.logger.Info("checking if cleaned", "path", path)

	log, found, err := s.store.Load(ctx, path)
	if err != nil {
		return false, err
	}
	if !found {
		s.logger.Info("no review log found, not cleaned", "path", path)
		return false, nil
	}

	name := filepath.Base(path)
	if !log.Has(k, name) {
		s.logger.Info("no record found, not cleaned", "kind", k, "file", name)
		return false, nil
	}
	s.logger.Info("record found, cleaned", "kind", k, "file", name)
	return true, nil
}
