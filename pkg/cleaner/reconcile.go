package cleaner

import (
	"context"
	"fmt"

	"github.com/aretw0/eegcleaner/pkg/core"
	"github.com/aretw0/eegcleaner/pkg/params"
)

// Reject applies the decisions stored for artifact onto it, in place.
//
// With required set, a directory that was never reviewed fails with
// core.ErrMissingLog. A parameter mismatch fails with core.ErrParameterMismatch
// and leaves the artifact untouched. Reject never adds records to the log.
func (s *Service) Reject(ctx context.Context, path string, artifact core.Artifact, required bool) error {
	if artifact == nil {
		return fmt.Errorf("%w: nil artifact", core.ErrInvalidArtifact)
	}

	exists, err := s.store.Exists(path)
	if err != nil {
		return err
	}
	if !exists && required {
		return fmt.Errorf("%w: %s", core.ErrMissingLog, path)
	}

	log, err := s.store.Read(ctx, path)
	if err != nil {
		return err
	}

	name := recordName(path, artifact)
	switch a := artifact.(type) {
	case *core.Raw:
		s.rejectRaw(name, a, log)
	case *core.Epochs:
		err = s.rejectEpochs(name, a, log)
	case *core.ICA:
		err = s.rejectICA(name, a, log)
	default:
		err = fmt.Errorf("%w: unsupported artifact %T", core.ErrInvalidArtifact, artifact)
	}
	if err != nil {
		return err
	}

	s.track(func(st *stats) { st.Applied++ })
	return nil
}

func (s *Service) rejectRaw(name string, a *core.Raw, log *core.LogFile) {
	var stored []string
	if rec := log.Raws[name]; rec != nil {
		stored = rec.Bads
	}
	a.Bads = union(stored, a.Bads)
	s.logger.Info("setting previous bad channels", "file", name, "bads", a.Bads)
}

func (s *Service) rejectEpochs(name string, a *core.Epochs, log *core.LogFile) error {
	rec := log.Epochs[name]
	if rec == nil {
		rec = &core.EpochsRecord{}
	}
	if err := params.CheckEpochs(a, rec); err != nil {
		return fmt.Errorf("epochs %s: %w", name, err)
	}

	// No recorded selection keeps everything.
	var toDrop []int
	if rec.Selection != nil {
		kept := make(map[int]bool, len(rec.Selection))
		for _, idx := range rec.Selection {
			kept[idx] = true
		}
		for _, idx := range a.Selection {
			if !kept[idx] {
				toDrop = append(toDrop, idx)
			}
		}
	}

	drop := make(map[int]bool, len(toDrop))
	for _, idx := range toDrop {
		drop[idx] = true
	}
	var positions []int
	for pos, idx := range a.Retained() {
		if drop[idx] {
			positions = append(positions, pos)
		}
	}

	bads := union(rec.Bads, a.Bads)
	if err := a.Drop(positions, core.ReasonInspection); err != nil {
		return fmt.Errorf("epochs %s: %w", name, err)
	}
	a.Bads = bads

	s.logger.Info("setting previous bad channels", "file", name, "bads", a.Bads)
	s.logger.Info("dropping previous bad epochs", "file", name, "epochs", toDrop)
	return nil
}

func (s *Service) rejectICA(name string, a *core.ICA, log *core.LogFile) error {
	rec := log.ICAs[name]
	if rec == nil {
		rec = &core.ICARecord{}
	}
	if err := params.CheckICA(a, rec); err != nil {
		return fmt.Errorf("ica %s: %w", name, err)
	}

	a.Exclude = cloneInts(rec.Exclude)
	s.logger.Info("excluding components", "file", name, "exclude", a.Exclude)
	return nil
}
