package cleaner

import (
	"context"
	"fmt"

	"github.com/aretw0/eegcleaner/pkg/core"
	"github.com/aretw0/eegcleaner/pkg/params"
)

// Update records the decisions currently set on artifact and saves the log.
//
// Records are write-once: when the log already holds one for the artifact's
// name and kind, the stored record is kept as is and the call only re-saves
// the log. Parameters still have to match the stored ones.
func (s *Service) Update(ctx context.Context, path string, artifact core.Artifact) error {
	if artifact == nil {
		return fmt.Errorf("%w: nil artifact", core.ErrInvalidArtifact)
	}
	s.logger.Info("updating log", "path", path)

	log, err := s.store.Read(ctx, path)
	if err != nil {
		return err
	}

	name := recordName(path, artifact)
	if err := checkRecorded(name, artifact, log); err != nil {
		return err
	}
	if log.Has(artifact.Kind(), name) {
		s.logger.Info("already recorded, keeping the first review", "kind", artifact.Kind(), "file", name)
		s.track(func(st *stats) { st.Skipped++ })
		return s.store.Write(ctx, path, log)
	}

	switch a := artifact.(type) {
	case *core.Raw:
		log.Raws[name] = &core.RawRecord{Bads: cloneStrings(a.Bads)}
		s.logger.Info("updating bad channels", "file", name, "bads", a.Bads)

	case *core.Epochs:
		rec := &core.EpochsRecord{}
		if err := params.CheckEpochs(a, rec); err != nil {
			return fmt.Errorf("epochs %s: %w", name, err)
		}
		rec.Bads = cloneStrings(a.Bads)
		rec.Selection = cloneInts(a.Selection)
		log.Epochs[name] = rec

		// Reported only; the selection already implies these drops.
		dropped := a.DroppedFor(core.ReasonInspection, core.ReasonUser)
		s.logger.Info("updating bad channels", "file", name, "bads", a.Bads)
		s.logger.Info("updating bad epochs", "file", name, "epochs", dropped)

	case *core.ICA:
		rec := &core.ICARecord{}
		if err := params.CheckICA(a, rec); err != nil {
			return fmt.Errorf("ica %s: %w", name, err)
		}
		rec.Exclude = cloneInts(a.Exclude)
		log.ICAs[name] = rec
		s.logger.Info("updating excluded components", "file", name, "exclude", a.Exclude)

	default:
		return fmt.Errorf("%w: unsupported artifact %T", core.ErrInvalidArtifact, artifact)
	}

	if err := s.store.Write(ctx, path, log); err != nil {
		return err
	}
	s.track(func(st *stats) { st.Recorded++ })
	return nil
}

// checkRecorded compares artifact against the parameters of an existing
// record without touching the record.
func checkRecorded(name string, artifact core.Artifact, log *core.LogFile) error {
	switch a := artifact.(type) {
	case *core.Epochs:
		if rec := log.Epochs[name]; rec != nil {
			snapshot := *rec
			if err := params.CheckEpochs(a, &snapshot); err != nil {
				return fmt.Errorf("epochs %s: %w", name, err)
			}
		}
	case *core.ICA:
		if rec := log.ICAs[name]; rec != nil {
			snapshot := *rec
			if err := params.CheckICA(a, &snapshot); err != nil {
				return fmt.Errorf("ica %s: %w", name, err)
			}
		}
	}
	return nil
}
