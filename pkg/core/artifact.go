package core

import (
	"fmt"
	"path/filepath"
	"slices"
)

// Artifact is a reviewed recording. The set of implementations is closed:
// *Raw, *Epochs and *ICA.
type Artifact interface {
	// Kind returns the log mapping the artifact is recorded under.
	Kind() Kind
	// Name returns the key the artifact is recorded with.
	Name() string
	isArtifact()
}

// Raw is a continuous recording.
type Raw struct {
	Filename string
	Bads     []string
}

func (r *Raw) Kind() Kind   { return KindRaw }
func (r *Raw) Name() string { return baseName(r.Filename) }
func (*Raw) isArtifact()    {}

// Epochs is a segmented recording.
//
// Selection holds the original index of every retained segment and Events the
// onset sample of each of them, position by position. DropLog, when present,
// has one entry per original segment listing the reasons it was dropped; an
// empty entry means the segment is retained.
type Epochs struct {
	Filename  string
	Tmin      float64
	Tmax      float64
	Events    []int
	Selection []int
	DropLog   [][]string
	Bads      []string
}

func (e *Epochs) Kind() Kind   { return KindEpochs }
func (e *Epochs) Name() string { return baseName(e.Filename) }
func (*Epochs) isArtifact()    {}

// Validate checks that events, selection and drop log agree.
func (e *Epochs) Validate() error {
	if len(e.Events) != len(e.Selection) {
		return fmt.Errorf("%w: %d events for %d selected segments", ErrInvalidArtifact, len(e.Events), len(e.Selection))
	}
	if e.DropLog == nil {
		return nil
	}
	for _, idx := range e.Selection {
		if idx < 0 || idx >= len(e.DropLog) {
			return fmt.Errorf("%w: selected segment %d outside drop log of length %d", ErrInvalidArtifact, idx, len(e.DropLog))
		}
		if len(e.DropLog[idx]) > 0 {
			return fmt.Errorf("%w: selected segment %d is marked as dropped", ErrInvalidArtifact, idx)
		}
	}
	// Positions into Selection and into the retained segments must coincide.
	if kept := e.Retained(); !slices.Equal(kept, e.Selection) {
		return fmt.Errorf("%w: retained segments %v differ from selection %v", ErrInvalidArtifact, kept, e.Selection)
	}
	return nil
}

// Retained returns the original indices of the segments not dropped for any
// reason, in order.
func (e *Epochs) Retained() []int {
	if e.DropLog == nil {
		return slices.Clone(e.Selection)
	}
	var kept []int
	for i, reasons := range e.DropLog {
		if len(reasons) == 0 {
			kept = append(kept, i)
		}
	}
	return kept
}

// DroppedFor returns the original indices whose drop log mentions any of reasons.
func (e *Epochs) DroppedFor(reasons ...string) []int {
	var out []int
	for i, logged := range e.DropLog {
		for _, r := range logged {
			if slices.Contains(reasons, r) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// Drop removes the retained segments at positions, tagging each with reason.
// Positions are validated before anything changes.
func (e *Epochs) Drop(positions []int, reason string) error {
	if len(positions) == 0 {
		return nil
	}

	drop := make(map[int]bool, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(e.Selection) {
			return fmt.Errorf("%w: drop position %d out of range [0, %d)", ErrInvalidArtifact, p, len(e.Selection))
		}
		drop[p] = true
	}

	selection := make([]int, 0, len(e.Selection)-len(drop))
	events := make([]int, 0, len(e.Selection)-len(drop))
	for pos, idx := range e.Selection {
		if drop[pos] {
			if idx >= 0 && idx < len(e.DropLog) {
				e.DropLog[idx] = append(e.DropLog[idx], reason)
			}
			continue
		}
		selection = append(selection, idx)
		if pos < len(e.Events) {
			events = append(events, e.Events[pos])
		}
	}
	e.Selection = selection
	e.Events = events
	return nil
}

// ICA is a fitted decomposition.
type ICA struct {
	Filename    string
	ChNames     []string
	FitParams   map[string]any
	NComponents *float64
	Highpass    float64
	Lowpass     float64
	Sfreq       float64
	Exclude     []int
}

func (a *ICA) Kind() Kind   { return KindICA }
func (a *ICA) Name() string { return baseName(a.Filename) }
func (*ICA) isArtifact()    {}

func baseName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
