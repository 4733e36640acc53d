package params

import (
	"github.com/aretw0/eegcleaner/pkg/core"
)

// CheckEpochs validates e against rec.Params, snapshotting them when absent.
//
// Segment boundaries must match exactly. Event onsets are only checked for the
// segments that were retained at the last review and are still retained now, so
// a recording that gained segments keeps its reviewed ones valid.
func CheckEpochs(e *core.Epochs, rec *core.EpochsRecord) error {
	if err := e.Validate(); err != nil {
		return err
	}

	if rec.Params == nil {
		rec.Params = &core.EpochsParams{
			Tmin:   e.Tmin,
			Tmax:   e.Tmax,
			Events: cloneInts(e.Events),
		}
		return nil
	}

	p := rec.Params
	if e.Tmin != p.Tmin {
		return &core.ParameterMismatchError{Field: "tmin", Stored: p.Tmin, Current: e.Tmin}
	}
	if e.Tmax != p.Tmax {
		return &core.ParameterMismatchError{Field: "tmax", Stored: p.Tmax, Current: e.Tmax}
	}

	prev := rec.Selection
	if prev == nil {
		prev = e.Selection
	}
	reviewed := toSet(prev)
	known := toSet(p.Events)

	for pos, idx := range e.Selection {
		if !reviewed[idx] {
			continue
		}
		if !known[e.Events[pos]] {
			return &core.ParameterMismatchError{Field: "events", Stored: p.Events, Current: e.Events}
		}
	}
	return nil
}

func toSet(xs []int) map[int]bool {
	set := make(map[int]bool, len(xs))
	for _, x := range xs {
		set[x] = true
	}
	return set
}

func cloneInts(xs []int) []int {
	return append(make([]int, 0, len(xs)), xs...)
}
