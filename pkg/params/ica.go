package params

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"

	"github.com/aretw0/eegcleaner/pkg/core"
)

// CheckICA validates a against rec.Params field by field, snapshotting them
// when absent. The first differing field is reported.
func CheckICA(a *core.ICA, rec *core.ICARecord) error {
	fit, err := canonicalMap(a.FitParams)
	if err != nil {
		return fmt.Errorf("%w: fit params: %v", core.ErrInvalidArtifact, err)
	}

	if rec.Params == nil {
		rec.Params = &core.ICAParams{
			ChNames:     append(make([]string, 0, len(a.ChNames)), a.ChNames...),
			FitParams:   fit,
			NComponents: cloneFloat(a.NComponents),
			Highpass:    a.Highpass,
			Lowpass:     a.Lowpass,
			Sfreq:       a.Sfreq,
		}
		return nil
	}

	p := rec.Params
	if !slices.Equal(a.ChNames, p.ChNames) {
		return &core.ParameterMismatchError{Field: "ch_names", Stored: p.ChNames, Current: a.ChNames}
	}

	stored, err := canonicalMap(p.FitParams)
	if err != nil {
		return fmt.Errorf("%w: stored fit params: %v", core.ErrStorageUnavailable, err)
	}
	if !reflect.DeepEqual(fit, stored) {
		return &core.ParameterMismatchError{Field: "fit_params", Stored: p.FitParams, Current: a.FitParams}
	}

	if !equalFloat(a.NComponents, p.NComponents) {
		return &core.ParameterMismatchError{Field: "n_components", Stored: fmtFloat(p.NComponents), Current: fmtFloat(a.NComponents)}
	}
	if a.Highpass != p.Highpass {
		return &core.ParameterMismatchError{Field: "highpass", Stored: p.Highpass, Current: a.Highpass}
	}
	if a.Lowpass != p.Lowpass {
		return &core.ParameterMismatchError{Field: "lowpass", Stored: p.Lowpass, Current: a.Lowpass}
	}
	if a.Sfreq != p.Sfreq {
		return &core.ParameterMismatchError{Field: "sfreq", Stored: p.Sfreq, Current: a.Sfreq}
	}
	return nil
}

// canonicalMap round-trips m through JSON so values built in memory compare
// equal to values decoded from the log (ints become float64, and so on).
func canonicalMap(m map[string]any) (map[string]any, error) {
	if m == nil {
		return map[string]any{}, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any)
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func equalFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func fmtFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
