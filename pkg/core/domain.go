// Package core holds the domain of the review log: the persisted record set,
// the artifacts decisions are applied to, and the ports used to store them.
package core

import "encoding/json"

// Kind identifies one of the three record mappings in a log file.
type Kind string

const (
	KindRaw    Kind = "raws"
	KindEpochs Kind = "epochs"
	KindICA    Kind = "icas"
)

// Kinds lists the recognized kinds in on-disk order.
var Kinds = []Kind{KindRaw, KindEpochs, KindICA}

// ParseKind validates a mapping key.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindRaw, KindEpochs, KindICA:
		return k, nil
	}
	return "", &InvalidKindError{Kind: s}
}

// DefaultFileName is the log file kept in every reviewed directory.
const DefaultFileName = "eeg_cleaner.json"

// Drop reasons attached to rejected segments.
const (
	ReasonInspection = "Inspection"
	ReasonUser       = "USER"
)

// RawRecord holds the review of a continuous recording.
type RawRecord struct {
	Bads []string `json:"bads"`
}

// EpochsParams is the snapshot taken the first time a segmented recording is seen.
type EpochsParams struct {
	Tmin   float64 `json:"tmin"`
	Tmax   float64 `json:"tmax"`
	Events []int   `json:"events"`
}

// EpochsRecord holds the review of a segmented recording.
// A nil Selection means no selection was ever recorded.
type EpochsRecord struct {
	Bads      []string      `json:"bads"`
	Selection []int         `json:"selection"`
	Params    *EpochsParams `json:"params,omitempty"`
}

// ICAParams is the snapshot of the fit that produced a decomposition.
// A nil NComponents mirrors an unset component count.
type ICAParams struct {
	ChNames     []string       `json:"ch_names"`
	FitParams   map[string]any `json:"fit_params"`
	NComponents *float64       `json:"n_components"`
	Highpass    float64        `json:"highpass"`
	Lowpass     float64        `json:"lowpass"`
	Sfreq       float64        `json:"sfreq"`
}

// ICARecord holds the review of a decomposition.
type ICARecord struct {
	Exclude []int      `json:"exclude"`
	Params  *ICAParams `json:"params,omitempty"`
}

// LogConfig is the "config" entry of a log file.
type LogConfig struct {
	Version string
	// Extra keeps unknown config keys verbatim.
	Extra map[string]json.RawMessage
}

// LogFile is the record set kept in one directory.
type LogFile struct {
	Raws   map[string]*RawRecord
	Epochs map[string]*EpochsRecord
	ICAs   map[string]*ICARecord
	Config LogConfig
	// Extra keeps unknown top-level keys verbatim.
	Extra map[string]json.RawMessage
}

// DefaultLogFile returns an empty log with every mapping present and no version.
func DefaultLogFile() *LogFile {
	return &LogFile{
		Raws:   make(map[string]*RawRecord),
		Epochs: make(map[string]*EpochsRecord),
		ICAs:   make(map[string]*ICARecord),
		Config: LogConfig{Extra: make(map[string]json.RawMessage)},
		Extra:  make(map[string]json.RawMessage),
	}
}

// Has reports whether the log holds a record for name under kind.
func (l *LogFile) Has(kind Kind, name string) bool {
	var ok bool
	switch kind {
	case KindRaw:
		_, ok = l.Raws[name]
	case KindEpochs:
		_, ok = l.Epochs[name]
	case KindICA:
		_, ok = l.ICAs[name]
	}
	return ok
}

// Len returns the number of records held under kind.
func (l *LogFile) Len(kind Kind) int {
	switch kind {
	case KindRaw:
		return len(l.Raws)
	case KindEpochs:
		return len(l.Epochs)
	case KindICA:
		return len(l.ICAs)
	}
	return 0
}
