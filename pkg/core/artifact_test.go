package core_test

import (
	"errors"
	"testing"

	"github.com/aretw0/eegcleaner/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEpochs() *core.Epochs {
	// Six original segments, #1 already rejected by an automatic criterion.
	return &core.Epochs{
		Filename:  "/data/subj01/subj01-epo.fif",
		Tmin:      -0.2,
		Tmax:      0.5,
		Events:    []int{100, 300, 400, 500, 600},
		Selection: []int{0, 2, 3, 4, 5},
		DropLog:   [][]string{{}, {"EEG 001"}, {}, {}, {}, {}},
	}
}

func TestEpochs_Name(t *testing.T) {
	e := newEpochs()
	assert.Equal(t, "subj01-epo.fif", e.Name())
	assert.Equal(t, core.KindEpochs, e.Kind())

	assert.Equal(t, "", (&core.Raw{}).Name())
}

func TestEpochs_Drop(t *testing.T) {
	e := newEpochs()

	require.NoError(t, e.Drop([]int{1, 3}, core.ReasonInspection))

	assert.Equal(t, []int{0, 3, 5}, e.Selection)
	assert.Equal(t, []int{100, 400, 600}, e.Events)
	assert.Equal(t, []string{core.ReasonInspection}, e.DropLog[2])
	assert.Equal(t, []string{core.ReasonInspection}, e.DropLog[4])
	assert.Equal(t, []int{0, 3, 5}, e.Retained())
	assert.Equal(t, []int{2, 4}, e.DroppedFor(core.ReasonInspection, core.ReasonUser))
	require.NoError(t, e.Validate())
}

func TestEpochs_DropOutOfRange(t *testing.T) {
	e := newEpochs()

	err := e.Drop([]int{0, 9}, core.ReasonUser)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidArtifact))

	// Nothing changed, not even the valid position.
	assert.Equal(t, newEpochs(), e)
}

func TestEpochs_DropWithoutDropLog(t *testing.T) {
	e := &core.Epochs{
		Events:    []int{10, 20, 30},
		Selection: []int{0, 1, 2},
	}

	require.NoError(t, e.Drop([]int{1}, core.ReasonInspection))
	assert.Equal(t, []int{0, 2}, e.Selection)
	assert.Equal(t, []int{10, 30}, e.Events)
	assert.Equal(t, []int{0, 2}, e.Retained())
}

func TestEpochs_Validate(t *testing.T) {
	tests := []struct {
		name    string
		epochs  *core.Epochs
		wantErr bool
	}{
		{name: "consistent", epochs: newEpochs()},
		{
			name:    "misaligned events",
			epochs:  &core.Epochs{Events: []int{1}, Selection: []int{0, 1}},
			wantErr: true,
		},
		{
			name:    "selected but dropped",
			epochs:  &core.Epochs{Events: []int{1}, Selection: []int{0}, DropLog: [][]string{{"USER"}}},
			wantErr: true,
		},
		{
			name:    "kept segment missing from selection",
			epochs:  &core.Epochs{Events: []int{1, 2, 3}, Selection: []int{0, 2, 3}, DropLog: [][]string{{}, {}, {}, {}}},
			wantErr: true,
		},
		{
			name:    "selection out of order",
			epochs:  &core.Epochs{Events: []int{1, 2}, Selection: []int{1, 0}, DropLog: [][]string{{}, {}}},
			wantErr: true,
		},
		{
			name:    "selection outside drop log",
			epochs:  &core.Epochs{Events: []int{1}, Selection: []int{3}, DropLog: [][]string{{}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.epochs.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidArtifact)
				return
			}
			assert.NoError(t, err)
		})
	}
}
