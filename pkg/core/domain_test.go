package core_test

import (
	"errors"
	"testing"

	"github.com/aretw0/eegcleaner/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range core.Kinds {
		got, err := core.ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	for _, bad := range []string{"", "raw", "ica", "bogus"} {
		_, err := core.ParseKind(bad)
		assert.True(t, errors.Is(err, core.ErrInvalidKind), "kind %q", bad)
	}
}

func TestLogFile_Has(t *testing.T) {
	log := core.DefaultLogFile()
	log.Raws["a.fif"] = &core.RawRecord{}
	log.ICAs["b-ica.fif"] = &core.ICARecord{}

	assert.True(t, log.Has(core.KindRaw, "a.fif"))
	assert.False(t, log.Has(core.KindEpochs, "a.fif"))
	assert.True(t, log.Has(core.KindICA, "b-ica.fif"))
	assert.Equal(t, 1, log.Len(core.KindRaw))
	assert.Equal(t, 0, log.Len(core.KindEpochs))
}

func TestParameterMismatchError(t *testing.T) {
	var err error = &core.ParameterMismatchError{Field: "tmin", Stored: -0.2, Current: -0.1}

	assert.True(t, errors.Is(err, core.ErrParameterMismatch))
	assert.False(t, errors.Is(err, core.ErrInvalidKind))
	assert.Equal(t, "parameter mismatch: tmin was -0.2 and now is -0.1", err.Error())

	var pm *core.ParameterMismatchError
	require.True(t, errors.As(err, &pm))
	assert.Equal(t, "tmin", pm.Field)
}
