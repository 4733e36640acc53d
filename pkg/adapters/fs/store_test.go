package fs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/eegcleaner/pkg/adapters/fs"
	"github.com/aretw0/eegcleaner/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingVersion struct{}

func (failingVersion) Version(context.Context) (string, error) {
	return "", errors.New("git describe failed")
}

func newStore(t *testing.T, version string) (*fs.Store, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return fs.NewStore(fs.Config{Version: core.StaticVersion(version), Logger: logger}), &buf
}

func readKeys(t *testing.T, file string) map[string]json.RawMessage {
	t.Helper()
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))
	return keys
}

func TestStore_ReadCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	store, _ := newStore(t, "v1")
	ctx := context.Background()

	log, err := store.Read(ctx, dir)
	require.NoError(t, err)

	assert.Empty(t, log.Raws)
	assert.Empty(t, log.Epochs)
	assert.Empty(t, log.ICAs)
	assert.Equal(t, "v1", log.Config.Version)

	keys := readKeys(t, filepath.Join(dir, core.DefaultFileName))
	assert.Len(t, keys, 4)
	assert.JSONEq(t, `{"version": "v1"}`, string(keys["config"]))
}

func TestStore_ReadFromArtifactPath(t *testing.T) {
	dir := t.TempDir()
	artifact := filepath.Join(dir, "subj01-raw.fif")
	require.NoError(t, os.WriteFile(artifact, []byte("data"), 0644))
	store, _ := newStore(t, "v1")

	_, err := store.Read(context.Background(), artifact)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, core.DefaultFileName))
	assert.NoError(t, err)
}

func TestStore_ReadHealsAndPersists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, core.DefaultFileName)
	require.NoError(t, os.WriteFile(file, []byte(`{"raws": {"a.fif": {"bads": ["Fz"]}}, "notes": {"by": "jd"}}`), 0644))
	store, _ := newStore(t, "v1")

	log, err := store.Read(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"Fz"}, log.Raws["a.fif"].Bads)
	assert.NotNil(t, log.Epochs)
	assert.NotNil(t, log.ICAs)
	assert.Equal(t, "v1", log.Config.Version)

	keys := readKeys(t, file)
	for _, key := range []string{"raws", "epochs", "icas", "config", "notes"} {
		assert.Contains(t, keys, key)
	}
	assert.JSONEq(t, `{"by": "jd"}`, string(keys["notes"]))

	state := store.State().(fs.StoreState)
	assert.Equal(t, 1, state.Heals)
	assert.Equal(t, 1, state.Reads)
	assert.Equal(t, 1, state.Writes)
	assert.Equal(t, file, state.LastFile)
}

func TestStore_VersionMismatchWarns(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, core.DefaultFileName)
	require.NoError(t, os.WriteFile(file, []byte(`{"raws": {}, "epochs": {}, "icas": {}, "config": {"version": "old"}}`), 0644))
	store, logs := newStore(t, "new")

	log, err := store.Read(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "old", log.Config.Version, "stored tag is kept")
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "previous=old")
	assert.Equal(t, 1, store.State().(fs.StoreState).VersionWarnings)
	assert.JSONEq(t, `{"version": "old"}`, string(readKeys(t, file)["config"]))
}

func TestStore_EmptyVersionIsStamped(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, core.DefaultFileName)
	require.NoError(t, os.WriteFile(file, []byte(`{"raws": {}, "epochs": {}, "icas": {}, "config": {"version": ""}}`), 0644))
	store, logs := newStore(t, "v2")

	log, err := store.Read(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "v2", log.Config.Version)
	assert.NotContains(t, logs.String(), "level=WARN")
	assert.Equal(t, 0, store.State().(fs.StoreState).VersionWarnings)
	assert.JSONEq(t, `{"version": "v2"}`, string(readKeys(t, file)["config"]))
}

func TestStore_StorageUnavailable(t *testing.T) {
	ctx := context.Background()

	t.Run("Corrupt File", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, core.DefaultFileName), []byte("{not json"), 0644))
		store, _ := newStore(t, "v1")

		_, err := store.Read(ctx, dir)
		assert.True(t, errors.Is(err, core.ErrStorageUnavailable), "got %v", err)
	})

	t.Run("Version Unavailable", func(t *testing.T) {
		dir := t.TempDir()
		store := fs.NewStore(fs.Config{Version: failingVersion{}})

		_, err := store.Read(ctx, dir)
		assert.ErrorIs(t, err, core.ErrStorageUnavailable)

		_, statErr := os.Stat(filepath.Join(dir, core.DefaultFileName))
		assert.True(t, os.IsNotExist(statErr), "nothing is written without a version")
	})

	t.Run("No Owning Directory", func(t *testing.T) {
		store, _ := newStore(t, "v1")
		_, err := store.Read(ctx, filepath.Join(t.TempDir(), "missing", "subj-raw.fif"))
		assert.ErrorIs(t, err, core.ErrStorageUnavailable)
	})
}

func TestStore_LoadIsPure(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, core.DefaultFileName)
	store, _ := newStore(t, "v1")
	ctx := context.Background()

	log, found, err := store.Load(ctx, dir)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, log)
	_, err = os.Stat(file)
	assert.True(t, os.IsNotExist(err))

	original := []byte(`{"raws": {"a.fif": {"bads": []}}}`)
	require.NoError(t, os.WriteFile(file, original, 0644))

	log, found, err = store.Load(ctx, dir)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, log.Has(core.KindRaw, "a.fif"))
	assert.Equal(t, "", log.Config.Version)

	after, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, original, after)
}

func TestStore_WriteCompletesSchema(t *testing.T) {
	dir := t.TempDir()
	store, _ := newStore(t, "v1")
	ctx := context.Background()

	exists, err := store.Exists(dir)
	require.NoError(t, err)
	assert.False(t, exists)

	log := &core.LogFile{Raws: map[string]*core.RawRecord{"a.fif": {Bads: []string{"Oz"}}}}
	require.NoError(t, store.Write(ctx, dir, log))

	exists, err = store.Exists(dir)
	require.NoError(t, err)
	assert.True(t, exists)

	reloaded, err := store.Read(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Oz"}, reloaded.Raws["a.fif"].Bads)
	assert.NotNil(t, reloaded.Epochs)
	assert.Equal(t, "v1", reloaded.Config.Version)
}

func TestStore_CustomFileName(t *testing.T) {
	dir := t.TempDir()
	store := fs.NewStore(fs.Config{FileName: "review.json", Version: core.StaticVersion("v1")})

	_, err := store.Read(context.Background(), dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "review.json"))
	assert.NoError(t, err)
	assert.Equal(t, "review.json", store.State().(fs.StoreState).FileName)
}

func TestResolveDir(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "subj01-epo.fif")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "Directory", path: base, want: base},
		{name: "Existing File", path: file, want: base},
		{name: "Future File", path: filepath.Join(base, "subj01-ica.fif"), want: base},
		{name: "Missing Parent", path: filepath.Join(base, "nope", "x.fif"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.ResolveDir(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrStorageUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Clean(tt.want), got)
		})
	}
}
