package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/eegcleaner/pkg/core"
)

func TestFindLogDir(t *testing.T) {
	// /tmp/
	//   study/
	//     subj01/ (eeg_cleaner.json)
	//       figures/
	//         nested/
	//   empty/

	baseDir := t.TempDir()
	subjDir := filepath.Join(baseDir, "study", "subj01")
	figDir := filepath.Join(subjDir, "figures")
	nestedDir := filepath.Join(figDir, "nested")
	emptyDir := filepath.Join(baseDir, "empty")

	if err := os.MkdirAll(nestedDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(emptyDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(subjDir, core.DefaultFileName), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		startPath string
		wantDir   string
		wantErr   bool
	}{
		{name: "Start At Log", startPath: subjDir, wantDir: subjDir},
		{name: "Start In Subdir", startPath: figDir, wantDir: subjDir},
		{name: "Start Nested Deeply", startPath: nestedDir, wantDir: subjDir},
		{name: "No Log Found", startPath: emptyDir, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindLogDir(tt.startPath, core.DefaultFileName)
			if (err != nil) != tt.wantErr {
				t.Errorf("FindLogDir() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && filepath.Clean(got) != filepath.Clean(tt.wantDir) {
				t.Errorf("FindLogDir() = %v, want %v", got, tt.wantDir)
			}
		})
	}
}
