package source

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestSnapshot_CopiesCompanions(t *testing.T) {
	fs := afero.NewMemMapFs()
	src := "/logs/switchboard.sqlite"
	files := map[string]string{
		src:          "main db",
		src + "-wal": "wal data",
		src + "-shm": "shm data",
	}
	for p, c := range files {
		if err := afero.WriteFile(fs, p, []byte(c), 0644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}

	dbPath, cleanup, err := Snapshot(fs, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(dbPath) != "switchboard.sqlite" {
		t.Errorf("expected base name kept, got %s", dbPath)
	}
	for suffix, want := range map[string]string{"": "main db", "-wal": "wal data", "-shm": "shm data"} {
		got, err := afero.ReadFile(fs, dbPath+suffix)
		if err != nil {
			t.Fatalf("read copy%s: %v", suffix, err)
		}
		if string(got) != want {
			t.Errorf("copy%s: expected %q, got %q", suffix, want, got)
		}
	}

	cleanup()
	if ok, _ := afero.Exists(fs, dbPath); ok {
		t.Error("expected cleanup to remove the snapshot")
	}
}

func TestSnapshot_MissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, _, err := Snapshot(fs, "/logs/absent.sqlite"); err == nil {
		t.Fatal("expected error for missing source")
	}
}
