package source

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// Snapshot copies a SQLite database (and its -wal and -shm companions if
// they exist) to a temporary directory, so a database still being written by
// a running logger can be read without lock conflicts.
//
// The caller MUST call cleanup when done.
func Snapshot(fs afero.Fs, srcPath string) (dbPath string, cleanup func(), err error) {
	tempDir, err := afero.TempDir(fs, "", "tlview-snapshot-*")
	if err != nil {
		return "", nil, fmt.Errorf("cannot create snapshot directory: %w", err)
	}
	cleanup = func() {
		fs.RemoveAll(tempDir)
	}

	baseName := filepath.Base(srcPath)
	dbPath = filepath.Join(tempDir, baseName)
	if err := copyFile(fs, srcPath, dbPath); err != nil {
		cleanup()
		return "", nil, err
	}

	// best-effort: a missing or unreadable companion only loses uncheckpointed rows
	for _, suffix := range []string{"-wal", "-shm"} {
		companion := srcPath + suffix
		if _, err := fs.Stat(companion); err == nil {
			_ = copyFile(fs, companion, dbPath+suffix)
		}
	}
	return dbPath, cleanup, nil
}

func copyFile(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", src, err)
	}
	defer in.Close()

	out, err := fs.Create(dst)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("cannot copy %s: %w", src, err)
	}
	return nil
}
