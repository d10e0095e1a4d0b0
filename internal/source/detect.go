package source

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/tlview/tlview/pkg/timeline"
)

// sqliteMagic is the first 16 bytes of any SQLite database file.
var sqliteMagic = []byte("SQLite format 3\x00")

// checkFile verifies that path names a non-empty SQLite database. It runs
// before the driver touches the file.
func checkFile(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return &timeline.MalformedSourceError{Path: path, Err: fmt.Errorf("file not found: %w", err)}
	}
	if info.IsDir() {
		return &timeline.MalformedSourceError{Path: path, Err: errors.New("is a directory, expected a database file")}
	}
	if info.Size() == 0 {
		return &timeline.MalformedSourceError{Path: path, Err: errors.New("file is empty")}
	}

	f, err := fs.Open(path)
	if err != nil {
		return &timeline.MalformedSourceError{Path: path, Err: err}
	}
	defer f.Close()

	header := make([]byte, len(sqliteMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return &timeline.MalformedSourceError{Path: path, Err: errors.New("not a SQLite database")}
	}
	if string(header) != string(sqliteMagic) {
		return &timeline.MalformedSourceError{Path: path, Err: errors.New("not a SQLite database")}
	}
	return nil
}
