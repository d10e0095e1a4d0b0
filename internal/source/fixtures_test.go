package source

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

type eventRow struct {
	ID    int64
	Start int64
	End   int64
}

func execAll(t *testing.T, dbPath string, stmts ...string) {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("failed to exec %q: %v", s, err)
		}
	}
}

// createNamesFixture writes a plugin_name table and returns the file path.
func createNamesFixture(t *testing.T, dir string, names map[int64]string) string {
	t.Helper()
	dbPath := filepath.Join(dir, "plugin_names.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE plugin_name (
        plugin_id INTEGER PRIMARY KEY,
        plugin_name TEXT NOT NULL
    )`); err != nil {
		t.Fatalf("failed to create plugin_name table: %v", err)
	}
	for id, name := range names {
		if _, err := db.Exec(`INSERT INTO plugin_name (plugin_id, plugin_name) VALUES (?, ?)`, id, name); err != nil {
			t.Fatalf("failed to insert name: %v", err)
		}
	}
	return dbPath
}

// createEventsFixture writes rows into table inside file and returns its path.
func createEventsFixture(t *testing.T, dir, file, table string, rows []eventRow) string {
	t.Helper()
	dbPath := filepath.Join(dir, file)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE ` + table + ` (
        iteration_no INTEGER,
        plugin_id INTEGER,
        cpu_time_start INTEGER,
        cpu_time_stop INTEGER,
        wall_time_start INTEGER,
        wall_time_stop INTEGER
    )`); err != nil {
		t.Fatalf("failed to create %s table: %v", table, err)
	}
	stmt, err := db.Prepare(`INSERT INTO ` + table + ` (iteration_no, plugin_id, cpu_time_start, cpu_time_stop) VALUES (?, ?, ?, ?)`)
	if err != nil {
		t.Fatalf("failed to prepare insert: %v", err)
	}
	defer stmt.Close()
	for i, r := range rows {
		if _, err := stmt.Exec(i, r.ID, r.Start, r.End); err != nil {
			t.Fatalf("failed to insert row: %v", err)
		}
	}
	return dbPath
}
