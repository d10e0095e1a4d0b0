package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/afero"
	"github.com/tlview/tlview/pkg/logger"
	"github.com/tlview/tlview/pkg/timeline"

	_ "modernc.org/sqlite"
)

// Reader reads one database at a time according to a Schema.
type Reader struct {
	fs       afero.Fs
	schema   Schema
	snapshot bool
	l        logger.Logger
}

// NewReader creates a Reader. fs is used for file checks and snapshots; the
// SQLite driver itself always opens real paths.
func NewReader(fs afero.Fs, schema Schema, snapshot bool, l logger.Logger) *Reader {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Reader{fs: fs, schema: schema, snapshot: snapshot, l: l}
}

// fileURI builds an SQLite URI for path. The path is percent-escaped so that
// '?', '#' and '%' in file or directory names reach SQLite literally.
func fileURI(path, query string) string {
	return "file:" + (&url.URL{Path: path}).EscapedPath() + "?" + query
}

// open returns a read-only handle on path and a release func that must be
// called on every path out of the caller.
func (r *Reader) open(ctx context.Context, path string) (*sql.DB, func(), error) {
	if err := checkFile(r.fs, path); err != nil {
		return nil, nil, err
	}
	dsn := fileURI(path, "mode=ro")
	cleanup := func() {}
	if r.snapshot {
		snap, done, err := Snapshot(r.fs, path)
		if err != nil {
			return nil, nil, &timeline.MalformedSourceError{Path: path, Err: err}
		}
		r.l.Debug("reading snapshot %s of %s", snap, path)
		dsn = fileURI(snap, "immutable=1")
		cleanup = done
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		cleanup()
		return nil, nil, &timeline.MalformedSourceError{Path: path, Err: err}
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		cleanup()
		return nil, nil, &timeline.MalformedSourceError{Path: path, Err: err}
	}
	release := func() {
		db.Close()
		cleanup()
	}
	return db, release, nil
}

// requireColumns fails unless table exists in db with every column in cols.
func requireColumns(ctx context.Context, db *sql.DB, path, table string, cols ...string) error {
	var name string
	err := db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type IN ('table','view') AND name = ?`, table,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return &timeline.MalformedSourceError{Path: path, Table: table, Err: errors.New("table not found")}
	}
	if err != nil {
		return &timeline.MalformedSourceError{Path: path, Table: table, Err: err}
	}

	rows, err := db.QueryContext(ctx, `SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return &timeline.MalformedSourceError{Path: path, Table: table, Err: err}
	}
	defer rows.Close()
	have := map[string]bool{}
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return &timeline.MalformedSourceError{Path: path, Table: table, Err: err}
		}
		have[strings.ToLower(col)] = true
	}
	if err := rows.Err(); err != nil {
		return &timeline.MalformedSourceError{Path: path, Table: table, Err: err}
	}

	var missing []string
	for _, c := range cols {
		if !have[strings.ToLower(c)] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &timeline.MalformedSourceError{Path: path, Table: table, Missing: missing}
	}
	return nil
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ReadNames loads the producer name table from path.
func (r *Reader) ReadNames(ctx context.Context, path string) ([]timeline.ProducerName, error) {
	db, release, err := r.open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer release()

	s := r.schema
	if err := requireColumns(ctx, db, path, s.NameTable, s.IDColumn, s.NameColumn); err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT %s, %s FROM %s",
		quoteIdent(s.IDColumn), quoteIdent(s.NameColumn), quoteIdent(s.NameTable))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &timeline.MalformedSourceError{Path: path, Table: s.NameTable, Err: err}
	}
	defer rows.Close()

	var names []timeline.ProducerName
	for rows.Next() {
		var (
			id   int64
			name sql.NullString
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, &timeline.MalformedSourceError{Path: path, Table: s.NameTable, Err: err}
		}
		pn := timeline.ProducerName{ID: id, Name: name.String}
		if !name.Valid || name.String == "" {
			pn.Name = fmt.Sprintf("%d", id)
		}
		names = append(names, pn)
	}
	if err := rows.Err(); err != nil {
		return nil, &timeline.MalformedSourceError{Path: path, Table: s.NameTable, Err: err}
	}
	r.l.Debug("read %d producer names from %s", len(names), path)
	return names, nil
}

// ReadEvents loads every row of the table registered for src.Kind. progress
// may be nil; otherwise it is told the row total up front and each batch of
// rows as they are read.
func (r *Reader) ReadEvents(ctx context.Context, src EventSource, progress Progress) (timeline.EventTable, error) {
	table, ok := r.schema.TableFor(src.Kind)
	if !ok {
		return timeline.EventTable{}, fmt.Errorf("unknown event source kind %q", src.Kind)
	}
	db, release, err := r.open(ctx, src.Path)
	if err != nil {
		return timeline.EventTable{}, err
	}
	defer release()

	s := r.schema
	if err := requireColumns(ctx, db, src.Path, table, s.IDColumn, s.StartColumn, s.EndColumn); err != nil {
		return timeline.EventTable{}, err
	}
	malformed := func(err error) error {
		return &timeline.MalformedSourceError{Path: src.Path, Table: table, Err: err}
	}

	var total int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+quoteIdent(table)).Scan(&total); err != nil {
		return timeline.EventTable{}, malformed(err)
	}
	if progress != nil {
		progress.SourceStarted(src.Label(), total)
	}

	query := fmt.Sprintf("SELECT %s, %s, %s FROM %s",
		quoteIdent(s.IDColumn), quoteIdent(s.StartColumn), quoteIdent(s.EndColumn), quoteIdent(table))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return timeline.EventTable{}, malformed(err)
	}
	defer rows.Close()

	out := timeline.EventTable{Source: src.Label(), Events: make([]timeline.RawEvent, 0, total)}
	var nulls, batch int
	for rows.Next() {
		var id, start, end sql.NullInt64
		if err := rows.Scan(&id, &start, &end); err != nil {
			return timeline.EventTable{}, malformed(err)
		}
		batch++
		if progress != nil && batch == progressBatch {
			progress.RowsRead(src.Label(), batch)
			batch = 0
		}
		if !id.Valid || !start.Valid || !end.Valid {
			nulls++
			continue
		}
		out.Events = append(out.Events, timeline.RawEvent{
			ProducerID: id.Int64,
			Start:      start.Int64,
			End:        end.Int64,
		})
	}
	if err := rows.Err(); err != nil {
		return timeline.EventTable{}, malformed(err)
	}
	if progress != nil && batch > 0 {
		progress.RowsRead(src.Label(), batch)
	}
	if nulls > 0 {
		r.l.Warning("%s: skipped %d row(s) with NULL id or timestamps in %s", src.Path, nulls, table)
	}
	r.l.Debug("read %d events from %s (%s)", len(out.Events), src.Path, table)
	return out, nil
}

const progressBatch = 4096
