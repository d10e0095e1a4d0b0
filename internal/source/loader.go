package source

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/tlview/tlview/pkg/logger"
	"github.com/tlview/tlview/pkg/timeline"
)

// Progress observes a load. Implementations run on the loading goroutine.
type Progress interface {
	// SourceStarted is called once per event source with its row total.
	SourceStarted(label string, total int64)
	// RowsRead reports n more rows read from the labelled source.
	RowsRead(label string, n int)
	// Finished is called once after the last source, with the load error if any.
	Finished(err error)
}

// LoaderOptions configures a Loader.
type LoaderOptions struct {
	// Fs is used for file checks and snapshots. Nil means the OS filesystem.
	Fs        afero.Fs
	Schema    Schema
	Snapshot  bool
	Unmatched timeline.UnmatchedPolicy
	Progress  Progress
	Logger    logger.Logger
}

// Loader reads a Selection into a joined timeline.Dataset.
type Loader struct {
	reader    *Reader
	schema    Schema
	unmatched timeline.UnmatchedPolicy
	progress  Progress
	l         logger.Logger
}

// NewLoader validates the schema and creates a Loader.
func NewLoader(opts LoaderOptions) (*Loader, error) {
	if err := opts.Schema.Validate(); err != nil {
		return nil, err
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	l := opts.Logger
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Loader{
		reader:    NewReader(fs, opts.Schema, opts.Snapshot, l),
		schema:    opts.Schema,
		unmatched: opts.Unmatched,
		progress:  opts.Progress,
		l:         l,
	}, nil
}

// Schema returns the schema the loader reads with.
func (ld *Loader) Schema() Schema { return ld.schema }

// Load reads the name database, then every event database in order, and
// joins them. Any failure discards everything read so far.
func (ld *Loader) Load(ctx context.Context, sel Selection) (ds *timeline.Dataset, err error) {
	if err := sel.Validate(ld.schema); err != nil {
		return nil, err
	}
	if ld.progress != nil {
		defer func() { ld.progress.Finished(err) }()
	}

	names, err := ld.reader.ReadNames(ctx, sel.Names)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		ld.l.Warning("%s: name table is empty, no events will be shown", sel.Names)
	}

	tables := make([]timeline.EventTable, 0, len(sel.Events))
	for _, src := range sel.Events {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, err := ld.reader.ReadEvents(ctx, src, ld.progress)
		if err != nil {
			return nil, err
		}
		ld.l.Info("read %d %s events from %s", len(t.Events), src.Kind, src.Path)
		tables = append(tables, t)
	}

	ds, err = timeline.Join(names, ld.unmatched, tables...)
	if err != nil {
		return nil, fmt.Errorf("join: %w", err)
	}
	if ds.Inverted > 0 {
		ld.l.Warning("%d event(s) end before they start, drawn as points at their start", ds.Inverted)
	}
	if n := len(ds.Unmatched); n > 0 {
		ld.l.Warning("%d producer id(s) without a name, shown by id: %v", n, ds.Unmatched)
	}
	return ds, nil
}
