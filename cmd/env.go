package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	cmdcommon "github.com/tlview/tlview/cmd/common"
	"github.com/tlview/tlview/common"
	"github.com/tlview/tlview/internal/config"
	"github.com/tlview/tlview/internal/render"
	"github.com/tlview/tlview/internal/source"
	"github.com/tlview/tlview/pkg/logger"
	"github.com/tlview/tlview/pkg/timeline"
	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"
)

var (
	appFs  afero.Fs  = afero.NewOsFs()
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	isTerminal = func(w io.Writer) bool {
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
)

// runEnv is what an action needs after flags and config are merged.
type runEnv struct {
	cfg     *config.Config
	l       logger.Logger
	loader  *source.Loader
	sel     source.Selection
	palette *render.Palette
}

type envOptions struct {
	// progress draws load bars on stderr when it is a terminal.
	progress bool
	// quiet drops stderr logging, used while the viewer owns the screen.
	quiet bool
}

func newRunEnv(ctx *cli.Context, opts envOptions) (*runEnv, error) {
	debug := ctx.Bool("debug")
	l, err := newLogger(debug, opts.quiet)
	if err != nil {
		return nil, err
	}

	cfgPath := ctx.String("config")
	explicit := cfgPath != ""
	if !explicit {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(appFs, cfgPath, explicit)
	if err != nil {
		l.Close()
		return nil, err
	}
	if ctx.IsSet("page-size") {
		cfg.PageSize = ctx.Int64("page-size")
	}
	if ctx.Bool("align") {
		cfg.Align = true
	}
	if ctx.Bool("snapshot") {
		cfg.Snapshot = true
	}
	if u := ctx.String("unmatched"); u != "" {
		cfg.Unmatched = u
	}
	if err := cfg.Validate(); err != nil {
		l.Close()
		return nil, err
	}
	l.Debug("config: %s page_size=%d align=%t unmatched=%s", cfgPath, cfg.PageSize, cfg.Align, cfg.Unmatched)

	sel, err := selectionFromFlags(ctx, cfg)
	if err != nil {
		l.Close()
		return nil, err
	}

	var progress source.Progress
	if opts.progress && isTerminal(stderr) {
		progress = cmdcommon.NewLoadBars(mpb.New(mpb.WithOutput(stderr)))
	}
	loader, err := source.NewLoader(source.LoaderOptions{
		Fs:        appFs,
		Schema:    cfg.Schema,
		Snapshot:  cfg.Snapshot,
		Unmatched: cfg.UnmatchedPolicy(),
		Progress:  progress,
		Logger:    l,
	})
	if err != nil {
		l.Close()
		return nil, err
	}
	return &runEnv{
		cfg:     cfg,
		l:       l,
		loader:  loader,
		sel:     sel,
		palette: render.NewPalette(cfg.Colors),
	}, nil
}

// selectionFromFlags starts from the configured sources. --names replaces
// the name database and any event flag replaces all configured events.
func selectionFromFlags(ctx *cli.Context, cfg *config.Config) (source.Selection, error) {
	sel := cfg.Selection()
	if n := ctx.String("names"); n != "" {
		sel.Names = n
	}
	var events []source.EventSource
	if p := ctx.String("switchboard"); p != "" {
		events = append(events, source.EventSource{Kind: source.KindSwitchboard, Path: p})
	}
	if p := ctx.String("threadloop"); p != "" {
		events = append(events, source.EventSource{Kind: source.KindThreadloop, Path: p})
	}
	for _, spec := range ctx.StringSlice("events") {
		es, err := source.ParseEventSpec(spec)
		if err != nil {
			return source.Selection{}, err
		}
		events = append(events, es)
	}
	if len(events) > 0 {
		sel.Events = events
	}
	return sel, nil
}

func newLogger(debug, quiet bool) (logger.Logger, error) {
	var console logger.Logger
	switch {
	case quiet:
	case debug:
		console = logger.NewDebugLogger(log.New(stderr, common.AppName+": ", 0))
	default:
		console = logger.NewStandardLogger(log.New(stderr, common.AppName+": ", 0))
	}
	path := os.Getenv(common.LogFileEnv)
	if path == "" {
		if console == nil {
			return logger.NewNopLogger(), nil
		}
		return console, nil
	}
	f, err := appFs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	file := logger.NewFileLogger(f, debug)
	if console == nil {
		return file, nil
	}
	return logger.NewMultiLogger(console, file), nil
}

func (e *runEnv) load(ctx context.Context) (*timeline.Dataset, error) {
	return e.loader.Load(ctx, e.sel)
}

// session loads the selection into a new session.
func (e *runEnv) session(ctx context.Context) (*timeline.Session, error) {
	s, err := e.newSession()
	if err != nil {
		return nil, err
	}
	ds, err := e.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Load(ds); err != nil {
		return nil, err
	}
	return s, nil
}

func (e *runEnv) newSession() (*timeline.Session, error) {
	return timeline.NewSession(timeline.SessionOptions{
		PageSize: e.cfg.PageSize,
		Align:    e.cfg.Align,
		Logger:   e.l,
	})
}

func (e *runEnv) Close() error {
	return e.l.Close()
}

// actionContext is cancelled on interrupt.
func actionContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
