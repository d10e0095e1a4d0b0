package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tlview/tlview/internal/render"
	"github.com/tlview/tlview/pkg/timeline"
	"github.com/urfave/cli"
)

const (
	formatHTML = "html"
	formatXLSX = "xlsx"
)

// exportFormat resolves --format, falling back to the --out extension and
// then DEF_FORMAT.
func exportFormat(format, out string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(out)) {
		case ".xlsx":
			format = formatXLSX
		case ".html", ".htm":
			format = formatHTML
		default:
			format = DEF_FORMAT
		}
	}
	format = strings.ToLower(format)
	if format != formatHTML && format != formatXLSX {
		return "", fmt.Errorf("unknown export format %q, want html or xlsx", format)
	}
	return format, nil
}

func export(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	out := ctx.String("out")
	format, err := exportFormat(ctx.String("format"), out)
	if err != nil {
		return fail(ctx, "export", "format", err)
	}
	if out == "" {
		out = "timeline." + format
	}

	env, err := newRunEnv(ctx, envOptions{progress: true})
	if err != nil {
		return fail(ctx, "export", "setup", err)
	}
	defer env.Close()

	c, cancel := actionContext()
	defer cancel()
	s, err := env.session(c)
	if err != nil {
		return fail(ctx, "export", "load", err)
	}
	if err := applyOrderFlag(ctx, s); err != nil {
		return fail(ctx, "export", "reorder", err)
	}
	pages, err := pagesFor(ctx, s, true)
	if err != nil {
		return fail(ctx, "export", "select", err)
	}
	views := make([]timeline.PageView, 0, len(pages))
	for _, p := range pages {
		v, err := s.ViewPage(p)
		if err != nil {
			return fail(ctx, "export", "view", err)
		}
		views = append(views, v)
	}

	f, err := appFs.Create(out)
	if err != nil {
		return fail(ctx, "export", "create", err)
	}
	switch format {
	case formatXLSX:
		err = render.XLSX{}.Write(f, views, s.Stats())
	default:
		title := ctx.String("title")
		if title == "" {
			title = "tlview: " + filepath.Base(env.sel.Names)
		}
		err = (&render.HTML{Title: title, Palette: env.palette}).Render(f, views)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fail(ctx, "export", "write", err)
	}
	env.l.Info("exported %d page(s) to %s", len(views), out)
	fmt.Fprintf(stdout, "Wrote %d page(s) to %s\n", len(views), out)
	return nil
}
