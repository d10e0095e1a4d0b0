package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/tlview/tlview/internal/render"
	"github.com/tlview/tlview/pkg/timeline"
	"github.com/urfave/cli"
)

func page(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	env, err := newRunEnv(ctx, envOptions{progress: true})
	if err != nil {
		return fail(ctx, "page", "setup", err)
	}
	defer env.Close()

	c, cancel := actionContext()
	defer cancel()
	s, err := env.session(c)
	if err != nil {
		return fail(ctx, "page", "load", err)
	}
	if err := applyOrderFlag(ctx, s); err != nil {
		return fail(ctx, "page", "reorder", err)
	}
	pages, err := pagesFor(ctx, s, false)
	if err != nil {
		return fail(ctx, "page", "select", err)
	}
	term := &render.Terminal{Width: ctx.Int("width"), Palette: env.palette}
	if err := printPages(stdout, term, s, pages); err != nil {
		return fail(ctx, "page", "render", err)
	}
	return nil
}

func printPages(w io.Writer, term *render.Terminal, s *timeline.Session, pages []int) error {
	for i, p := range pages {
		v, err := s.ViewPage(p)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := term.WritePage(w, v); err != nil {
			return err
		}
	}
	return nil
}

var errTooManyPages = fmt.Errorf("more than %d pages selected: pick one with --page or raise --page-size", MAX_PAGES)

// pagesFor resolves --page and --all. Without either it returns page 0, or
// every page holding data when occupiedByDefault is set. Selections longer
// than MAX_PAGES are refused.
func pagesFor(ctx *cli.Context, s *timeline.Session, occupiedByDefault bool) ([]int, error) {
	last := s.TotalPages()
	if ctx.Bool("all") {
		if last >= MAX_PAGES {
			return nil, errTooManyPages
		}
		pages := make([]int, 0, last+1)
		for p := 0; p <= last; p++ {
			pages = append(pages, p)
		}
		return pages, nil
	}
	if occupiedByDefault && !ctx.IsSet("page") {
		pages := s.OccupiedPages(MAX_PAGES + 1)
		if len(pages) > MAX_PAGES {
			return nil, errTooManyPages
		}
		if len(pages) == 0 {
			pages = []int{0}
		}
		return pages, nil
	}
	p := ctx.Int("page")
	if p < 0 || p > last {
		return nil, fmt.Errorf("page %d out of range 0..%d", p, last)
	}
	s.GoTo(p)
	return []int{p}, nil
}

// applyOrderFlag applies --order when given.
func applyOrderFlag(ctx *cli.Context, s *timeline.Session) error {
	raw := ctx.String("order")
	if raw == "" {
		return nil
	}
	var names []string
	for _, n := range strings.Split(raw, ",") {
		names = append(names, strings.TrimSpace(n))
	}
	return s.Reorder(names)
}
