package cmd

import (
	"fmt"
	"strings"

	"github.com/tlview/tlview/internal/render"
	"github.com/urfave/cli"
)

func stats(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	env, err := newRunEnv(ctx, envOptions{progress: true})
	if err != nil {
		return fail(ctx, "stats", "setup", err)
	}
	defer env.Close()

	c, cancel := actionContext()
	defer cancel()
	s, err := env.session(c)
	if err != nil {
		return fail(ctx, "stats", "load", err)
	}
	if err := applyOrderFlag(ctx, s); err != nil {
		return fail(ctx, "stats", "reorder", err)
	}
	ds := s.Dataset()
	fmt.Fprintf(stdout, "Dataset:   %s\n", ds.ID)
	fmt.Fprintf(stdout, "Sources:   %s\n", strings.Join(ds.Sources, ", "))
	fmt.Fprintf(stdout, "Events:    %d\n", ds.Len())
	fmt.Fprintf(stdout, "Plugins:   %d\n", len(ds.Order))
	if !ds.Empty() {
		fmt.Fprintf(stdout, "Span:      [%d, %d] ns (%s)\n", ds.MinStart, ds.MaxEnd, render.FormatDuration(ds.MaxEnd-ds.MinStart))
	}
	fmt.Fprintf(stdout, "Pages:     0..%d of %s\n", s.TotalPages(), render.FormatDuration(s.PageSize()))
	if ds.Inverted > 0 {
		fmt.Fprintf(stdout, "Inverted:  %d (end before start)\n", ds.Inverted)
	}
	if len(ds.Unmatched) > 0 {
		fmt.Fprintf(stdout, "Unmatched: %v\n", ds.Unmatched)
	}
	if ds.Empty() {
		return nil
	}
	term := &render.Terminal{Palette: env.palette}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, term.Stats(s.Stats()))
	return nil
}
