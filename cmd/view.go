package cmd

import (
	"github.com/tlview/tlview/internal/render"
	"github.com/tlview/tlview/internal/viewer"
	"github.com/urfave/cli"
)

// view opens the interactive viewer, or prints page 0 when stdout is not a
// terminal.
func view(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	interactive := isTerminal(stdout)
	env, err := newRunEnv(ctx, envOptions{progress: !interactive, quiet: interactive})
	if err != nil {
		return fail(ctx, "view", "setup", err)
	}
	defer env.Close()

	c, cancel := actionContext()
	defer cancel()

	if !interactive {
		s, err := env.session(c)
		if err != nil {
			return fail(ctx, "view", "load", err)
		}
		term := &render.Terminal{Palette: env.palette}
		if err := printPages(stdout, term, s, []int{0}); err != nil {
			return fail(ctx, "view", "render", err)
		}
		return nil
	}

	// Check the selection before the screen switches so usage mistakes
	// print like any other command.
	if err := env.sel.Validate(env.loader.Schema()); err != nil {
		return fail(ctx, "view", "setup", err)
	}
	s, err := env.newSession()
	if err != nil {
		return fail(ctx, "view", "session", err)
	}
	m := viewer.New(viewer.Options{
		Context: c,
		Session: s,
		Load:    env.load,
		Palette: env.palette,
		Logger:  env.l,
	})
	if err := viewer.Run(m); err != nil {
		return fail(ctx, "view", "run", err)
	}
	return nil
}
