package cmd

import (
	"fmt"

	"github.com/tlview/tlview/internal/render"
	"github.com/urfave/cli"
)

func order(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	env, err := newRunEnv(ctx, envOptions{progress: true})
	if err != nil {
		return fail(ctx, "order", "setup", err)
	}
	defer env.Close()

	c, cancel := actionContext()
	defer cancel()
	s, err := env.session(c)
	if err != nil {
		return fail(ctx, "order", "load", err)
	}
	if len(s.Order()) == 0 {
		fmt.Fprintln(stdout, "tlview: no plugins found")
		return nil
	}
	term := &render.Terminal{Palette: env.palette}
	fmt.Fprint(stdout, term.Order(s.Order()))
	return nil
}
