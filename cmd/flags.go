package cmd

import (
	"github.com/tlview/tlview/common"
	"github.com/urfave/cli"
)

// sourceFlags select the databases and paging geometry. Every command that
// loads a dataset accepts them.
var sourceFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "names, n",
		Usage: "database holding the plugin id to name table",
	},
	cli.StringFlag{
		Name:  "switchboard, s",
		Usage: "database holding switchboard callback events",
	},
	cli.StringFlag{
		Name:  "threadloop, t",
		Usage: "database holding threadloop iteration events",
	},
	cli.StringSliceFlag{
		Name:  "events, e",
		Usage: "extra event database as kind=path, repeatable",
	},
	cli.Int64Flag{
		Name:  "page-size, p",
		Usage: "page width in nanoseconds",
		Value: DEF_PAGE_SIZE,
	},
	cli.BoolFlag{
		Name:  "align",
		Usage: "start page 0 at the earliest event instead of time zero (default: false)",
	},
	cli.BoolFlag{
		Name:  "snapshot",
		Usage: "read temporary copies of the databases (default: false)",
	},
	cli.StringFlag{
		Name:  "unmatched",
		Usage: "what to do with events of unknown plugins: pass or reject",
	},
	cli.StringFlag{
		Name:   "config, c",
		Usage:  "path of the YAML config file",
		EnvVar: common.ConfigEnv,
	},
	cli.BoolFlag{
		Name:   "debug, d",
		Usage:  "print debug logs (default: false)",
		EnvVar: common.DebugEnv,
	},
}

var (
	widthFlag = cli.IntFlag{
		Name:  "width, w",
		Usage: "chart width in cells",
		Value: DEF_TRACK_WIDTH,
	}
	pageFlag = cli.IntFlag{
		Name:  "page",
		Usage: "page index, starting at 0",
	}
	allFlag = cli.BoolFlag{
		Name:  "all, a",
		Usage: "use every page (default: false)",
	}
	orderFlag = cli.StringFlag{
		Name:  "order, o",
		Usage: "comma separated plugin order applied before rendering",
	}

	viewFlags  = withSource()
	pageFlags  = withSource(pageFlag, allFlag, widthFlag, orderFlag)
	orderFlags = withSource()
	statsFlags = withSource(orderFlag)

	exportFlags = withSource(
		pageFlag,
		allFlag,
		orderFlag,
		cli.StringFlag{
			Name:  "format, f",
			Usage: "html or xlsx, guessed from --out when omitted",
		},
		cli.StringFlag{
			Name:  "out",
			Usage: "output file (default: timeline.<format>)",
		},
		cli.StringFlag{
			Name:  "title",
			Usage: "title of the HTML page",
		},
	)
)

func withSource(extra ...cli.Flag) []cli.Flag {
	flags := make([]cli.Flag, 0, len(sourceFlags)+len(extra))
	flags = append(flags, sourceFlags...)
	return append(flags, extra...)
}
