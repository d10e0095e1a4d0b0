package cmd

import (
	"fmt"
	"runtime"

	"github.com/tlview/tlview/cmd/common"
	"github.com/urfave/cli"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:                  "tlview",
		HelpName:              "tlview",
		Usage:                 "A paginated timeline viewer for SQLite timing logs.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "tlview <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Writer:                stdout,
		ErrWriter:             stderr,
		Commands: []cli.Command{
			{
				Name:                   "view",
				Usage:                  "browse the timeline interactively",
				Action:                 view,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ViewDescription,
				UseShortOptionHandling: true,
				Flags:                  viewFlags,
			},
			{
				Name:                   "page",
				Usage:                  "print timeline pages as text",
				Action:                 page,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            PageDescription,
				UseShortOptionHandling: true,
				Flags:                  pageFlags,
			},
			{
				Name:                   "order",
				Usage:                  "print the baseline plugin order",
				Action:                 order,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            OrderDescription,
				UseShortOptionHandling: true,
				Flags:                  orderFlags,
			},
			{
				Name:                   "stats",
				Usage:                  "print per-plugin statistics",
				Action:                 stats,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            StatsDescription,
				UseShortOptionHandling: true,
				Flags:                  statsFlags,
			},
			{
				Name:                   "export",
				Aliases:                []string{"x"},
				Usage:                  "write pages to an HTML or XLSX file",
				Action:                 export,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ExportDescription,
				UseShortOptionHandling: true,
				Flags:                  exportFlags,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of tlview",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		Action:                 view,
		Flags:                  viewFlags,
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
