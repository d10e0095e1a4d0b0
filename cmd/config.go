package cmd

import "github.com/tlview/tlview/pkg/timeline"

const (
	DEF_PAGE_SIZE   = timeline.DefaultPageSize
	DEF_TRACK_WIDTH = 80
	DEF_FORMAT      = "html"
	// MAX_PAGES caps how many pages one page or export run may emit.
	MAX_PAGES = 10_000
)

const DESCRIPTION = `
tlview reads timing logs recorded as SQLite databases (one table mapping
plugin ids to names, one or more tables of start/stop timestamps) and lays
them out as a paginated Gantt chart, one row per plugin.
`

const (
	ViewDescription = `The view command opens the interactive timeline viewer.
When standard output is not a terminal it prints page 0 instead.

Keys:
        h/left l/right   previous/next page
        g G              first/last page
        + -              double/halve the page size
        tab              open the reorder pane (j/k cursor, J/K move, enter apply)
        r                reload the databases
        q                quit

Example:
        tlview view --names plugin_name.sqlite --switchboard switchboard_callback.sqlite

`
	PageDescription = `The page command prints one page of the timeline as a text
chart. Page numbers start at 0.

Example:
        tlview page --page 3 --names plugin_name.sqlite --threadloop threadloop_iteration.sqlite
        tlview page --all --names plugin_name.sqlite --events switchboard=sb.sqlite

`
	OrderDescription = `The order command prints the baseline plugin order: plugins
in the order their first event starts.

Example:
        tlview order --names plugin_name.sqlite --switchboard switchboard_callback.sqlite

`
	StatsDescription = `The stats command prints per-plugin event counts, busy time
and the first and last timestamps.

Example:
        tlview stats --names plugin_name.sqlite --threadloop threadloop_iteration.sqlite

`
	ExportDescription = `The export command writes pages to a standalone HTML file
or an XLSX workbook. Without --page or --all every page holding at least one
event is exported; --all adds the empty pages in between.

Example:
        tlview export --format xlsx --out run.xlsx --names plugin_name.sqlite --switchboard sb.sqlite
        tlview export --order camera,imu,gtsam --page 2 --out page2.html ...

`
)

const HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}
{{.Description}}{{if .VisibleCommands}}
Commands:{{range .VisibleCategories}}{{if .Name}}

{{.Name}}:{{range .VisibleCommands}}
  {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
{{"\t"}}{{index .Names 0}}{{"\t:\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{end}}{{if .VisibleFlags}}{{end}}

Use "{{.HelpName}} help <command>" for more information about any command.

`

const CMD_HELP_TEMPL = `{{if .Description}}{{.Description}}{{else}}{{.HelpName}} - {{.Usage}}

{{end}}Usage:
        {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[arguments...]{{end}}{{if .VisibleFlags}}

Supported Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

`
