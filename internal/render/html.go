package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/tlview/tlview/pkg/timeline"
)

// minBarPct keeps very short intervals visible.
const minBarPct = 0.3

// HTML writes a self-contained page with one chart per timeline page.
type HTML struct {
	Title   string
	Palette *Palette
}

type htmlBar struct {
	LeftPct  float64
	WidthPct float64
	Color    string
	Tip      string
}

type htmlRow struct {
	Producer string
	Color    string
	Bars     []htmlBar
}

type htmlPage struct {
	Label string
	Start int64
	End   int64
	Empty bool
	Rows  []htmlRow
}

type htmlLegend struct {
	Producer string
	Color    string
}

var htmlFuncMap = template.FuncMap{
	"pct": func(f float64) string { return fmt.Sprintf("%.4f", f) },
}

var htmlTmpl = template.Must(template.New("timeline").Funcs(htmlFuncMap).Parse(htmlPageTmpl))

// Render writes pages to w.
func (h *HTML) Render(w io.Writer, pages []timeline.PageView) error {
	title := h.Title
	if title == "" {
		title = "tlview"
	}
	data := struct {
		Title     string
		NoData    string
		DatasetID string
		Legend    []htmlLegend
		Pages     []htmlPage
	}{Title: title, NoData: NoDataText}
	if len(pages) > 0 {
		data.DatasetID = pages[0].DatasetID
	}

	seen := make(map[string]bool)
	for _, v := range pages {
		p := htmlPage{Label: v.Label(), Start: v.Start, End: v.End, Empty: v.Empty}
		for _, row := range v.Rows() {
			color := h.Palette.Color(row.Producer)
			if !seen[row.Producer] {
				seen[row.Producer] = true
				data.Legend = append(data.Legend, htmlLegend{Producer: row.Producer, Color: color})
			}
			hr := htmlRow{Producer: row.Producer, Color: color}
			for _, iv := range row.Intervals {
				left, width := barPct(iv, v)
				hr.Bars = append(hr.Bars, htmlBar{
					LeftPct:  left,
					WidthPct: width,
					Color:    color,
					Tip:      barTip(iv),
				})
			}
			p.Rows = append(p.Rows, hr)
		}
		data.Pages = append(data.Pages, p)
	}
	return htmlTmpl.Execute(w, data)
}

func barTip(iv timeline.Interval) string {
	tip := fmt.Sprintf("%s [%d, %d] %s", iv.Producer, iv.Start, iv.End, FormatDuration(iv.Duration()))
	if iv.Source != "" {
		tip += " (" + iv.Source + ")"
	}
	return tip
}

func barPct(iv timeline.Interval, v timeline.PageView) (left, width float64) {
	size := float64(v.End - v.Start)
	if size <= 0 {
		size = 1
	}
	left = float64(iv.Start-v.Start) / size * 100
	width = float64(iv.End-iv.Start) / size * 100
	if width < minBarPct {
		width = minBarPct
	}
	if left+width > 100 {
		left = 100 - width
	}
	return left, width
}

const htmlPageTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'JetBrains Mono',monospace,sans-serif;background:#0d1117;color:#c9d1d9;font-size:13px;line-height:1.5;padding:16px}
h1{font-size:16px;font-weight:700;color:#f0f6fc;margin-bottom:12px}
.legend{display:flex;flex-wrap:wrap;gap:8px;margin-bottom:16px}
.badge{display:inline-block;padding:1px 6px;border-radius:10px;font-size:10px;font-weight:600;color:#0d1117}
.section{border:1px solid #30363d;border-radius:6px;margin-bottom:16px}
.section-hdr{padding:8px 12px;border-bottom:1px solid #30363d;font-size:11px;font-weight:600;color:#8b949e;text-transform:uppercase;letter-spacing:.05em}
.tl-wrap{padding:8px 12px}
.tl-row{display:flex;align-items:center;gap:8px;padding:3px 0;border-bottom:1px solid #161b22;font-size:11px}
.tl-label{width:200px;flex-shrink:0;overflow:hidden;text-overflow:ellipsis;white-space:nowrap}
.tl-bar-area{flex:1;position:relative;height:16px;background:#161b22}
.tl-bar{position:absolute;height:14px;border-radius:3px;top:1px;min-width:2px}
.tl-axis{display:flex;justify-content:space-between;margin-left:208px;color:#8b949e;font-size:10px}
.dim{color:#8b949e;padding:12px}
footer{font-size:10px}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="legend">
{{range .Legend}}<span class="badge" style="background:{{.Color}}">{{.Producer}}</span>
{{end}}</div>
{{range .Pages}}
<div class="section">
<div class="section-hdr">page {{.Label}}</div>
{{if .Empty}}<div class="dim">{{$.NoData}}</div>{{else}}
<div class="tl-wrap">
{{range .Rows}}<div class="tl-row">
  <div class="tl-label" style="color:{{.Color}}">{{.Producer}}</div>
  <div class="tl-bar-area">
{{range .Bars}}    <div class="tl-bar" title="{{.Tip}}" style="left:{{pct .LeftPct}}%;width:{{pct .WidthPct}}%;background:{{.Color}}"></div>
{{end}}  </div>
</div>
{{end}}<div class="tl-axis"><span>{{.Start}} ns</span><span>{{.End}} ns</span></div>
</div>{{end}}
</div>
{{end}}
{{with .DatasetID}}<footer class="dim">dataset {{.}}</footer>{{end}}
</body>
</html>
`
