package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tlview/tlview/pkg/timeline"
)

// NoDataText is printed in place of the chart when a page holds no events.
const NoDataText = "No data on this page."

// DefaultTrackWidth is the chart width in cells when Terminal.Width is 0.
const DefaultTrackWidth = 80

const maxLabelWidth = 24

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#30363d"))
)

// Terminal renders pages as a text Gantt chart, one row per producer.
type Terminal struct {
	// Width is the number of cells spanning the page window.
	Width   int
	Palette *Palette
}

func (t *Terminal) trackWidth() int {
	if t.Width <= 0 {
		return DefaultTrackWidth
	}
	return t.Width
}

// WritePage writes Page(v) followed by a newline.
func (t *Terminal) WritePage(w io.Writer, v timeline.PageView) error {
	_, err := io.WriteString(w, t.Page(v)+"\n")
	return err
}

// Page renders v. The header always shows the page indicator so empty pages
// remain distinguishable from a missing dataset.
func (t *Terminal) Page(v timeline.PageView) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("page " + v.Label()))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  [%d, %d) ns  size %s", v.Start, v.End, FormatDuration(v.PageSize))))
	b.WriteByte('\n')
	if v.Empty {
		b.WriteString(mutedStyle.Render(NoDataText))
		return b.String()
	}

	width := t.trackWidth()
	labelW := 0
	for _, name := range v.Order {
		if n := lipgloss.Width(name); n > labelW {
			labelW = n
		}
	}
	if labelW > maxLabelWidth {
		labelW = maxLabelWidth
	}

	for _, row := range v.Rows() {
		b.WriteString(pad(truncate(row.Producer, labelW), labelW))
		b.WriteByte(' ')
		b.WriteString(frameStyle.Render("│"))
		b.WriteString(t.track(row, v, width))
		b.WriteString(frameStyle.Render("│"))
		b.WriteByte('\n')
	}

	left := strconv.FormatInt(v.Start, 10)
	right := strconv.FormatInt(v.End, 10)
	gap := width + 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(strings.Repeat(" ", labelW+1))
	b.WriteString(mutedStyle.Render(left + strings.Repeat(" ", gap) + right))
	return b.String()
}

func (t *Terminal) track(row timeline.Row, v timeline.PageView, width int) string {
	cells := make([]bool, width)
	for _, iv := range row.Intervals {
		c0, c1 := cellSpan(iv, v, width)
		for c := c0; c < c1; c++ {
			cells[c] = true
		}
	}
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Palette.Color(row.Producer)))
	var b strings.Builder
	for i := 0; i < width; {
		j := i
		for j < width && cells[j] == cells[i] {
			j++
		}
		if cells[i] {
			b.WriteString(bar.Render(strings.Repeat("█", j-i)))
		} else {
			b.WriteString(strings.Repeat(" ", j-i))
		}
		i = j
	}
	return b.String()
}

// cellSpan maps iv onto [c0, c1) of a track width cells wide. Every interval
// covers at least one cell.
func cellSpan(iv timeline.Interval, v timeline.PageView, width int) (int, int) {
	size := float64(v.End - v.Start)
	if size <= 0 {
		size = 1
	}
	c0 := int(math.Floor(float64(iv.Start-v.Start) / size * float64(width)))
	c1 := int(math.Ceil(float64(iv.End-v.Start) / size * float64(width)))
	if c0 < 0 {
		c0 = 0
	}
	if c0 >= width {
		c0 = width - 1
	}
	if c1 > width {
		c1 = width
	}
	if c1 <= c0 {
		c1 = c0 + 1
	}
	return c0, c1
}

// Order renders a numbered producer list with color swatches.
func (t *Terminal) Order(order []string) string {
	var b strings.Builder
	for i, name := range order {
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Palette.Color(name))).Render("■")
		fmt.Fprintf(&b, "%3d %s %s\n", i+1, sw, name)
	}
	return b.String()
}

// Stats renders per-producer statistics as a table.
func (t *Terminal) Stats(stats []timeline.ProducerStats) string {
	rows := make([][]string, 0, len(stats))
	for _, st := range stats {
		rows = append(rows, []string{
			st.Producer,
			strconv.Itoa(st.Events),
			FormatDuration(st.Busy),
			strconv.FormatInt(st.First, 10),
			strconv.FormatInt(st.Last, 10),
		})
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(frameStyle).
		Headers("PRODUCER", "EVENTS", "BUSY", "FIRST (ns)", "LAST (ns)").
		Rows(rows...)
	return tbl.String()
}

// FormatDuration prints a nanosecond count the way time.Duration does.
func FormatDuration(ns int64) string {
	return time.Duration(ns).String()
}

func pad(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > w {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
