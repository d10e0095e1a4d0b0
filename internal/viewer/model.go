// Package viewer is the interactive timeline browser.
//
// # Thread Safety
//
// The model is driven by the bubbletea event loop and must not be touched
// from other goroutines. Reloads run as commands on a separate goroutine and
// hand the finished dataset back through a message, so the session is only
// ever mutated inside Update.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tlview/tlview/internal/render"
	"github.com/tlview/tlview/pkg/logger"
	"github.com/tlview/tlview/pkg/timeline"
)

// LoadFunc reads a fresh dataset from the configured sources.
type LoadFunc func(ctx context.Context) (*timeline.Dataset, error)

// Options configures a Model.
type Options struct {
	// Context bounds reloads. Defaults to context.Background.
	Context context.Context
	Session *timeline.Session
	// Load is used by Init when the session is empty and by the reload key.
	Load    LoadFunc
	Palette *render.Palette
	Logger  logger.Logger
}

// loadedMsg carries the result of a LoadFunc back to Update.
type loadedMsg struct {
	ds  *timeline.Dataset
	err error
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f0f6fc"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#58a6ff"))
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#30363d")).Padding(0, 1)
)

// Model is the bubbletea model of the viewer.
type Model struct {
	ctx  context.Context
	s    *timeline.Session
	load LoadFunc
	term *render.Terminal
	l    logger.Logger
	help help.Model

	width int

	// reorder pane
	reordering bool
	draft      []string
	cursor     int

	loading bool
	err     error
	status  string
}

// New creates a viewer over opts.Session.
func New(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	l := opts.Logger
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Model{
		ctx:  ctx,
		s:    opts.Session,
		load: opts.Load,
		term: &render.Terminal{Palette: opts.Palette},
		l:    l,
		help: help.New(),
	}
}

// Run starts the viewer on the alternate screen and blocks until it quits.
func Run(m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(m.ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return m.ctx.Err()
	}
	return err
}

// Init loads the first dataset when the session starts empty.
func (m *Model) Init() tea.Cmd {
	if m.s.Loaded() || m.load == nil {
		return nil
	}
	return m.reload()
}

func (m *Model) reload() tea.Cmd {
	if m.load == nil || m.loading {
		return nil
	}
	m.loading = true
	m.status = "loading..."
	ctx, load := m.ctx, m.load
	return func() tea.Msg {
		ds, err := load(ctx)
		return loadedMsg{ds: ds, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.term.Width = trackWidth(msg.Width)
		return m, nil
	case loadedMsg:
		m.applyLoad(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) applyLoad(msg loadedMsg) {
	m.loading = false
	if msg.err != nil {
		m.err = msg.err
		m.status = ""
		m.l.Error("reload failed: %v", msg.err)
		return
	}
	if err := m.s.Load(msg.ds); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.reordering = false
	m.draft = nil
	m.cursor = 0
	m.status = fmt.Sprintf("loaded %d events", msg.ds.Len())
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Reload):
		return m, m.reload()
	}
	if !m.s.Loaded() {
		return m, nil
	}

	if m.reordering {
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.draft)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, keys.MoveUp):
			if m.cursor > 0 {
				m.draft[m.cursor], m.draft[m.cursor-1] = m.draft[m.cursor-1], m.draft[m.cursor]
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, keys.MoveDown):
			if m.cursor < len(m.draft)-1 {
				m.draft[m.cursor], m.draft[m.cursor+1] = m.draft[m.cursor+1], m.draft[m.cursor]
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, keys.Apply):
			if err := m.s.Reorder(m.draft); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.reordering = false
			m.status = "order applied"
			return m, nil
		case key.Matches(msg, keys.Cancel), key.Matches(msg, keys.Reorder):
			m.reordering = false
			m.draft = nil
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, keys.Left):
		m.s.PageLeft()
	case key.Matches(msg, keys.Right):
		m.s.PageRight()
	case key.Matches(msg, keys.First):
		m.s.GoTo(0)
	case key.Matches(msg, keys.Last):
		m.s.GoTo(m.s.TotalPages())
	case key.Matches(msg, keys.Grow):
		m.setPageSize(m.s.PageSize() * 2)
	case key.Matches(msg, keys.Shrink):
		if size := m.s.PageSize() / 2; size > 0 {
			m.setPageSize(size)
		}
	case key.Matches(msg, keys.Reorder):
		m.reordering = true
		m.draft = m.s.Order()
		m.cursor = 0
	case key.Matches(msg, keys.Reset):
		m.s.ResetOrder()
		m.status = "baseline order restored"
	}
	return m, nil
}

func (m *Model) setPageSize(size int64) {
	if err := m.s.SetPageSize(size); err != nil {
		m.err = err
		return
	}
	m.status = "page size " + render.FormatDuration(size)
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tlview"))
	if ds := m.s.Dataset(); ds != nil {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  %d events  %d producers  dataset %s", ds.Len(), len(ds.Order), shortID(ds.ID))))
	}
	b.WriteString("\n\n")

	switch {
	case !m.s.Loaded() && m.loading:
		b.WriteString(statusStyle.Render("Loading..."))
	case !m.s.Loaded():
		b.WriteString(statusStyle.Render("No dataset loaded. Press r to load."))
	default:
		v, err := m.s.View()
		if err != nil {
			b.WriteString(errStyle.Render(err.Error()))
		} else {
			b.WriteString(m.term.Page(v))
		}
	}
	b.WriteString("\n")

	if m.reordering {
		b.WriteString("\n")
		b.WriteString(paneStyle.Render(m.reorderPane()))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errStyle.Render("error: "+m.err.Error()) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.help.View(keys))
	return b.String()
}

// shortID keeps the first block of a dataset uuid.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (m *Model) reorderPane() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Producer order"))
	for i, name := range m.draft {
		b.WriteString("\n")
		line := fmt.Sprintf("%2d %s", i+1, name)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
	}
	return b.String()
}

func trackWidth(termWidth int) int {
	w := termWidth - 30
	if w < 20 {
		w = 20
	}
	return w
}
