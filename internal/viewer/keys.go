package viewer

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	First    key.Binding
	Last     key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Reorder  key.Binding
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Apply    key.Binding
	Cancel   key.Binding
	Reset    key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/left", "prev page")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/right", "next page")),
	First:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first page")),
	Last:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last page")),
	Grow:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "page size x2")),
	Shrink:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "page size /2")),
	Reorder:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "reorder")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "cursor up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "cursor down")),
	MoveUp:   key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
	MoveDown: key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
	Apply:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply order")),
	Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard order")),
	Reset:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "baseline order")),
	Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Reorder, k.Reload, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.First, k.Last},
		{k.Grow, k.Shrink, k.Reload, k.Quit},
		{k.Reorder, k.Up, k.Down, k.MoveUp, k.MoveDown},
		{k.Apply, k.Cancel, k.Reset, k.Help},
	}
}
