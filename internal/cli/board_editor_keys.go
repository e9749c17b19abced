package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// editorKeyMap binds the board editor actions. It implements help.KeyMap.
type editorKeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Descend   key.Binding
	Ascend    key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Add       key.Binding
	Copy      key.Binding
	Remove    key.Binding
	Edit      key.Binding
	Rate      key.Binding
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", "left", "k", "h"),
			key.WithHelp("↑/←", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "right", "j", "l"),
			key.WithHelp("↓/→", "next"),
		),
		Descend: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "go inside"),
		),
		Ascend: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "go out"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("shift+up", "shift+left", "K", "H"),
			key.WithHelp("shift+↑", "move earlier"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("shift+down", "shift+right", "J", "L"),
			key.WithHelp("shift+↓", "move later"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy unit"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit"),
		),
		Rate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "exchange rate"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Descend, k.Edit, k.Add, k.Save, k.Help, k.Quit}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Descend, k.Ascend},
		{k.MoveUp, k.MoveDown, k.Add, k.Copy, k.Remove},
		{k.Edit, k.Rate, k.Save, k.Help, k.Quit},
	}
}

// gridViewportKeyMap leaves the arrows to the cursor and scrolls by page.
func gridViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}
}
