package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Submit     key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	FillNow    key.Binding
	FillLast   key.Binding
	Scope      key.Binding
	RemoveTag  key.Binding
	Suggestion key.Binding
	Quit       key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Submit, k.Quit},
		{k.FillNow, k.FillLast, k.Scope, k.RemoveTag, k.Suggestion},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save entry"),
		),
		NextField: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		FillNow: key.NewBinding(
			key.WithKeys("alt+n"),
			key.WithHelp("alt+n", "fill current time"),
		),
		FillLast: key.NewBinding(
			key.WithKeys("alt+l"),
			key.WithHelp("alt+l", "fill last clock-out"),
		),
		Scope: key.NewBinding(
			key.WithKeys("c", "a", "p"),
			key.WithHelp("c/a/p", "pick scope"),
		),
		RemoveTag: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "remove last tag"),
		),
		Suggestion: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "accept suggestion"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}
