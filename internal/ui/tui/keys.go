package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the terminal frontend
type KeyMap struct {
	PlayPause key.Binding
	Stop      key.Binding

	FocusUp   key.Binding
	FocusDown key.Binding
	BreakUp   key.Binding
	BreakDown key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PlayPause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "play/pause"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		FocusUp: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "focus +5m"),
		),
		FocusDown: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "focus -5m"),
		),
		BreakUp: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "break +1m"),
		),
		BreakDown: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "break -1m"),
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

// ShortHelp returns a short help string
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.Stop, k.Help, k.Quit}
}

// FullHelp returns the full help string
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.Stop},
		{k.FocusUp, k.FocusDown, k.BreakUp, k.BreakDown},
		{k.Help, k.Quit},
	}
}

// setIdle enables the duration keys and disables stop, or the reverse while a
// session exists.
func (k *KeyMap) setIdle(idle bool) {
	k.FocusUp.SetEnabled(idle)
	k.FocusDown.SetEnabled(idle)
	k.BreakUp.SetEnabled(idle)
	k.BreakDown.SetEnabled(idle)
	k.Stop.SetEnabled(!idle)
}
