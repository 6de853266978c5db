package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/momentum-jumper/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Charge     key.Binding
	Start      key.Binding
	Pause      key.Binding
	Lobby      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Charge, k.Start, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Charge, k.Start, k.Pause, k.Lobby},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Charge: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "charge/jump"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Lobby: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "lobby (paused)"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game intent. Terminals report no
// key releases, so the charge key starts a charge and the next press
// releases it. Returns IntentNone for keys that are not game input.
func (k KeyMap) MapKey(msg tea.KeyMsg, charging bool) core.Intent {
	switch {
	case key.Matches(msg, k.Charge):
		if charging {
			return core.IntentReleaseCharge
		}
		return core.IntentStartCharge
	case key.Matches(msg, k.Start):
		return core.IntentStart
	case key.Matches(msg, k.Pause):
		return core.IntentPause
	case key.Matches(msg, k.Lobby):
		return core.IntentLobby
	}
	return core.IntentNone
}
