package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/colmenar/agenda/internal/tui/views"
)

// appKeyMap holds the bindings handled by the host rather than a screen.
type appKeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "salir")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ayuda")),
	}
}

// helpKeys combines calendar and host bindings for the help screen.
type helpKeys struct {
	calendar views.CalendarKeyMap
	app      appKeyMap
}

func (k helpKeys) ShortHelp() []key.Binding {
	return append(k.calendar.ShortHelp(), k.app.Help, k.app.Quit)
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return append(k.calendar.FullHelp(), []key.Binding{k.app.Help, k.app.Quit})
}
