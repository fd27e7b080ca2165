package views

import "github.com/charmbracelet/bubbles/key"

// CalendarKeyMap holds the calendar's key bindings.
type CalendarKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Focus  key.Binding
	Back   key.Binding
	Select key.Binding
	Toggle key.Binding
	Month  key.Binding
	Week   key.Binding
	Gantt  key.Binding
	Today  key.Binding
	Prev   key.Binding
	Next   key.Binding
	Add    key.Binding
	View   key.Binding
	Edit   key.Binding
	Close  key.Binding
}

// DefaultCalendarKeyMap returns the standard bindings.
func DefaultCalendarKeyMap() CalendarKeyMap {
	return CalendarKeyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "día")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "semana")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "planes del día")),
		Back:   key.NewBinding(key.WithKeys("shift+tab")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("espacio", "plegar")),
		Month:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m/w/g", "vista")),
		Week:   key.NewBinding(key.WithKeys("w")),
		Gantt:  key.NewBinding(key.WithKeys("g")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "hoy")),
		Prev:   key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p/n", "anterior/siguiente")),
		Next:   key.NewBinding(key.WithKeys("n", "pgdown")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "agregar")),
		View:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "ver detalles")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cerrar")),
	}
}

// ShortHelp returns the bindings shown in the status bar for the grid views.
func (k CalendarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Focus, k.Select, k.Month, k.Prev, k.Today, k.Add}
}

// GanttHelp returns the status bar bindings for the Gantt view.
func (k CalendarKeyMap) GanttHelp() []key.Binding {
	up := k.Up
	up.SetHelp("↑↓", "fila")
	return []key.Binding{up, k.Select, k.Toggle, k.Month, k.Prev, k.Today, k.Add}
}

// PopoverHelp returns the status bar bindings while a popover is open.
func (k CalendarKeyMap) PopoverHelp() []key.Binding {
	return []key.Binding{k.View, k.Edit, k.Close}
}

// FullHelp returns every binding grouped for the help overlay.
func (k CalendarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Up, k.Focus, k.Select, k.Toggle},
		{k.Month, k.Prev, k.Today, k.Add},
		{k.View, k.Edit, k.Close},
	}
}
