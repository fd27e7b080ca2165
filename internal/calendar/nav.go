package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/colmenar/agenda/internal/plan"
)

// ViewMode selects one of the calendar projections.
type ViewMode int

const (
	ModeMonth ViewMode = iota
	ModeWeek
	ModeGantt
)

func (v ViewMode) String() string {
	switch v {
	case ModeWeek:
		return "week"
	case ModeGantt:
		return "gantt"
	default:
		return "month"
	}
}

// Label returns the Spanish tab label for the mode.
func (v ViewMode) Label() string {
	switch v {
	case ModeWeek:
		return "Semana"
	case ModeGantt:
		return "Gantt"
	default:
		return "Mes"
	}
}

// ParseViewMode parses "month", "week" or "gantt".
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "month", "mes":
		return ModeMonth, nil
	case "week", "semana":
		return ModeWeek, nil
	case "gantt":
		return ModeGantt, nil
	default:
		return ModeMonth, fmt.Errorf("invalid view %q (valid: month|week|gantt)", s)
	}
}

// Navigator tracks the active view mode and each mode's position. Month and
// week share a day cursor; Gantt has its own year.
type Navigator struct {
	mode      ViewMode
	cursor    plan.Date
	ganttYear int
	now       func() time.Time
}

// NewNavigator starts on today's month. A nil clock uses time.Now.
func NewNavigator(now func() time.Time) Navigator {
	if now == nil {
		now = time.Now
	}
	n := Navigator{now: now}
	n.GoToToday()
	return n
}

func (n Navigator) Mode() ViewMode    { return n.mode }
func (n Navigator) Cursor() plan.Date { return n.cursor }
func (n Navigator) GanttYear() int    { return n.ganttYear }

// Today returns the clock's current day.
func (n Navigator) Today() plan.Date {
	return plan.DateOf(n.now())
}

// SetMode switches projection without touching any cursor.
func (n *Navigator) SetMode(mode ViewMode) {
	n.mode = mode
}

// SetCursor moves the month/week cursor.
func (n *Navigator) SetCursor(d plan.Date) {
	if !d.IsZero() {
		n.cursor = d
	}
}

// SetGanttYear moves the Gantt year.
func (n *Navigator) SetGanttYear(year int) {
	n.ganttYear = year
}

// GoToToday resets both the day cursor and the Gantt year, whatever the mode.
func (n *Navigator) GoToToday() {
	today := n.Today()
	n.cursor = today
	n.ganttYear = today.Year()
}

// GoToPrevious steps back one month, week or year depending on the mode.
func (n *Navigator) GoToPrevious() {
	n.step(-1)
}

// GoToNext steps forward one month, week or year depending on the mode.
func (n *Navigator) GoToNext() {
	n.step(1)
}

func (n *Navigator) step(dir int) {
	switch n.mode {
	case ModeWeek:
		n.cursor = n.cursor.AddDays(7 * dir)
	case ModeGantt:
		n.ganttYear += dir
	default:
		n.cursor = AddMonths(n.cursor, dir)
	}
}

// AddMonths moves d by n calendar months, clamping the day to the target
// month's length (Jan 31 + 1 month = Feb 28).
func AddMonths(d plan.Date, n int) plan.Date {
	first := plan.NewDate(d.Year(), d.Month()+time.Month(n), 1)
	day := d.Day()
	if last := first.DaysInMonth(); day > last {
		day = last
	}
	return plan.NewDate(first.Year(), first.Month(), day)
}
