package tui

import (
	"time"

	"github.com/colmenar/agenda/internal/calendar"
	"github.com/colmenar/agenda/internal/plan"
)

// Options configures TUI startup behavior.
type Options struct {
	// View is the projection shown first.
	View calendar.ViewMode
	// Year positions the calendar on a year other than the current one.
	// Zero means the current year.
	Year int

	DefaultModule           plan.Module
	ColorByModule           bool
	GroupGantt              bool
	ForcePlanningIndicators bool

	// PlansFile is the JSON plan store.
	PlansFile string
	// DBFile holds custom action types. Empty keeps them in memory.
	DBFile string

	// Now overrides the clock, for tests.
	Now func() time.Time
}
