// Package msgs defines shared message types for TUI view transitions.
package msgs

import "github.com/colmenar/agenda/internal/plan"

// Calendar events

// DayClickedMsg is sent when a day cell is activated outside any plan chip.
type DayClickedMsg struct {
	Date plan.Date
}

// PlanClickedMsg is sent when a plan chip or bar is activated, before its
// popover opens.
type PlanClickedMsg struct {
	Plan plan.Plan
}

// PlanViewMsg asks the host to show the plan's details.
type PlanViewMsg struct {
	Plan plan.Plan
}

// PlanEditMsg asks the host to open the edit form for the plan.
type PlanEditMsg struct {
	Plan plan.Plan
}

// AddActionMsg asks the host to add a plan to the given year.
type AddActionMsg struct {
	Year int
}

// View transition messages

// GoToCalendarMsg signals a return to the calendar.
type GoToCalendarMsg struct{}

// Data messages

// PlansLoadedMsg carries a fresh plan snapshot from the store.
type PlansLoadedMsg struct {
	Plans []plan.Plan
	Err   error
}

// PlanSavedMsg is sent after the form persisted a plan.
type PlanSavedMsg struct {
	Plan plan.Plan
	Err  error
}
