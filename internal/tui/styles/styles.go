// Package styles defines shared lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colmenar/agenda/internal/plan"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#D7A441") // Honey accent
	secondaryColor = lipgloss.Color("#6C6C6C") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for success
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors
	warningColor   = lipgloss.Color("#FFAF5F") // Orange for rescheduled plans

	// NeutralColor is used for every plan when module coloring is off.
	NeutralColor = lipgloss.Color("#8A8AAF")

	moduleColors = map[plan.Module]lipgloss.Color{
		plan.ModuleApiculture:  lipgloss.Color("#D7AF00"),
		plan.ModuleAgriculture: lipgloss.Color("#5FAF5F"),
		plan.ModuleLivestock:   lipgloss.Color("#AF875F"),
		plan.ModulePoultry:     lipgloss.Color("#D75F87"),
		plan.ModuleGeneral:     lipgloss.Color("#5F87AF"),
	}

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for selected items in lists
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// SectionStyle for group headers
	SectionStyle = lipgloss.NewStyle().
			Bold(true)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// BoxStyle for panel borders
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(1, 2)

	// PopoverStyle frames the plan popover.
	PopoverStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// TabStyle and ActiveTabStyle render the view mode switcher.
	TabStyle       = lipgloss.NewStyle().Foreground(secondaryColor).Padding(0, 1)
	ActiveTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1C1C1C")).Background(primaryColor).Padding(0, 1)

	// HeaderStyle for weekday and month column headers.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(secondaryColor)

	// AltHeaderStyle alternates with HeaderStyle across Gantt month columns.
	AltHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9E9E9E"))

	// DayStyle, TodayStyle and OutsideDayStyle render day numbers.
	DayStyle        = lipgloss.NewStyle()
	TodayStyle      = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	OutsideDayStyle = lipgloss.NewStyle().Faint(true)

	// CursorStyle highlights the keyboard-selected day or row.
	CursorStyle = lipgloss.NewStyle().Reverse(true)

	// UnplannedStyle dims plans added outside the annual planning.
	UnplannedStyle = lipgloss.NewStyle().Faint(true).Italic(true)

	// RescheduledStyle marks plans moved off their planned date.
	RescheduledStyle = lipgloss.NewStyle().Foreground(warningColor)

	// AddRowStyle for the "add action" row.
	AddRowStyle = lipgloss.NewStyle().Foreground(successColor)
)

// ModuleColor returns the color assigned to a module. Unknown modules use the
// general module color.
func ModuleColor(m plan.Module) lipgloss.Color {
	return moduleColors[m.Normalize()]
}

// PlanColor returns the color a plan is drawn with.
func PlanColor(p plan.Plan, byModule bool) lipgloss.Color {
	if !byModule {
		return NeutralColor
	}
	return ModuleColor(p.TargetModule)
}
