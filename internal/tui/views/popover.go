package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/colmenar/agenda/internal/calendar"
	"github.com/colmenar/agenda/internal/plan"
	"github.com/colmenar/agenda/internal/tui/styles"
)

const popoverMaxWidth = 44

// popoverAction is a clickable row in the popover.
type popoverAction int

const (
	actionNone popoverAction = iota
	actionView
	actionEdit
)

// Popover is a floating panel describing one plan. It is positioned next to
// its anchor and kept inside the viewport.
type Popover struct {
	open    bool
	plan    plan.Plan
	anchor  calendar.Rect
	panel   string
	pos     calendar.Point
	size    calendar.Size
	actions map[int]popoverAction // panel row -> action
}

// Open returns a popover for p showing panel next to anchor. The panel is
// measured after rendering and placed within viewport.
func (o Popover) Open(p plan.Plan, anchor calendar.Rect, panel string, actions map[int]popoverAction, viewport calendar.Size) Popover {
	size := calendar.Size{Width: lipgloss.Width(panel), Height: lipgloss.Height(panel)}
	return Popover{
		open:    true,
		plan:    p,
		anchor:  anchor,
		panel:   panel,
		size:    size,
		pos:     calendar.PlacePopover(anchor, size, viewport, calendar.CellPopoverConfig),
		actions: actions,
	}
}

// Close returns a closed popover.
func (o Popover) Close() Popover {
	return Popover{}
}

func (o Popover) IsOpen() bool              { return o.open }
func (o Popover) Plan() plan.Plan           { return o.plan }
func (o Popover) Panel() string             { return o.panel }
func (o Popover) Position() calendar.Point  { return o.pos }
func (o Popover) Anchor() calendar.Rect     { return o.anchor }

// Rect returns the panel's screen area.
func (o Popover) Rect() calendar.Rect {
	return calendar.Rect{X: o.pos.X, Y: o.pos.Y, Width: o.size.Width, Height: o.size.Height}
}

// Dismisses reports whether a press at (x, y) closes the popover: presses
// outside both the panel and its anchor.
func (o Popover) Dismisses(x, y int) bool {
	return o.open && !o.Rect().Contains(x, y) && !o.anchor.Contains(x, y)
}

// ActionAt returns the action under (x, y), if any.
func (o Popover) ActionAt(x, y int) popoverAction {
	if !o.open || !o.Rect().Contains(x, y) {
		return actionNone
	}
	return o.actions[y-o.pos.Y]
}

// popoverContent describes what the popover panel shows.
type popoverContent struct {
	plan          plan.Plan
	actionLabel   string
	colorByModule bool
	indicators    bool
	canEdit       bool
}

// renderPopoverPanel renders the framed panel and the panel rows of its
// actions.
func renderPopoverPanel(c popoverContent) (string, map[int]popoverAction) {
	p := c.plan
	accent := lipgloss.NewStyle().Bold(true).Foreground(styles.PlanColor(p, c.colorByModule))

	var lines []string
	lines = append(lines, accent.Render(clip(p.Title, popoverMaxWidth)))
	lines = append(lines, styles.SubtleStyle.Render(clip(p.TargetModule.Label()+" · "+c.actionLabel, popoverMaxWidth)))
	lines = append(lines, calendar.FormatRange(p))
	lines = append(lines, badge(plan.StatusLabel(p.Status))+" "+badge("Prioridad "+plan.PriorityLabel(p.Priority)))
	if p.Location != "" {
		lines = append(lines, styles.SubtleStyle.Render(clip("Lugar: "+p.Location, popoverMaxWidth)))
	}

	if c.indicators {
		switch calendar.Classify(p) {
		case calendar.StateUnplanned:
			lines = append(lines, styles.UnplannedStyle.Render(glyphUnplanned+" "+calendar.StateUnplanned.String()))
		case calendar.StateRescheduled:
			lines = append(lines, styles.RescheduledStyle.Render(glyphRescheduled+" "+calendar.StateRescheduled.String()))
			lines = append(lines, styles.SubtleStyle.Render(originalCaption(p)))
		}
	}

	lines = append(lines, "")
	actions := map[int]popoverAction{}
	// +1 for the top border row.
	actions[len(lines)+1] = actionView
	lines = append(lines, styles.SelectedStyle.Render("[v] Ver detalles"))
	if c.canEdit {
		actions[len(lines)+1] = actionEdit
		lines = append(lines, styles.SelectedStyle.Render("[e] Editar"))
	}

	return styles.PopoverStyle.Render(strings.Join(lines, "\n")), actions
}

// originalCaption is the tooltip line of a rescheduled plan.
func originalCaption(p plan.Plan) string {
	if p.OriginalScheduledDate == nil {
		return ""
	}
	return "Original: " + calendar.FormatDayMonth(*p.OriginalScheduledDate)
}

func badge(s string) string {
	return lipgloss.NewStyle().Reverse(true).Padding(0, 1).Render(s)
}

// clip truncates s to width cells with an ellipsis.
func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
