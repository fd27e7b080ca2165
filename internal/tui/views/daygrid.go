package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colmenar/agenda/internal/calendar"
	"github.com/colmenar/agenda/internal/plan"
	"github.com/colmenar/agenda/internal/tui/styles"
)

// Chips drawn per day before collapsing the rest into "+N más".
const (
	monthChipLimit = 2
	weekChipLimit  = 6
)

// gridLayout is the on-screen geometry of the month and week grids. The
// renderer and the mouse hit-test both use it.
type gridLayout struct {
	top   int // screen row of the weekday header
	colW  int
	cellH int
	limit int
	weeks [][]plan.Date
}

func (m CalendarModel) gridLayout() gridLayout {
	cursor := m.nav.Cursor()
	g := gridLayout{
		top:   calendarHeaderHeight,
		colW:  max(m.width/7, 4),
		limit: monthChipLimit,
	}
	if m.nav.Mode() == calendar.ModeWeek {
		g.weeks = [][]plan.Date{calendar.WeekDays(cursor)}
		g.limit = weekChipLimit
	} else {
		g.weeks = calendar.MonthGrid(cursor.Year(), cursor.Month())
	}
	g.cellH = max((m.bodyHeight()-1)/len(g.weeks), 2)
	return g
}

// cellRect returns the screen area of a day cell.
func (g gridLayout) cellRect(week, dow int) calendar.Rect {
	return calendar.Rect{
		X:      dow * g.colW,
		Y:      g.top + 1 + week*g.cellH,
		Width:  g.colW,
		Height: g.cellH,
	}
}

// chipRect returns the screen area of the i-th chip in a day cell.
func (g gridLayout) chipRect(week, dow, i int) calendar.Rect {
	cell := g.cellRect(week, dow)
	return calendar.Rect{X: cell.X + 1, Y: cell.Y + 1 + i, Width: g.colW - 1, Height: 1}
}

// dayAt maps a screen position to a cell and the line inside it.
func (g gridLayout) dayAt(x, y int) (week, dow, line int, ok bool) {
	row := y - g.top - 1
	if row < 0 || x < 0 {
		return 0, 0, 0, false
	}
	week, line = row/g.cellH, row%g.cellH
	dow = x / g.colW
	if week >= len(g.weeks) || dow > 6 {
		return 0, 0, 0, false
	}
	return week, dow, line, true
}

// locate returns the grid position of d.
func (g gridLayout) locate(d plan.Date) (week, dow int, ok bool) {
	for w, days := range g.weeks {
		for i, day := range days {
			if day.Equal(d) {
				return w, i, true
			}
		}
	}
	return 0, 0, false
}

// chipLayout decides how many of n plans fit in a cell with slots free lines
// and a chip limit. The rest are summarized by the overflow line.
func chipLayout(n, slots, limit int) (shown, more int) {
	shown = min(n, limit, max(slots, 0))
	if shown < n && shown == slots {
		shown = max(slots-1, 0)
	}
	return shown, n - shown
}

// inView reports whether d belongs to the period being shown. Week view shows
// every day of its week.
func (m CalendarModel) inView(d plan.Date) bool {
	if m.nav.Mode() == calendar.ModeWeek {
		return true
	}
	c := m.nav.Cursor()
	return calendar.InMonth(d, c.Year(), c.Month())
}

func (m CalendarModel) renderGrid() string {
	g := m.gridLayout()
	today := m.nav.Today()

	var rows []string
	headers := make([]string, 7)
	for i, name := range calendar.WeekdayHeaders {
		label := name
		if m.nav.Mode() == calendar.ModeWeek {
			label += " " + strconv.Itoa(g.weeks[0][i].Day())
		}
		headers[i] = styles.HeaderStyle.Render(padCell(" "+label, g.colW))
	}
	rows = append(rows, strings.Join(headers, ""))

	for _, days := range g.weeks {
		cells := make([]string, 7)
		for i, day := range days {
			cells[i] = m.renderCell(g, day, today)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m CalendarModel) renderCell(g gridLayout, day, today plan.Date) string {
	selected := day.Equal(m.nav.Cursor())
	plans := calendar.PlansOn(m.plans, day)
	shown, more := chipLayout(len(plans), g.cellH-1, g.limit)

	dim := !m.inView(day)

	number := padCell(" "+strconv.Itoa(day.Day()), g.colW)
	switch {
	case selected && m.focus < 0:
		number = styles.CursorStyle.Render(number)
	case selected:
		number = styles.SelectedStyle.Render(number)
	case day.Equal(today):
		number = styles.TodayStyle.Render(number)
	case dim:
		number = styles.OutsideDayStyle.Render(number)
	default:
		number = styles.DayStyle.Render(number)
	}

	lines := []string{number}
	for i := 0; i < shown; i++ {
		chip := m.renderChip(plans[i], g.colW-1, selected && m.focus == i, dim)
		lines = append(lines, " "+chip)
	}
	if more > 0 && len(lines) < g.cellH {
		lines = append(lines, styles.SubtleStyle.Render(padCell(" +"+strconv.Itoa(more)+" más", g.colW)))
	}
	for len(lines) < g.cellH {
		lines = append(lines, strings.Repeat(" ", g.colW))
	}
	return strings.Join(lines[:g.cellH], "\n")
}

// renderChip draws a one-line plan chip of the given width.
func (m CalendarModel) renderChip(p plan.Plan, width int, focused, dim bool) string {
	glyph := "▪"
	style := lipgloss.NewStyle().Foreground(styles.PlanColor(p, m.opts.ColorByModule))
	if m.indicators {
		switch calendar.Classify(p) {
		case calendar.StateUnplanned:
			glyph = glyphUnplanned
			style = style.Inherit(styles.UnplannedStyle)
		case calendar.StateRescheduled:
			glyph = glyphRescheduled
			style = styles.RescheduledStyle
		}
	}
	if dim {
		style = style.Faint(true)
	}
	if focused {
		style = style.Reverse(true)
	}
	return style.Render(padCell(glyph+" "+p.Title, width))
}

func (m CalendarModel) handleGridKey(msg tea.KeyMsg) (CalendarModel, tea.Cmd) {
	cursor := m.nav.Cursor()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.SetCursor(cursor.AddDays(-1))
	case key.Matches(msg, m.keys.Right):
		m.SetCursor(cursor.AddDays(1))
	case key.Matches(msg, m.keys.Up):
		m.SetCursor(cursor.AddDays(-7))
	case key.Matches(msg, m.keys.Down):
		m.SetCursor(cursor.AddDays(7))
	case key.Matches(msg, m.keys.Focus):
		m.cycleFocus(1)
	case key.Matches(msg, m.keys.Back):
		m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Select):
		return m, m.activateFocus()
	}
	return m, nil
}

// visibleChips returns the plans drawn as chips in the selected day.
func (m CalendarModel) visibleChips() []plan.Plan {
	g := m.gridLayout()
	plans := calendar.PlansOn(m.plans, m.nav.Cursor())
	shown, _ := chipLayout(len(plans), g.cellH-1, g.limit)
	return plans[:shown]
}

// cycleFocus moves keyboard focus through the selected day's chips, wrapping
// back to the day itself.
func (m *CalendarModel) cycleFocus(dir int) {
	n := len(m.visibleChips())
	if n == 0 {
		m.focus = -1
		return
	}
	// Positions -1..n-1, stepped modulo n+1.
	m.focus = (m.focus+1+dir+n+1)%(n+1) - 1
}

// activateFocus clicks the focused chip, or the day when no chip has focus.
func (m *CalendarModel) activateFocus() tea.Cmd {
	day := m.nav.Cursor()
	chips := m.visibleChips()
	if m.focus < 0 || m.focus >= len(chips) {
		return m.clickDay(day)
	}

	g := m.gridLayout()
	week, dow, ok := g.locate(day)
	anchor := calendar.Rect{}
	if ok {
		anchor = g.chipRect(week, dow, m.focus)
	}
	return m.openPlan(chips[m.focus], anchor)
}

func (m CalendarModel) handleGridPress(x, y int) (CalendarModel, tea.Cmd) {
	g := m.gridLayout()
	week, dow, line, ok := g.dayAt(x, y)
	if !ok {
		return m, nil
	}
	day := g.weeks[week][dow]
	plans := calendar.PlansOn(m.plans, day)
	shown, _ := chipLayout(len(plans), g.cellH-1, g.limit)

	// A chip press is a plan click only; it never reaches the day.
	if chip := line - 1; chip >= 0 && chip < shown {
		m.focus = -1
		if m.inView(day) {
			m.SetCursor(day)
			m.focus = chip
		}
		return m, m.openPlan(plans[chip], g.chipRect(week, dow, chip))
	}

	if m.inView(day) {
		m.SetCursor(day)
	}
	return m, m.clickDay(day)
}
