package views

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colmenar/agenda/internal/calendar"
	"github.com/colmenar/agenda/internal/plan"
	"github.com/colmenar/agenda/internal/tui/components"
	"github.com/colmenar/agenda/internal/tui/styles"
)

const (
	ganttHeaderGrouped = "Tipo Acción"
	ganttHeaderFlat    = "Plan"
	addActionLabel     = "+ Agregar acción"
)

type ganttRowKind int

const (
	rowGroup ganttRowKind = iota
	rowPlan
	rowAdd
	rowEmpty
)

// ganttRow is one line of the Gantt body.
type ganttRow struct {
	kind  ganttRowKind
	group calendar.PlanGroup
	plan  plan.Plan
	child bool // plan row inside a group
	last  bool // last child of its group
}

// ganttLayout is the on-screen geometry of the Gantt view.
type ganttLayout struct {
	top     int // screen row of the month header
	labelW  int
	monthW  int
	visible int // body rows that fit under the header
}

func (g ganttLayout) barCols() int {
	return g.monthW * 12
}

func (m CalendarModel) ganttLayout() ganttLayout {
	labelW := min(max(m.width/4, 16), 32)
	// One column is kept for the scrollbar.
	monthW := max((m.width-labelW-1)/12, 1)
	return ganttLayout{
		top:     calendarHeaderHeight,
		labelW:  labelW,
		monthW:  monthW,
		visible: max(m.bodyHeight()-1, 0),
	}
}

// ganttRows builds the rows of the current year.
func (m CalendarModel) ganttRows() []ganttRow {
	year := m.nav.GanttYear()
	yearPlans := calendar.PlansInYear(m.plans, year)

	var rows []ganttRow
	if m.opts.GroupGantt {
		groups := calendar.Grouper{Labels: m.opts.Labels}.Group(yearPlans)
		for _, g := range groups {
			rows = append(rows, ganttRow{kind: rowGroup, group: g})
			if m.collapsed[g.ActionType] {
				continue
			}
			for i, p := range g.Plans {
				rows = append(rows, ganttRow{kind: rowPlan, plan: p, child: true, last: i == len(g.Plans)-1})
			}
		}
	} else {
		sorted := make([]plan.Plan, len(yearPlans))
		copy(sorted, yearPlans)
		plan.SortByDate(sorted)
		for _, p := range sorted {
			rows = append(rows, ganttRow{kind: rowPlan, plan: p})
		}
	}

	switch {
	case m.callbacks.OnAddAction != nil:
		rows = append(rows, ganttRow{kind: rowAdd})
	case len(yearPlans) == 0:
		rows = append(rows, ganttRow{kind: rowEmpty})
	}
	return rows
}

func (m *CalendarModel) clampGanttRow() {
	n := len(m.ganttRows())
	if m.ganttRow >= n {
		m.ganttRow = n - 1
	}
	if m.ganttRow < 0 {
		m.ganttRow = 0
	}
	m.ensureGanttRowVisible()
}

func (m *CalendarModel) ensureGanttRowVisible() {
	visible := m.ganttLayout().visible
	if visible <= 0 {
		return
	}
	if m.ganttRow < m.ganttOffset {
		m.ganttOffset = m.ganttRow
	}
	if m.ganttRow >= m.ganttOffset+visible {
		m.ganttOffset = m.ganttRow - visible + 1
	}
}

func (m *CalendarModel) scrollGantt(delta int) {
	maxOffset := max(len(m.ganttRows())-m.ganttLayout().visible, 0)
	m.ganttOffset = min(max(m.ganttOffset+delta, 0), maxOffset)
}

// GanttRow returns the keyboard-selected Gantt row index.
func (m CalendarModel) GanttRow() int {
	return m.ganttRow
}

func (m CalendarModel) renderGantt() string {
	g := m.ganttLayout()
	rows := m.ganttRows()

	var lines []string
	lines = append(lines, m.renderGanttHeader(g))

	end := min(m.ganttOffset+g.visible, len(rows))
	var body []string
	for i := m.ganttOffset; i < end; i++ {
		body = append(body, m.renderGanttRow(g, rows[i], i == m.ganttRow))
	}
	for len(body) < g.visible {
		body = append(body, "")
	}

	if g.visible > 0 {
		bar := strings.Split(components.RenderScrollbar(g.visible, len(rows), m.ganttOffset), "\n")
		width := g.labelW + g.barCols()
		for i := range body {
			body[i] = padCell(body[i], width) + styles.SubtleStyle.Render(bar[i])
		}
	}
	lines = append(lines, body...)
	return strings.Join(lines, "\n")
}

func (m CalendarModel) renderGanttHeader(g ganttLayout) string {
	label := ganttHeaderFlat
	if m.opts.GroupGantt {
		label = ganttHeaderGrouped
	}

	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render(padCell(label, g.labelW)))
	for month := time.January; month <= time.December; month++ {
		name := calendar.ShortMonth(month)
		if g.monthW < 3 {
			name = name[:1]
		}
		cell := lipgloss.PlaceHorizontal(g.monthW, lipgloss.Center, clip(name, g.monthW))
		if month%2 == 0 {
			b.WriteString(styles.AltHeaderStyle.Render(cell))
		} else {
			b.WriteString(styles.HeaderStyle.Render(cell))
		}
	}
	return b.String()
}

func (m CalendarModel) renderGanttRow(g ganttLayout, row ganttRow, selected bool) string {
	var label, bars string
	switch row.kind {
	case rowGroup:
		toggle := "▾"
		if m.collapsed[row.group.ActionType] {
			toggle = "▸"
		}
		label = styles.SectionStyle.Render(padCell(toggle+" "+row.group.Label+" ("+strconv.Itoa(len(row.group.Plans))+")", g.labelW))
		bars = m.renderGroupSpan(g, row.group)
	case rowPlan:
		label = m.renderPlanLabel(g, row)
		bars = m.renderPlanBar(g, row.plan)
	case rowAdd:
		label = styles.AddRowStyle.Render(padCell(addActionLabel, g.labelW))
		bars = m.renderEmptyTrack(g)
	case rowEmpty:
		return styles.SubtleStyle.Render("Sin planes para " + strconv.Itoa(m.nav.GanttYear()))
	}
	if selected {
		label = styles.CursorStyle.Render(label)
	}
	return label + bars
}

func (m CalendarModel) renderPlanLabel(g ganttLayout, row ganttRow) string {
	prefix := ""
	if row.child {
		prefix = " ├─ "
		if row.last {
			prefix = " └─ "
		}
	}

	title := row.plan.Title
	style := lipgloss.NewStyle()
	if m.indicators {
		switch calendar.Classify(row.plan) {
		case calendar.StateUnplanned:
			title = glyphUnplanned + " " + title
			style = styles.UnplannedStyle
		case calendar.StateRescheduled:
			title = glyphRescheduled + " " + title
			style = styles.RescheduledStyle
		}
	}
	return style.Render(padCell(prefix+title, g.labelW))
}

// barColumns returns the bar cells of p in the current year.
func (m CalendarModel) barColumns(g ganttLayout, p plan.Plan) (start, span int, ok bool) {
	pos, ok := calendar.ComputeBar(p, m.nav.GanttYear())
	if !ok {
		return 0, 0, false
	}
	start, span = calendar.Layout(pos).Columns(g.barCols())
	return start, span, true
}

func (m CalendarModel) renderPlanBar(g ganttLayout, p plan.Plan) string {
	start, span, ok := m.barColumns(g, p)
	if !ok {
		return m.renderEmptyTrack(g)
	}

	fill := "█"
	style := lipgloss.NewStyle().Foreground(styles.PlanColor(p, m.opts.ColorByModule))
	if m.indicators {
		switch calendar.Classify(p) {
		case calendar.StateUnplanned:
			fill = "╌"
			style = style.Faint(true)
		case calendar.StateRescheduled:
			style = styles.RescheduledStyle
		}
	}

	track := m.trackCells(g)
	return strings.Join(track[:start], "") +
		style.Render(strings.Repeat(fill, span)) +
		strings.Join(track[start+span:], "")
}

// renderGroupSpan draws a thin line covering the group's plans.
func (m CalendarModel) renderGroupSpan(g ganttLayout, group calendar.PlanGroup) string {
	first, last := -1, -1
	for _, p := range group.Plans {
		start, span, ok := m.barColumns(g, p)
		if !ok {
			continue
		}
		if first < 0 || start < first {
			first = start
		}
		if end := start + span; end > last {
			last = end
		}
	}
	if first < 0 {
		return m.renderEmptyTrack(g)
	}

	track := m.trackCells(g)
	return strings.Join(track[:first], "") +
		styles.SubtleStyle.Render(strings.Repeat("─", last-first)) +
		strings.Join(track[last:], "")
}

func (m CalendarModel) renderEmptyTrack(g ganttLayout) string {
	return strings.Join(m.trackCells(g), "")
}

// trackCells returns the background cells of a row: month separators and a
// marker on today's column.
func (m CalendarModel) trackCells(g ganttLayout) []string {
	cells := make([]string, g.barCols())
	for i := range cells {
		if i%g.monthW == 0 && g.monthW > 1 {
			cells[i] = styles.SubtleStyle.Render("┊")
		} else {
			cells[i] = " "
		}
	}

	today := m.nav.Today()
	if today.Year() == m.nav.GanttYear() {
		pos, _ := calendar.ComputeBar(plan.Plan{ScheduledDate: today}, today.Year())
		col, _ := calendar.Layout(pos).Columns(g.barCols())
		cells[col] = styles.TodayStyle.Render("│")
	}
	return cells
}

func (m CalendarModel) handleGanttKey(msg tea.KeyMsg) (CalendarModel, tea.Cmd) {
	rows := m.ganttRows()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.ganttRow > 0 {
			m.ganttRow--
		}
		m.ensureGanttRowVisible()
	case key.Matches(msg, m.keys.Down):
		if m.ganttRow < len(rows)-1 {
			m.ganttRow++
		}
		m.ensureGanttRowVisible()
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Toggle):
		if m.ganttRow < len(rows) && rows[m.ganttRow].kind == rowGroup {
			group := rows[m.ganttRow].group.ActionType
			collapse := !key.Matches(msg, m.keys.Right)
			if key.Matches(msg, m.keys.Toggle) {
				collapse = !m.collapsed[group]
			}
			if m.collapsed[group] != collapse {
				m.ToggleGroup(group)
			}
		}
	case key.Matches(msg, m.keys.Select):
		if m.ganttRow < len(rows) {
			return m, m.activateGanttRow(rows[m.ganttRow], m.ganttRow)
		}
	}
	return m, nil
}

// ganttRowRect returns the label area of row i, or false when it is
// scrolled out of view.
func (m CalendarModel) ganttRowRect(g ganttLayout, i int) (calendar.Rect, bool) {
	vi := i - m.ganttOffset
	if vi < 0 || vi >= g.visible {
		return calendar.Rect{}, false
	}
	return calendar.Rect{X: 0, Y: g.top + 1 + vi, Width: g.labelW, Height: 1}, true
}

// activateGanttRow performs the row's click action. Plan popovers anchor on
// the bar when the plan has one.
func (m *CalendarModel) activateGanttRow(row ganttRow, i int) tea.Cmd {
	switch row.kind {
	case rowGroup:
		m.ToggleGroup(row.group.ActionType)
	case rowAdd:
		return m.addAction()
	case rowPlan:
		g := m.ganttLayout()
		anchor, _ := m.ganttRowRect(g, i)
		if start, span, ok := m.barColumns(g, row.plan); ok {
			anchor.X = g.labelW + start
			anchor.Width = span
		}
		return m.openPlan(row.plan, anchor)
	}
	return nil
}

func (m CalendarModel) handleGanttPress(x, y int) (CalendarModel, tea.Cmd) {
	g := m.ganttLayout()
	vi := y - g.top - 1
	if vi < 0 || vi >= g.visible || x < 0 {
		return m, nil
	}
	rows := m.ganttRows()
	i := m.ganttOffset + vi
	if i >= len(rows) {
		return m, nil
	}
	row := rows[i]

	if row.kind == rowPlan && x >= g.labelW {
		start, span, ok := m.barColumns(g, row.plan)
		col := x - g.labelW
		if !ok || col < start || col >= start+span {
			return m, nil
		}
	}
	if row.kind == rowEmpty {
		return m, nil
	}

	m.ganttRow = i
	return m, m.activateGanttRow(row, i)
}
