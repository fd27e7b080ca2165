package views

import (
	"context"
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
	"github.com/colmenar/agenda/internal/util"
)

const (
	glyphUnplanned   = "◌"
	glyphRescheduled = "⏱"

	// Rows above the body: tabs/title line and a blank line.
	calendarHeaderHeight = 2
	calendarStatusHeight = 1
)

// CalendarOptions configures the calendar view.
type CalendarOptions struct {
	// ColorByModule colors plans by their target module instead of one
	// neutral color.
	ColorByModule bool
	// DefaultModule restricts the calendar to one module. Plans without a
	// module are always shown.
	DefaultModule plan.Module
	// ForcePlanningIndicators shows unplanned/rescheduled markers even when no
	// plan is in execution.
	ForcePlanningIndicators bool
	// GroupGantt groups Gantt rows by action type.
	GroupGantt bool
	// Labels resolves action type labels. Nil uses the builtin table.
	Labels calendar.Labeler
	// Now is the clock used for "today". Nil uses time.Now.
	Now func() time.Time
}

// Callbacks are the calendar's outbound events. Each returns the command the
// host wants run. A nil OnPlanEdit hides editing and a nil OnAddAction hides
// the add row.
type Callbacks struct {
	OnDayClick  func(day time.Time) tea.Cmd
	OnPlanClick func(p plan.Plan) tea.Cmd
	OnPlanView  func(p plan.Plan) tea.Cmd
	OnPlanEdit  func(p plan.Plan) tea.Cmd
	OnAddAction func(year int) tea.Cmd
}

// CalendarModel renders plans in Month, Week or Gantt mode and turns clicks
// and keys into Callbacks events.
type CalendarModel struct {
	opts      CalendarOptions
	callbacks Callbacks
	keys      CalendarKeyMap

	nav        calendar.Navigator
	plans      []plan.Plan // snapshot after the module filter
	indicators bool
	collapsed  map[string]bool

	focus       int // chip index within the selected day, -1 for the day itself
	ganttRow    int
	ganttOffset int
	popover     Popover

	width  int
	height int
}

// NewCalendarModel creates a calendar positioned on today's month.
func NewCalendarModel(opts CalendarOptions, callbacks Callbacks) CalendarModel {
	if opts.Labels == nil {
		builtin, _ := plan.NewActionTypeLabeler(context.Background(), nil)
		opts.Labels = builtin
	}

	keys := DefaultCalendarKeyMap()
	keys.Edit.SetEnabled(callbacks.OnPlanEdit != nil)
	keys.Add.SetEnabled(callbacks.OnAddAction != nil)

	return CalendarModel{
		opts:      opts,
		callbacks: callbacks,
		keys:      keys,
		nav:       calendar.NewNavigator(opts.Now),
		collapsed: make(map[string]bool),
		focus:     -1,
		plans:     []plan.Plan{},
	}
}

// Init implements tea.Model.
func (m CalendarModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the model dimensions.
func (m *CalendarModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.popover = m.popover.Close()
	m.ensureGanttRowVisible()
}

// SetPlans replaces the plan snapshot. The module filter is applied here so
// every projection sees the same plans.
func (m *CalendarModel) SetPlans(plans []plan.Plan) {
	filtered := calendar.FilterByModule(plans, m.opts.DefaultModule)
	m.plans = make([]plan.Plan, len(filtered))
	copy(m.plans, filtered)
	m.indicators = calendar.ShowIndicators(m.plans, m.opts.ForcePlanningIndicators)
	m.focus = -1
	m.popover = m.popover.Close()
	m.clampGanttRow()
	util.Log.WithField("plans", len(m.plans)).Debug("calendar snapshot updated")
}

// Plans returns the filtered snapshot.
func (m CalendarModel) Plans() []plan.Plan {
	return m.plans
}

// Mode returns the active projection.
func (m CalendarModel) Mode() calendar.ViewMode {
	return m.nav.Mode()
}

// SetMode switches projection. Each mode keeps its own position.
func (m *CalendarModel) SetMode(mode calendar.ViewMode) {
	m.nav.SetMode(mode)
	m.focus = -1
	m.popover = m.popover.Close()
}

// Cursor returns the selected day of the month and week views.
func (m CalendarModel) Cursor() plan.Date {
	return m.nav.Cursor()
}

// SetCursor selects a day in the month and week views.
func (m *CalendarModel) SetCursor(d plan.Date) {
	m.nav.SetCursor(d)
	m.focus = -1
}

// GanttYear returns the year shown by the Gantt view.
func (m CalendarModel) GanttYear() int {
	return m.nav.GanttYear()
}

// SetGanttYear moves the Gantt view to year.
func (m *CalendarModel) SetGanttYear(year int) {
	m.nav.SetGanttYear(year)
	m.ganttRow, m.ganttOffset = 0, 0
}

// GoToToday resets the day cursor and the Gantt year to today.
func (m *CalendarModel) GoToToday() {
	m.nav.GoToToday()
	m.afterMove()
}

// GoToPrevious steps back one month, week or year.
func (m *CalendarModel) GoToPrevious() {
	m.nav.GoToPrevious()
	m.afterMove()
}

// GoToNext steps forward one month, week or year.
func (m *CalendarModel) GoToNext() {
	m.nav.GoToNext()
	m.afterMove()
}

func (m *CalendarModel) afterMove() {
	m.focus = -1
	m.popover = m.popover.Close()
	m.ganttRow, m.ganttOffset = 0, 0
}

// ToggleGroup collapses or expands a Gantt group.
func (m *CalendarModel) ToggleGroup(actionType string) {
	key := plan.NormalizeActionType(actionType)
	m.collapsed[key] = !m.collapsed[key]
	m.clampGanttRow()
}

// IsCollapsed reports whether a Gantt group is collapsed.
func (m CalendarModel) IsCollapsed(actionType string) bool {
	return m.collapsed[plan.NormalizeActionType(actionType)]
}

// PopoverOpen reports whether a plan popover is showing.
func (m CalendarModel) PopoverOpen() bool {
	return m.popover.IsOpen()
}

// Popover returns the current popover state.
func (m CalendarModel) Popover() Popover {
	return m.popover
}

// Keys returns the active key bindings.
func (m CalendarModel) Keys() CalendarKeyMap {
	return m.keys
}

// Focus returns the focused chip index within the selected day, or -1.
func (m CalendarModel) Focus() int {
	return m.focus
}

// Update implements tea.Model.
func (m CalendarModel) Update(msg tea.Msg) (CalendarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if m.popover.IsOpen() {
			if handled, cmd := m.handlePopoverKey(msg); handled {
				return m, cmd
			}
			m.popover = m.popover.Close()
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// handlePopoverKey handles keys bound to the open popover. Other keys close
// it and are processed normally.
func (m *CalendarModel) handlePopoverKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.popover = m.popover.Close()
		return true, nil
	case key.Matches(msg, m.keys.View), key.Matches(msg, m.keys.Select):
		return true, m.runPopoverAction(actionView)
	case key.Matches(msg, m.keys.Edit):
		return true, m.runPopoverAction(actionEdit)
	}
	return false, nil
}

func (m *CalendarModel) runPopoverAction(action popoverAction) tea.Cmd {
	p := m.popover.Plan()
	switch action {
	case actionView:
		m.popover = m.popover.Close()
		if m.callbacks.OnPlanView != nil {
			return m.callbacks.OnPlanView(p)
		}
	case actionEdit:
		if m.callbacks.OnPlanEdit == nil {
			return nil
		}
		m.popover = m.popover.Close()
		return m.callbacks.OnPlanEdit(p)
	}
	return nil
}

func (m CalendarModel) handleKey(msg tea.KeyMsg) (CalendarModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Month):
		m.SetMode(calendar.ModeMonth)
	case key.Matches(msg, m.keys.Week):
		m.SetMode(calendar.ModeWeek)
	case key.Matches(msg, m.keys.Gantt):
		m.SetMode(calendar.ModeGantt)
	case key.Matches(msg, m.keys.Today):
		m.GoToToday()
	case key.Matches(msg, m.keys.Prev):
		m.GoToPrevious()
	case key.Matches(msg, m.keys.Next):
		m.GoToNext()
	case key.Matches(msg, m.keys.Add):
		return m, m.addAction()
	default:
		if m.nav.Mode() == calendar.ModeGantt {
			return m.handleGanttKey(msg)
		}
		return m.handleGridKey(msg)
	}
	return m, nil
}

func (m *CalendarModel) addAction() tea.Cmd {
	if m.callbacks.OnAddAction == nil {
		return nil
	}
	year := m.nav.Cursor().Year()
	if m.nav.Mode() == calendar.ModeGantt {
		year = m.nav.GanttYear()
	}
	return m.callbacks.OnAddAction(year)
}

// openPlan emits the plan-click event and opens the popover at anchor.
func (m *CalendarModel) openPlan(p plan.Plan, anchor calendar.Rect) tea.Cmd {
	util.Log.WithField("plan", p.ID).Debug("plan clicked")

	var cmd tea.Cmd
	if m.callbacks.OnPlanClick != nil {
		cmd = m.callbacks.OnPlanClick(p)
	}

	panel, actions := renderPopoverPanel(popoverContent{
		plan:          p,
		actionLabel:   m.opts.Labels.Label(p.ActionType),
		colorByModule: m.opts.ColorByModule,
		indicators:    m.indicators,
		canEdit:       m.callbacks.OnPlanEdit != nil,
	})
	m.popover = m.popover.Open(p, anchor, panel, actions, calendar.Size{Width: m.width, Height: m.height})
	return cmd
}

// clickDay emits the day-click event.
func (m *CalendarModel) clickDay(day plan.Date) tea.Cmd {
	util.Log.WithField("day", day.String()).Debug("day clicked")
	if m.callbacks.OnDayClick == nil {
		return nil
	}
	return m.callbacks.OnDayClick(day.Time(time.Local))
}

func (m CalendarModel) handleMouse(msg tea.MouseMsg) (CalendarModel, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.nav.Mode() == calendar.ModeGantt {
			m.scrollGantt(-1)
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if m.nav.Mode() == calendar.ModeGantt {
			m.scrollGantt(1)
		}
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	if m.popover.IsOpen() {
		if action := m.popover.ActionAt(msg.X, msg.Y); action != actionNone {
			return m, m.runPopoverAction(action)
		}
		if m.popover.Rect().Contains(msg.X, msg.Y) {
			return m, nil
		}
		if m.popover.Dismisses(msg.X, msg.Y) {
			m.popover = m.popover.Close()
			return m, nil
		}
	}

	if mode, ok := m.tabAt(msg.X, msg.Y); ok {
		m.SetMode(mode)
		return m, nil
	}

	if m.nav.Mode() == calendar.ModeGantt {
		return m.handleGanttPress(msg.X, msg.Y)
	}
	return m.handleGridPress(msg.X, msg.Y)
}

// View implements tea.Model.
func (m CalendarModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var body string
	var help []key.Binding
	if m.nav.Mode() == calendar.ModeGantt {
		body = m.renderGantt()
		help = m.keys.GanttHelp()
	} else {
		body = m.renderGrid()
		help = m.keys.ShortHelp()
	}
	if m.popover.IsOpen() {
		help = m.keys.PopoverHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(fitLines(body, m.bodyHeight()))
	b.WriteString("\n")
	b.WriteString(components.NewStatusBar().RenderBindings(m.width, help))

	view := b.String()
	if m.popover.IsOpen() {
		pos := m.popover.Position()
		view = components.Overlay(view, m.popover.Panel(), pos.X, pos.Y)
	}
	return view
}

func (m CalendarModel) bodyHeight() int {
	return max(m.height-calendarHeaderHeight-calendarStatusHeight, 0)
}

var tabModes = []calendar.ViewMode{calendar.ModeMonth, calendar.ModeWeek, calendar.ModeGantt}

// renderTabs returns the rendered mode tabs.
func (m CalendarModel) renderTabs() []string {
	tabs := make([]string, len(tabModes))
	for i, mode := range tabModes {
		if mode == m.nav.Mode() {
			tabs[i] = styles.ActiveTabStyle.Render(mode.Label())
		} else {
			tabs[i] = styles.TabStyle.Render(mode.Label())
		}
	}
	return tabs
}

// tabAt returns the mode tab under (x, y).
func (m CalendarModel) tabAt(x, y int) (calendar.ViewMode, bool) {
	if y != 0 {
		return 0, false
	}
	left := 0
	for i, tab := range m.renderTabs() {
		w := lipgloss.Width(tab)
		if x >= left && x < left+w {
			return tabModes[i], true
		}
		left += w
	}
	return 0, false
}

func (m CalendarModel) renderHeader() string {
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, m.renderTabs()...)

	var title string
	switch m.nav.Mode() {
	case calendar.ModeWeek:
		title = calendar.WeekHeading(m.nav.Cursor())
	case calendar.ModeGantt:
		year := m.nav.GanttYear()
		title = strconv.Itoa(year)
		if bar := components.PlanProgress(calendar.PlansInYear(m.plans, year), 10).View(); bar != "" {
			return clip(tabs+"  "+styles.TitleStyle.Render(title)+"  "+styles.SubtleStyle.Render(bar), m.width)
		}
	default:
		title = calendar.MonthHeading(m.nav.Cursor().Year(), m.nav.Cursor().Month())
	}

	header := tabs + "  " + styles.TitleStyle.Render(title)
	return clip(header, m.width)
}

// fitLines pads or cuts s to exactly height lines.
func fitLines(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// padCell truncates or pads s to exactly width cells.
func padCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = clip(s, width)
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
