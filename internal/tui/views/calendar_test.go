package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/colmenar/agenda/internal/calendar"
	"github.com/colmenar/agenda/internal/plan"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 4, 9, 0, 0, 0, time.Local)
}

func date(s string) plan.Date {
	return plan.MustParseDate(s)
}

func datePtr(s string) *plan.Date {
	d := plan.MustParseDate(s)
	return &d
}

// events records callback invocations.
type events struct {
	days   []time.Time
	clicks []string
	views  []string
	edits  []string
	adds   []int
}

func (e *events) callbacks(withEdit, withAdd bool) Callbacks {
	cb := Callbacks{
		OnDayClick:  func(day time.Time) tea.Cmd { e.days = append(e.days, day); return nil },
		OnPlanClick: func(p plan.Plan) tea.Cmd { e.clicks = append(e.clicks, p.ID); return nil },
		OnPlanView:  func(p plan.Plan) tea.Cmd { e.views = append(e.views, p.ID); return nil },
	}
	if withEdit {
		cb.OnPlanEdit = func(p plan.Plan) tea.Cmd { e.edits = append(e.edits, p.ID); return nil }
	}
	if withAdd {
		cb.OnAddAction = func(year int) tea.Cmd { e.adds = append(e.adds, year); return nil }
	}
	return cb
}

func newTestCalendar(opts CalendarOptions, cb Callbacks, width, height int) CalendarModel {
	opts.Now = fixedNow
	m := NewCalendarModel(opts, cb)
	m.SetSize(width, height)
	return m
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func plainLines(view string) []string {
	return strings.Split(ansi.Strip(view), "\n")
}

func threePlansOnMarch4() []plan.Plan {
	return []plan.Plan{
		{ID: "a", Title: "Revisar colmenas", ScheduledDate: date("2026-03-04"), ActionType: "inspeccion"},
		{ID: "b", Title: "Alimentar", ScheduledDate: date("2026-03-04"), ActionType: "alimentacion"},
		{ID: "c", Title: "Tratar varroa", ScheduledDate: date("2026-03-01"), DueDate: datePtr("2026-03-10"), ActionType: "tratamiento"},
	}
}

// With 140x40 the March 2026 grid has 6 weeks of 6 rows and 20-column cells.
// March 4 sits in week 1, column 2: cell origin (40, 9).
const (
	march4X   = 40
	march4Y   = 9
	gridWidth = 140
	gridH     = 40
)

func TestCalendarModel_MonthOverflow(t *testing.T) {
	m := newTestCalendar(CalendarOptions{}, Callbacks{}, gridWidth, gridH)
	m.SetPlans(threePlansOnMarch4())

	lines := plainLines(m.View())
	if !strings.Contains(lines[0], "Marzo 2026") {
		t.Errorf("expected month heading, got %q", lines[0])
	}
	if !strings.Contains(lines[march4Y+1], "Revisar colmenas") {
		t.Errorf("expected first chip on row %d, got %q", march4Y+1, lines[march4Y+1])
	}
	if !strings.Contains(lines[march4Y+2], "Alimentar") {
		t.Errorf("expected second chip on row %d, got %q", march4Y+2, lines[march4Y+2])
	}
	if !strings.Contains(lines[march4Y+3], "+1 más") {
		t.Errorf("expected overflow line, got %q", lines[march4Y+3])
	}
}

func TestCalendarModel_WeekShowsSixChips(t *testing.T) {
	var plans []plan.Plan
	for i := 0; i < 8; i++ {
		plans = append(plans, plan.Plan{ID: string(rune('a' + i)), Title: "Tarea " + string(rune('A'+i)), ScheduledDate: date("2026-03-04")})
	}
	m := newTestCalendar(CalendarOptions{}, Callbacks{}, gridWidth, gridH)
	m.SetPlans(plans)
	m.SetMode(calendar.ModeWeek)

	view := ansi.Strip(m.View())
	for _, title := range []string{"Tarea A", "Tarea F"} {
		if !strings.Contains(view, title) {
			t.Errorf("expected %q in week view", title)
		}
	}
	if strings.Contains(view, "Tarea G") {
		t.Error("expected seventh plan to be collapsed")
	}
	if !strings.Contains(view, "+2 más") {
		t.Error("expected '+2 más' overflow")
	}
	if !strings.Contains(view, "2 – 8 de marzo de 2026") {
		t.Error("expected week heading")
	}
}

func TestCalendarModel_ChipPressIsPlanClickOnly(t *testing.T) {
	var ev events
	m := newTestCalendar(CalendarOptions{}, ev.callbacks(true, false), gridWidth, gridH)
	m.SetPlans(threePlansOnMarch4())

	m, _ = m.Update(press(march4X+3, march4Y+1))

	if len(ev.clicks) != 1 || ev.clicks[0] != "a" {
		t.Fatalf("expected plan click on 'a', got %v", ev.clicks)
	}
	if len(ev.days) != 0 {
		t.Errorf("chip press must not reach the day, got day clicks %v", ev.days)
	}
	if !m.PopoverOpen() || m.Popover().Plan().ID != "a" {
		t.Fatal("expected popover for plan 'a'")
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "[v] Ver detalles") || !strings.Contains(view, "[e] Editar") {
		t.Error("expected popover actions in view")
	}
}

func TestCalendarModel_EmptyAreaPressIsDayClick(t *testing.T) {
	var ev events
	m := newTestCalendar(CalendarOptions{}, ev.callbacks(false, false), gridWidth, gridH)
	m.SetPlans(threePlansOnMarch4())

	// Overflow line and blank rows belong to the day.
	m, _ = m.Update(press(march4X+3, march4Y+3))
	m, _ = m.Update(press(march4X+3, march4Y+5))
	// March 12 has no plans at all.
	m, _ = m.Update(press(60+3, march4Y+6+2))

	if len(ev.clicks) != 0 {
		t.Errorf("expected no plan clicks, got %v", ev.clicks)
	}
	if len(ev.days) != 3 {
		t.Fatalf("expected 3 day clicks, got %d", len(ev.days))
	}
	if !plan.DateOf(ev.days[0]).Equal(date("2026-03-04")) || !plan.DateOf(ev.days[2]).Equal(date("2026-03-12")) {
		t.Errorf("unexpected days %v", ev.days)
	}
	if !m.Cursor().Equal(date("2026-03-12")) {
		t.Errorf("expected cursor to follow the clicked day, got %s", m.Cursor())
	}
}

func TestCalendarModel_OutsideDayKeepsMonth(t *testing.T) {
	var ev events
	m := newTestCalendar(CalendarOptions{}, ev.callbacks(false, false), gridWidth, gridH)

	// Week 0, Monday: February 23.
	m, _ = m.Update(press(2, 3+2))

	if len(ev.days) != 1 || !plan.DateOf(ev.days[0]).Equal(date("2026-02-23")) {
		t.Fatalf("expected click on February 23, got %v", ev.days)
	}
	if m.Cursor().Month() != time.March {
		t.Errorf("expected to stay in March, got %s", m.Cursor())
	}
}

func TestCalendarModel_KeyboardFocusAndEnter(t *testing.T) {
	var ev events
	m := newTestCalendar(CalendarOptions{}, ev.callbacks(false, false), gridWidth, gridH)
	m.SetPlans(threePlansOnMarch4())

	m, _ = m.Update(keyMsg("enter"))
	if len(ev.days) != 1 {
		t.Fatalf("expected enter on the day to be a day click, got %v", ev.days)
	}

	m, _ = m.Update(keyMsg("tab"))
	m, _ = m.Update(keyMsg("tab"))
	if m.Focus() != 1 {
		t.Fatalf("expected focus on second chip, got %d", m.Focus())
	}
	m, _ = m.Update(keyMsg("enter"))
	if len(ev.clicks) != 1 || ev.clicks[0] != "b" {
		t.Errorf("expected plan click on 'b', got %v", ev.clicks)
	}
	if !m.PopoverOpen() {
		t.Error("expected popover after enter on a chip")
	}

	m, _ = m.Update(keyMsg("esc"))
	if m.PopoverOpen() {
		t.Error("expected esc to close the popover")
	}

	// Wraps back to the day after the last visible chip.
	m, _ = m.Update(keyMsg("tab"))
	if m.Focus() != -1 {
		t.Errorf("expected focus to wrap to the day, got %d", m.Focus())
	}
}

func TestCalendarModel_ArrowKeysMoveDay(t *testing.T) {
	m := newTestCalendar(CalendarOptions{}, Callbacks{}, gridWidth, gridH)

	m, _ = m.Update(keyMsg("right"))
	m, _ = m.Update(keyMsg("down"))
	if !m.Cursor().Equal(date("2026-03-12")) {
		t.Errorf("expected March 12, got %s", m.Cursor())
	}
	m, _ = m.Update(keyMsg("k"))
	m, _ = m.Update(keyMsg("h"))
	if !m.Cursor().Equal(date("2026-03-04")) {
		t.Errorf("expected March 4, got %s", m.Cursor())
	}
}

func TestCalendarModel_PopoverActions(t *testing.T) {
	t.Run("view via key", func(t *testing.T) {
		var ev events
		m := newTestCalendar(CalendarOptions{}, ev.callbacks(true, false), gridWidth, gridH)
		m.SetPlans(threePlansOnMarch4())
		m, _ = m.Update(press(march4X+3, march4Y+1))

		m, _ = m.Update(keyMsg("v"))
		if len(ev.views) != 1 || ev.views[0] != "a" {
			t.Errorf("expected view of 'a', got %v", ev.views)
		}
		if m.PopoverOpen() {
			t.Error("expected popover closed after view")
		}
	})

	t.Run("edit via press on action row", func(t *testing.T) {
		var ev events
		m := newTestCalendar(CalendarOptions{}, ev.callbacks(true, false), gridWidth, gridH)
		m.SetPlans(threePlansOnMarch4())
		m, _ = m.Update(press(march4X+3, march4Y+1))

		pop := m.Popover()
		editRow := -1
		for row, action := range pop.actions {
			if action == actionEdit {
				editRow = row
			}
		}
		if editRow < 0 {
			t.Fatal("expected an edit action row")
		}
		m, _ = m.Update(press(pop.Position().X+2, pop.Position().Y+editRow))
		if len(ev.edits) != 1 || ev.edits[0] != "a" {
			t.Errorf("expected edit of 'a', got %v", ev.edits)
		}
	})

	t.Run("edit hidden without callback", func(t *testing.T) {
		var ev events
		m := newTestCalendar(CalendarOptions{}, ev.callbacks(false, false), gridWidth, gridH)
		m.SetPlans(threePlansOnMarch4())
		m, _ = m.Update(press(march4X+3, march4Y+1))

		if strings.Contains(ansi.Strip(m.View()), "[e] Editar") {
			t.Error("expected no edit action")
		}
		m, _ = m.Update(keyMsg("e"))
		if len(ev.edits) != 0 {
			t.Error("expected no edit event")
		}
	})

	t.Run("press outside dismisses", func(t *testing.T) {
		var ev events
		m := newTestCalendar(CalendarOptions{}, ev.callbacks(true, false), gridWidth, gridH)
		m.SetPlans(threePlansOnMarch4())
		m, _ = m.Update(press(march4X+3, march4Y+1))

		m, _ = m.Update(press(gridWidth-1, gridH-2))
		if m.PopoverOpen() {
			t.Error("expected outside press to close the popover")
		}
		if len(ev.days) != 0 {
			t.Error("dismissing press must not click the day underneath")
		}
	})

	t.Run("stays inside the viewport", func(t *testing.T) {
		m := newTestCalendar(CalendarOptions{}, Callbacks{}, gridWidth, gridH)
		m.SetPlans([]plan.Plan{{ID: "z", Title: "Cosecha de miel", ScheduledDate: date("2026-04-05")}})
		// April 5 is the last cell of the last March row: week 5, Sunday.
		m, _ = m.Update(press(6*20+3, 3+5*6+1))
		if !m.PopoverOpen() {
			t.Fatal("expected popover")
		}
		r := m.Popover().Rect()
		if r.X+r.Width > gridWidth || r.Y < 0 || r.Y+r.Height > gridH {
			t.Errorf("popover %+v escapes %dx%d", r, gridWidth, gridH)
		}
	})
}

func TestCalendarModel_ModeKeysKeepPositions(t *testing.T) {
	m := newTestCalendar(CalendarOptions{}, Callbacks{}, gridWidth, gridH)

	m, _ = m.Update(keyMsg("n"))
	if !m.Cursor().Equal(date("2026-04-04")) {
		t.Fatalf("expected April 4, got %s", m.Cursor())
	}
	m, _ = m.Update(keyMsg("g"))
	m, _ = m.Update(keyMsg("p"))
	if m.GanttYear() != 2025 {
		t.Errorf("expected gantt year 2025, got %d", m.GanttYear())
	}
	m, _ = m.Update(keyMsg("m"))
	if m.Mode() != calendar.ModeMonth || !m.Cursor().Equal(date("2026-04-04")) {
		t.Errorf("expected month mode on April 4, got %v %s", m.Mode(), m.Cursor())
	}
	m, _ = m.Update(keyMsg("w"))
	m, _ = m.Update(keyMsg("n"))
	if !m.Cursor().Equal(date("2026-04-11")) {
		t.Errorf("expected next week, got %s", m.Cursor())
	}
	m, _ = m.Update(keyMsg("t"))
	if !m.Cursor().Equal(date("2026-03-04")) || m.GanttYear() != 2026 {
		t.Errorf("expected today reset, got %s / %d", m.Cursor(), m.GanttYear())
	}
}

func TestCalendarModel_TabPress(t *testing.T) {
	m := newTestCalendar(CalendarOptions{}, Callbacks{}, gridWidth, gridH)
	line := plainLines(m.View())[0]
	x := strings.Index(line, "Gantt")
	if x < 0 {
		t.Fatalf("expected Gantt tab in %q", line)
	}
	m, _ = m.Update(press(x, 0))
	if m.Mode() != calendar.ModeGantt {
		t.Errorf("expected gantt mode, got %v", m.Mode())
	}
}

func TestCalendarModel_ModuleFilter(t *testing.T) {
	m := newTestCalendar(CalendarOptions{DefaultModule: plan.ModuleApiculture}, Callbacks{}, gridWidth, gridH)
	m.SetPlans([]plan.Plan{
		{ID: "bee", Title: "Colmenas", ScheduledDate: date("2026-03-04"), TargetModule: plan.ModuleApiculture},
		{ID: "crop", Title: "Maizal", ScheduledDate: date("2026-03-04"), TargetModule: plan.ModuleAgriculture},
		{ID: "any", Title: "Cercado", ScheduledDate: date("2026-03-05")},
	})

	if len(m.Plans()) != 2 {
		t.Fatalf("expected 2 plans after filter, got %d", len(m.Plans()))
	}
	view := ansi.Strip(m.View())
	if strings.Contains(view, "Maizal") {
		t.Error("expected agriculture plan to be filtered out")
	}
	if !strings.Contains(view, "Colmenas") || !strings.Contains(view, "Cercado") {
		t.Error("expected apiculture and module-less plans")
	}
}

func TestCalendarModel_Indicators(t *testing.T) {
	rescheduled := plan.Plan{
		ID: "r", Title: "Movida", ScheduledDate: date("2026-03-04"),
		PlanPhase: plan.PhaseExecution, IsFromPlanning: true, OriginalScheduledDate: datePtr("2026-03-02"),
	}
	unplanned := plan.Plan{ID: "u", Title: "Extra", ScheduledDate: date("2026-03-05"), PlanPhase: plan.PhaseExecution}
	initial := plan.Plan{ID: "i", Title: "Inicial", ScheduledDate: date("2026-03-06"), PlanPhase: plan.PhaseInitial}

	t.Run("shown with execution plans", func(t *testing.T) {
		m := newTestCalendar(CalendarOptions{}, Callbacks{}, gridWidth, gridH)
		m.SetPlans([]plan.Plan{rescheduled, unplanned, initial})
		view := ansi.Strip(m.View())
		if !strings.Contains(view, glyphRescheduled+" Movida") {
			t.Error("expected rescheduled glyph")
		}
		if !strings.Contains(view, glyphUnplanned+" Extra") {
			t.Error("expected unplanned glyph")
		}
		if strings.Contains(view, glyphUnplanned+" Inicial") || strings.Contains(view, glyphRescheduled+" Inicial") {
			t.Error("initial plan must not be flagged")
		}

		m, _ = m.Update(press(march4X+3, march4Y+1))
		if !strings.Contains(ansi.Strip(m.View()), "Original: 2 de marzo") {
			t.Error("expected original date caption in popover")
		}
	})

	t.Run("hidden for planning only", func(t *testing.T) {
		m := newTestCalendar(CalendarOptions{}, Callbacks{}, gridWidth, gridH)
		m.SetPlans([]plan.Plan{initial})
		if strings.Contains(ansi.Strip(m.View()), glyphUnplanned) {
			t.Error("expected no indicators")
		}
	})

	t.Run("forced", func(t *testing.T) {
		m := newTestCalendar(CalendarOptions{ForcePlanningIndicators: true}, Callbacks{}, gridWidth, gridH)
		m.SetPlans([]plan.Plan{initial})
		if !m.indicators {
			t.Error("expected forced indicators")
		}
	})
}

func TestCalendarModel_ZeroSize(t *testing.T) {
	m := NewCalendarModel(CalendarOptions{Now: fixedNow}, Callbacks{})
	if m.View() != "" {
		t.Error("expected empty view before the first size")
	}
}
