package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colmenar/agenda/internal/calendar"
	"github.com/colmenar/agenda/internal/kv"
	"github.com/colmenar/agenda/internal/plan"
	"github.com/colmenar/agenda/internal/tui/components"
	"github.com/colmenar/agenda/internal/tui/msgs"
	"github.com/colmenar/agenda/internal/tui/styles"
	"github.com/colmenar/agenda/internal/tui/views"
	"github.com/colmenar/agenda/internal/util"
)

// Minimum terminal dimensions for the calendar to be usable. The height fits
// a six-week month of two-row cells plus header, weekday row and status bar.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 16
)

// View represents the different screens in the TUI.
type View int

const (
	ViewCalendar View = iota
	ViewDetail
	ViewForm
)

// PlanStore loads and persists plans.
type PlanStore interface {
	Load() ([]plan.Plan, error)
	Upsert(p plan.Plan) (plan.Plan, error)
}

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	width       int
	height      int

	calendar views.CalendarModel
	detail   views.DetailModel
	form     views.FormModel

	// Shared state
	opts     Options
	store    PlanStore
	labels   *plan.ActionTypeLabeler
	plans    []plan.Plan
	keys     appKeyMap
	help     help.Model
	showHelp bool
	err      error
}

// Run starts the TUI application.
func Run(opts Options) error {
	var types kv.Store = kv.NewMemoryStore()
	if opts.DBFile != "" {
		db, err := kv.OpenSQLite(opts.DBFile)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		types = db
	}

	labels, err := plan.NewActionTypeLabeler(context.Background(), types)
	if err != nil {
		return fmt.Errorf("failed to load action types: %w", err)
	}

	p := tea.NewProgram(
		NewModel(opts, plan.NewStore(opts.PlansFile), labels),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

// NewModel creates the host model. Plans are loaded by Init.
func NewModel(opts Options, store PlanStore, labels *plan.ActionTypeLabeler) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	calOpts := views.CalendarOptions{
		ColorByModule:           opts.ColorByModule,
		DefaultModule:           opts.DefaultModule,
		ForcePlanningIndicators: opts.ForcePlanningIndicators,
		GroupGantt:              opts.GroupGantt,
		Now:                     opts.Now,
	}
	if labels != nil {
		calOpts.Labels = labels
	}

	m := Model{
		currentView: ViewCalendar,
		opts:        opts,
		store:       store,
		labels:      labels,
		keys:        defaultAppKeyMap(),
		help:        help.New(),
	}
	m.calendar = views.NewCalendarModel(calOpts, m.callbacks())
	m.calendar.SetMode(opts.View)
	if opts.Year != 0 && opts.Year != opts.Now().Year() {
		m.calendar.SetCursor(plan.NewDate(opts.Year, time.January, 1))
		m.calendar.SetGanttYear(opts.Year)
	}
	return m
}

// callbacks turns calendar events into host messages.
func (m Model) callbacks() views.Callbacks {
	return views.Callbacks{
		OnDayClick: func(day time.Time) tea.Cmd {
			return func() tea.Msg { return msgs.DayClickedMsg{Date: plan.DateOf(day)} }
		},
		OnPlanClick: func(p plan.Plan) tea.Cmd {
			return func() tea.Msg { return msgs.PlanClickedMsg{Plan: p} }
		},
		OnPlanView: func(p plan.Plan) tea.Cmd {
			return func() tea.Msg { return msgs.PlanViewMsg{Plan: p} }
		},
		OnPlanEdit: func(p plan.Plan) tea.Cmd {
			return func() tea.Msg { return msgs.PlanEditMsg{Plan: p} }
		},
		OnAddAction: func(year int) tea.Cmd {
			return func() tea.Msg { return msgs.AddActionMsg{Year: year} }
		},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loadPlans()
}

func (m Model) loadPlans() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil {
			return msgs.PlansLoadedMsg{Plans: []plan.Plan{}}
		}
		plans, err := store.Load()
		return msgs.PlansLoadedMsg{Plans: plans, Err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.calendar.SetSize(msg.Width, msg.Height)
		switch m.currentView {
		case ViewDetail:
			m.detail.SetSize(msg.Width, msg.Height)
		case ViewForm:
			m.form.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.currentView == ViewCalendar && !m.calendar.PopoverOpen() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.showHelp = true
				return m, nil
			}
		}

	case msgs.PlansLoadedMsg:
		if msg.Err != nil {
			util.Log.WithError(msg.Err).Error("failed to load plans")
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.plans = msg.Plans
		m.calendar.SetPlans(msg.Plans)
		util.Log.WithField("plans", len(msg.Plans)).Debug("plans loaded")
		return m, nil

	case msgs.PlanSavedMsg:
		if msg.Err != nil {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
		util.Log.WithField("plan", msg.Plan.ID).Info("plan saved")
		m.currentView = ViewCalendar
		m.calendar.SetCursor(msg.Plan.ScheduledDate)
		return m, m.loadPlans()

	case msgs.DayClickedMsg:
		util.Log.WithField("date", msg.Date.String()).Debug("day clicked")
		return m.openAddForm(msg.Date)

	case msgs.PlanClickedMsg:
		util.Log.WithField("plan", msg.Plan.ID).Debug("plan clicked")
		return m, nil

	case msgs.PlanViewMsg:
		m.detail = views.NewDetailModel(msg.Plan, m.calendarLabels(), true)
		m.detail.SetSize(m.width, m.height)
		m.currentView = ViewDetail
		return m, nil

	case msgs.PlanEditMsg:
		m.form = views.NewEditFormModel(m.saver(), msg.Plan)
		m.form.SetSize(m.width, m.height)
		m.currentView = ViewForm
		return m, m.form.Init()

	case msgs.AddActionMsg:
		day := plan.NewDate(msg.Year, time.January, 1)
		if today := plan.DateOf(m.opts.Now()); today.Year() == msg.Year {
			day = today
		}
		return m.openAddForm(day)

	case msgs.GoToCalendarMsg:
		m.currentView = ViewCalendar
		return m, nil
	}

	return m.updateCurrent(msg)
}

// updateCurrent forwards msg to the active screen.
func (m Model) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewForm:
		m.form, cmd = m.form.Update(msg)
	default:
		m.calendar, cmd = m.calendar.Update(msg)
	}
	return m, cmd
}

// openAddForm shows the form for a new plan on day. Once the year is in
// execution, new plans are unplanned execution plans.
func (m Model) openAddForm(day plan.Date) (tea.Model, tea.Cmd) {
	phase := plan.PhaseInitial
	if calendar.HasExecutionPlans(m.plans) {
		phase = plan.PhaseExecution
	}
	m.form = views.NewAddFormModel(m.saver(), day, phase)
	if m.opts.DefaultModule != "" {
		m.form.SetValue(views.FieldModule, string(m.opts.DefaultModule))
	}
	m.form.SetSize(m.width, m.height)
	m.currentView = ViewForm
	return m, m.form.Init()
}

func (m Model) saver() views.PlanSaver {
	if m.store == nil {
		return nil
	}
	return m.store
}

func (m Model) calendarLabels() calendar.Labeler {
	if m.labels == nil {
		return nil
	}
	return m.labels
}

// CurrentView returns the active screen.
func (m Model) CurrentView() View {
	return m.currentView
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.err != nil && m.currentView == ViewCalendar {
		return m.renderLoadError()
	}

	switch m.currentView {
	case ViewDetail:
		return m.detail.View()
	case ViewForm:
		return m.form.View()
	default:
		return m.calendar.View()
	}
}

func (m Model) renderTerminalTooSmall() string {
	var b strings.Builder
	b.WriteString(styles.ErrorStyle.Render("Terminal too small"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Minimum: %dx%d\n", MinTerminalWidth, MinTerminalHeight))
	b.WriteString(fmt.Sprintf("Current: %dx%d", m.width, m.height))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true
	keys := helpKeys{calendar: m.calendar.Keys(), app: m.keys}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Atajos de teclado"))
	b.WriteString("\n")
	b.WriteString(h.View(keys))
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Left, lipgloss.Top, b.String())
	return body + "\n" + components.NewStatusBar().Render(m.width, []string{"cualquier tecla Volver"})
}

func (m Model) renderLoadError() string {
	var b strings.Builder
	b.WriteString(styles.ErrorStyle.Render("No se pudieron cargar los planes"))
	b.WriteString("\n\n")
	b.WriteString(styles.SubtleStyle.Render(m.err.Error()))
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, b.String())
	return body + "\n" + components.NewStatusBar().RenderBindings(m.width, []key.Binding{m.keys.Quit})
}
