package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colmenar/agenda/internal/calendar"
	"github.com/colmenar/agenda/internal/plan"
	"github.com/colmenar/agenda/internal/tui/components"
	"github.com/colmenar/agenda/internal/tui/msgs"
	"github.com/colmenar/agenda/internal/tui/styles"
)

// DetailModel shows every field of one plan in a scrollable panel.
type DetailModel struct {
	plan     plan.Plan
	labels   calendar.Labeler
	canEdit  bool
	viewport components.ScrollViewport
	back     key.Binding
	edit     key.Binding
	width    int
	height   int
}

// NewDetailModel creates the detail screen for p.
func NewDetailModel(p plan.Plan, labels calendar.Labeler, canEdit bool) DetailModel {
	edit := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar"))
	edit.SetEnabled(canEdit)
	return DetailModel{
		plan:     p,
		labels:   labels,
		canEdit:  canEdit,
		viewport: components.NewScrollViewport(0, 0),
		back:     key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "volver")),
		edit:     edit,
	}
}

// Init implements tea.Model.
func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Plan returns the plan being shown.
func (m DetailModel) Plan() plan.Plan {
	return m.plan
}

// SetSize updates the model dimensions.
func (m *DetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	// Title, blank line and status bar.
	m.viewport.SetSize(width, max(height-3, 1))
	m.viewport.SetContent(m.renderFields(m.viewport.ContentWidth()))
}

// Update implements tea.Model.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.back):
			return m, func() tea.Msg { return msgs.GoToCalendarMsg{} }
		case key.Matches(msg, m.edit):
			p := m.plan
			return m, func() tea.Msg { return msgs.PlanEditMsg{Plan: p} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m DetailModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(clip(m.plan.Title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	items := components.HelpItems([]key.Binding{m.back, m.edit})
	items = append(items, "↑↓ desplazar")
	b.WriteString(components.NewStatusBar().Render(m.width, items))
	return b.String()
}

// renderFields lays out the plan as label/value rows.
func (m DetailModel) renderFields(width int) string {
	p := m.plan
	actionLabel := p.ActionType
	if m.labels != nil {
		actionLabel = m.labels.Label(p.ActionType)
	}

	rows := [][2]string{
		{"Fechas", calendar.FormatRange(p)},
		{"Tipo", actionLabel},
		{"Módulo", p.TargetModule.Label()},
		{"Estado", plan.StatusLabel(p.Status)},
		{"Prioridad", plan.PriorityLabel(p.Priority)},
		{"Fase", phaseLabel(p.PlanPhase)},
		{"Situación", calendar.Classify(p).String()},
	}
	if p.OriginalScheduledDate != nil {
		rows = append(rows, [2]string{"Fecha original", calendar.FormatLong(*p.OriginalScheduledDate)})
	}
	if p.Location != "" {
		rows = append(rows, [2]string{"Lugar", p.Location})
	}
	rows = append(rows, [2]string{"ID", p.ID})

	const labelW = 16
	var lines []string
	for _, r := range rows {
		lines = append(lines, styles.SubtleStyle.Render(padCell(r[0], labelW))+r[1])
	}
	if p.Description != "" {
		lines = append(lines, "", styles.SectionStyle.Render("Descripción"))
		wrap := lipgloss.NewStyle().Width(max(width, 10))
		lines = append(lines, wrap.Render(p.Description))
	}
	return strings.Join(lines, "\n")
}

func phaseLabel(phase plan.Phase) string {
	switch phase {
	case plan.PhaseInitial:
		return "Planificación"
	case plan.PhaseExecution:
		return "Ejecución"
	default:
		return "Sin fase"
	}
}
