package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colmenar/agenda/internal/plan"
	"github.com/colmenar/agenda/internal/tui/components"
	"github.com/colmenar/agenda/internal/tui/msgs"
	"github.com/colmenar/agenda/internal/tui/styles"
	"github.com/colmenar/agenda/internal/util"
)

// PlanSaver persists a plan and returns the stored version.
type PlanSaver interface {
	Upsert(p plan.Plan) (plan.Plan, error)
}

// Form field indexes.
const (
	FieldTitle = iota
	FieldStart
	FieldDue
	FieldActionType
	FieldModule
	FieldLocation
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Título",
	"Fecha",
	"Vencimiento",
	"Tipo de acción",
	"Módulo",
	"Lugar",
}

// FormModel adds a new plan or edits an existing one.
type FormModel struct {
	plan    plan.Plan
	isNew   bool
	saver   PlanSaver
	inputs  []textinput.Model
	focused int
	err     error
	saving  bool
	width   int
	height  int
}

// NewAddFormModel creates a form for a new plan on day in the given phase.
func NewAddFormModel(saver PlanSaver, day plan.Date, phase plan.Phase) FormModel {
	p := plan.Plan{
		ScheduledDate: day,
		PlanPhase:     phase,
		Status:        plan.StatusPending,
		Priority:      plan.PriorityMedium,
		ActionType:    plan.ActionTypeOther,
	}
	return newFormModel(saver, p, true)
}

// NewEditFormModel creates a form editing p.
func NewEditFormModel(saver PlanSaver, p plan.Plan) FormModel {
	return newFormModel(saver, p, false)
}

func newFormModel(saver PlanSaver, p plan.Plan, isNew bool) FormModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 120
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[FieldStart].Placeholder = "AAAA-MM-DD"
	inputs[FieldDue].Placeholder = "opcional"
	inputs[FieldModule].Placeholder = "apicultura, agricultura, ganaderia, avicultura, general"

	inputs[FieldTitle].SetValue(p.Title)
	inputs[FieldStart].SetValue(p.ScheduledDate.String())
	if p.DueDate != nil {
		inputs[FieldDue].SetValue(p.DueDate.String())
	}
	inputs[FieldActionType].SetValue(p.ActionType)
	inputs[FieldModule].SetValue(string(p.TargetModule))
	inputs[FieldLocation].SetValue(p.Location)
	inputs[FieldTitle].Focus()

	return FormModel{plan: p, isNew: isNew, saver: saver, inputs: inputs}
}

// Init implements tea.Model.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// IsNew reports whether the form creates a plan.
func (m FormModel) IsNew() bool {
	return m.isNew
}

// Err returns the last validation or save error.
func (m FormModel) Err() error {
	return m.err
}

// SetValue sets the text of a field. Used to prefill the form.
func (m *FormModel) SetValue(field int, value string) {
	if field >= 0 && field < len(m.inputs) {
		m.inputs[field].SetValue(value)
	}
}

// SetSize updates the model dimensions.
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.inputs {
		m.inputs[i].Width = max(min(width-24, 60), 10)
	}
}

// Update implements tea.Model.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case msgs.PlanSavedMsg:
		m.saving = false
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return msgs.GoToCalendarMsg{} }
		case "tab", "down":
			m.setFocus(m.focused + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focused - 1)
			return m, nil
		case "enter":
			if m.focused < fieldCount-1 {
				m.setFocus(m.focused + 1)
				return m, nil
			}
			return m.submit()
		case "ctrl+s":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *FormModel) setFocus(i int) {
	i = (i + fieldCount) % fieldCount
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

// submit validates the inputs and returns the save command.
func (m FormModel) submit() (FormModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	p, err := m.Result()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.saving = true

	saver := m.saver
	return m, func() tea.Msg {
		if saver == nil {
			return msgs.PlanSavedMsg{Plan: p, Err: errors.New("no plan store configured")}
		}
		saved, err := saver.Upsert(p)
		if err != nil {
			util.Log.WithError(err).WithField("plan", p.ID).Error("failed to save plan")
		}
		return msgs.PlanSavedMsg{Plan: saved, Err: err}
	}
}

// Result builds the plan described by the inputs. Moving an execution plan
// that came from planning records its original date.
func (m FormModel) Result() (plan.Plan, error) {
	title := strings.TrimSpace(m.inputs[FieldTitle].Value())
	if title == "" {
		return plan.Plan{}, errors.New("el título es obligatorio")
	}

	start, err := plan.ParseDate(m.inputs[FieldStart].Value())
	if err != nil || start.IsZero() {
		return plan.Plan{}, fmt.Errorf("fecha inválida: %q", m.inputs[FieldStart].Value())
	}

	var due *plan.Date
	if raw := strings.TrimSpace(m.inputs[FieldDue].Value()); raw != "" {
		d, err := plan.ParseDate(raw)
		if err != nil {
			return plan.Plan{}, fmt.Errorf("vencimiento inválido: %q", raw)
		}
		if d.Before(start) {
			return plan.Plan{}, errors.New("el vencimiento es anterior a la fecha")
		}
		due = &d
	}

	module, err := plan.ParseModule(m.inputs[FieldModule].Value())
	if err != nil {
		return plan.Plan{}, err
	}

	p := m.plan
	if !m.isNew && !start.Equal(p.ScheduledDate) {
		p = plan.Reschedule(p, start, due)
	}
	p.Title = title
	p.ScheduledDate = start
	p.DueDate = due
	p.ActionType = plan.NormalizeActionType(m.inputs[FieldActionType].Value())
	p.TargetModule = module
	p.Location = strings.TrimSpace(m.inputs[FieldLocation].Value())
	return p, nil
}

// View implements tea.Model.
func (m FormModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	title := "Editar plan"
	if m.isNew {
		title = "Nuevo plan"
	}

	var rows []string
	rows = append(rows, styles.TitleStyle.Render(title), "")
	for i, input := range m.inputs {
		label := padCell(fieldLabels[i], 16)
		if i == m.focused {
			label = styles.SelectedStyle.Render(label)
		} else {
			label = styles.SubtleStyle.Render(label)
		}
		rows = append(rows, label+input.View())
	}
	rows = append(rows, "")
	switch {
	case m.err != nil:
		rows = append(rows, styles.ErrorStyle.Render(m.err.Error()))
	case m.saving:
		rows = append(rows, styles.SuccessStyle.Render("Guardando…"))
	default:
		rows = append(rows, "")
	}

	form := styles.BoxStyle.Render(strings.Join(rows, "\n"))
	body := lipgloss.Place(m.width, max(m.height-1, 0), lipgloss.Center, lipgloss.Center, form)

	items := []string{"tab Siguiente", "enter Continuar", "ctrl+s Guardar", "esc Cancelar"}
	return body + "\n" + components.NewStatusBar().Render(m.width, items)
}
