package views

import (
	"strings"
	"testing"

	"github.com/colmenar/agenda/internal/plan"
	"github.com/colmenar/agenda/internal/tui/msgs"
)

func detailPlan() plan.Plan {
	return plan.Plan{
		ID:                    "p1",
		Title:                 "Cosechar miel",
		Description:           "Retirar alzas del apiario norte.",
		Location:              "Apiario norte",
		ScheduledDate:         date("2026-03-12"),
		DueDate:               datePtr("2026-03-14"),
		ActionType:            "cosecha",
		TargetModule:          plan.ModuleApiculture,
		Status:                plan.StatusPending,
		Priority:              plan.PriorityHigh,
		PlanPhase:             plan.PhaseExecution,
		IsFromPlanning:        true,
		OriginalScheduledDate: datePtr("2026-03-05"),
	}
}

func TestDetailModel_View(t *testing.T) {
	m := NewDetailModel(detailPlan(), nil, true)
	m.SetSize(80, 30)

	view := strings.Join(plainLines(m.View()), "\n")
	for _, want := range []string{
		"Cosechar miel",
		"12 de marzo – 14 de marzo de 2026",
		"Apicultura",
		"Alta",
		"Ejecución",
		"Reprogramado",
		"5 de marzo de 2026",
		"Apiario norte",
		"Retirar alzas",
		"e editar",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected detail view to contain %q", want)
		}
	}
}

func TestDetailModel_Keys(t *testing.T) {
	m := NewDetailModel(detailPlan(), nil, true)
	m.SetSize(80, 30)

	_, cmd := m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("expected a command for esc")
	}
	if _, ok := cmd().(msgs.GoToCalendarMsg); !ok {
		t.Errorf("expected GoToCalendarMsg")
	}

	_, cmd = m.Update(keyMsg("e"))
	if cmd == nil {
		t.Fatal("expected a command for e")
	}
	edit, ok := cmd().(msgs.PlanEditMsg)
	if !ok || edit.Plan.ID != "p1" {
		t.Errorf("expected PlanEditMsg for p1, got %#v", edit)
	}
}

func TestDetailModel_EditDisabled(t *testing.T) {
	m := NewDetailModel(detailPlan(), nil, false)
	m.SetSize(80, 30)

	if _, cmd := m.Update(keyMsg("e")); cmd != nil {
		if _, ok := cmd().(msgs.PlanEditMsg); ok {
			t.Error("edit must be unavailable without an edit handler")
		}
	}
	if strings.Contains(strings.Join(plainLines(m.View()), "\n"), "e editar") {
		t.Error("edit help should be hidden")
	}
}
