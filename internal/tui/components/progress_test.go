package components

import (
	"testing"

	"github.com/colmenar/agenda/internal/plan"
)

func TestProgress_View(t *testing.T) {
	tests := []struct {
		name  string
		done  int
		total int
		width int
		want  string
	}{
		{"zero percent", 0, 10, 8, "□□□□□□□□ 0/10 (0%)"},
		{"fifty percent", 5, 10, 8, "■■■■□□□□ 5/10 (50%)"},
		{"hundred percent", 10, 10, 8, "■■■■■■■■ 10/10 (100%)"},
		{"done clamped to total", 12, 10, 4, "■■■■ 10/10 (100%)"},
		{"negative done", -1, 4, 4, "□□□□ 0/4 (0%)"},
		{"zero total", 5, 0, 8, ""},
		{"zero width", 5, 10, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewProgress(tt.done, tt.total, tt.width).View(); got != tt.want {
				t.Errorf("View() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlanProgress(t *testing.T) {
	plans := []plan.Plan{
		{ID: "a", Status: plan.StatusCompleted},
		{ID: "b", Status: plan.StatusPending},
		{ID: "c", Status: plan.StatusCancelled},
		{ID: "d", Status: plan.StatusInProgress},
		{ID: "e"},
	}

	p := PlanProgress(plans, 8)
	if p.Done != 1 || p.Total != 4 {
		t.Errorf("expected 1/4, got %d/%d", p.Done, p.Total)
	}
	if got := p.View(); got != "■■□□□□□□ 1/4 (25%)" {
		t.Errorf("View() = %q", got)
	}
}
