package plan

import (
	"fmt"

	"github.com/colmenar/agenda/internal/util"
)

// Activate moves the annual plan from planning into execution: every initial
// plan without an execution copy gets one, marked as coming from planning and
// remembering its scheduled date at copy time. Existing plans are kept as is.
// It returns the full list and the number of copies created.
func Activate(plans []Plan) ([]Plan, int, error) {
	copied := make(map[string]bool)
	for _, p := range plans {
		if p.PlanPhase == PhaseExecution && p.SourceID != "" {
			copied[p.SourceID] = true
		}
	}

	out := make([]Plan, len(plans), len(plans)*2)
	copy(out, plans)

	created := 0
	for _, p := range plans {
		if p.PlanPhase != PhaseInitial || copied[p.ID] {
			continue
		}

		id, err := util.GeneratePlanID()
		if err != nil {
			return nil, 0, fmt.Errorf("failed to generate plan id: %w", err)
		}

		original := p.ScheduledDate
		exec := p
		exec.ID = id
		exec.PlanPhase = PhaseExecution
		exec.IsFromPlanning = true
		exec.OriginalScheduledDate = &original
		exec.SourceID = p.ID
		if exec.Status == "" {
			exec.Status = StatusPending
		}
		if p.DueDate != nil {
			due := *p.DueDate
			exec.DueDate = &due
		}

		out = append(out, exec)
		copied[p.ID] = true
		created++
	}

	SortByDate(out)
	return out, created, nil
}

// Reschedule moves an execution plan to a new interval, keeping its original
// scheduled date so the calendar can flag the change. The due date keeps its
// distance from the scheduled date when newDue is nil.
func Reschedule(p Plan, newStart Date, newDue *Date) Plan {
	if p.PlanPhase == PhaseExecution && p.IsFromPlanning && p.OriginalScheduledDate == nil {
		original := p.ScheduledDate
		p.OriginalScheduledDate = &original
	}

	if newDue == nil && p.DueDate != nil {
		span := daysBetween(p.ScheduledDate, *p.DueDate)
		due := newStart.AddDays(span)
		newDue = &due
	}
	p.ScheduledDate = newStart
	p.DueDate = newDue
	return p
}

func daysBetween(a, b Date) int {
	return int(b.t.Sub(a.t).Hours() / 24)
}
