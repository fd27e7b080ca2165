package calendar

import "github.com/colmenar/agenda/internal/plan"

// ScheduleState is how an execution plan relates to the annual planning.
type ScheduleState int

const (
	// StatePlanned is the default: an initial plan, or an execution plan
	// still on its planned date.
	StatePlanned ScheduleState = iota
	// StateUnplanned is an execution plan added without a planning origin.
	StateUnplanned
	// StateRescheduled is a planned execution plan moved off its original date.
	StateRescheduled
)

func (s ScheduleState) String() string {
	switch s {
	case StateUnplanned:
		return "No planificado"
	case StateRescheduled:
		return "Reprogramado"
	default:
		return "Planificado"
	}
}

// IsUnplanned reports whether p was added during execution with no planning
// origin.
func IsUnplanned(p plan.Plan) bool {
	return p.PlanPhase == plan.PhaseExecution && !p.IsFromPlanning
}

// IsRescheduled reports whether p came from planning and its scheduled day
// differs from the day it had when copied into execution.
func IsRescheduled(p plan.Plan) bool {
	if p.PlanPhase != plan.PhaseExecution || !p.IsFromPlanning {
		return false
	}
	if p.OriginalScheduledDate == nil || p.OriginalScheduledDate.IsZero() {
		return false
	}
	return !p.OriginalScheduledDate.Equal(p.ScheduledDate)
}

// Classify returns the plan's schedule state.
func Classify(p plan.Plan) ScheduleState {
	switch {
	case IsUnplanned(p):
		return StateUnplanned
	case IsRescheduled(p):
		return StateRescheduled
	default:
		return StatePlanned
	}
}

// HasExecutionPlans reports whether any plan is in the execution phase.
func HasExecutionPlans(plans []plan.Plan) bool {
	for _, p := range plans {
		if p.PlanPhase == plan.PhaseExecution {
			return true
		}
	}
	return false
}

// ShowIndicators decides whether planning indicators are drawn: when forced,
// or when the plans include any execution-phase plan.
func ShowIndicators(plans []plan.Plan, force bool) bool {
	return force || HasExecutionPlans(plans)
}
