package calendar

import (
	"time"

	"github.com/colmenar/agenda/internal/plan"
)

// Matches reports whether day falls inside the plan's closed interval
// [ScheduledDate, DueDate or ScheduledDate]. Only the calendar day of each
// value is compared. An inverted interval matches no day.
func Matches(p plan.Plan, day time.Time) bool {
	return MatchesDate(p, plan.DateOf(day))
}

// MatchesDate is Matches for an already normalized day.
func MatchesDate(p plan.Plan, day plan.Date) bool {
	if day.IsZero() || p.ScheduledDate.IsZero() {
		return false
	}
	start, end := p.ScheduledDate, p.End()
	if end.Before(start) {
		return false
	}
	return !day.Before(start) && !day.After(end)
}

// PlansOn returns the plans active on day, in input order.
func PlansOn(plans []plan.Plan, day plan.Date) []plan.Plan {
	var out []plan.Plan
	for _, p := range plans {
		if MatchesDate(p, day) {
			out = append(out, p)
		}
	}
	return out
}

// PlansInYear returns the plans whose interval intersects the given year.
func PlansInYear(plans []plan.Plan, year int) []plan.Plan {
	var out []plan.Plan
	for _, p := range plans {
		if _, ok := ComputeBar(p, year); ok {
			out = append(out, p)
		}
	}
	return out
}

// FilterByModule keeps plans whose target module equals module, plus plans
// with no module set. An empty module keeps everything.
func FilterByModule(plans []plan.Plan, module plan.Module) []plan.Plan {
	if module == "" {
		return plans
	}
	out := make([]plan.Plan, 0, len(plans))
	for _, p := range plans {
		if p.TargetModule == "" || p.TargetModule == module {
			out = append(out, p)
		}
	}
	return out
}
