package calendar

import (
	"time"

	"github.com/colmenar/agenda/internal/plan"
)

// StartOfWeek returns the Monday on or before d.
func StartOfWeek(d plan.Date) plan.Date {
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	return d.AddDays(-offset)
}

// WeekDays returns the seven days of the Monday-first week containing d.
func WeekDays(d plan.Date) []plan.Date {
	start := StartOfWeek(d)
	days := make([]plan.Date, 7)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return days
}

// MonthGrid returns the full Monday-first weeks covering the month, including
// leading and trailing days from adjacent months.
func MonthGrid(year int, month time.Month) [][]plan.Date {
	first := plan.NewDate(year, month, 1)
	last := plan.NewDate(year, month, first.DaysInMonth())

	var weeks [][]plan.Date
	for start := StartOfWeek(first); !start.After(last); start = start.AddDays(7) {
		weeks = append(weeks, WeekDays(start))
	}
	return weeks
}

// InMonth reports whether d belongs to the given month.
func InMonth(d plan.Date, year int, month time.Month) bool {
	return d.Year() == year && d.Month() == month
}
