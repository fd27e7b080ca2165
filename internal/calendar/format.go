package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/colmenar/agenda/internal/plan"
)

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// WeekdayHeaders are the Monday-first column headers.
var WeekdayHeaders = [7]string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

// MonthName returns the lowercase Spanish month name.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// MonthTitle returns the capitalized Spanish month name.
func MonthTitle(m time.Month) string {
	name := MonthName(m)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// ShortMonth returns the three-letter capitalized month name ("Ene").
func ShortMonth(m time.Month) string {
	title := MonthTitle(m)
	if len(title) < 3 {
		return title
	}
	return title[:3]
}

// FormatDayMonth formats d as "D de mes".
func FormatDayMonth(d plan.Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d de %s", d.Day(), MonthName(d.Month()))
}

// FormatLong formats d as "D de mes de YYYY".
func FormatLong(d plan.Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s de %d", FormatDayMonth(d), d.Year())
}

// FormatRange formats the plan's interval, collapsing to one date for
// single-day plans.
func FormatRange(p plan.Plan) string {
	start, end := p.ScheduledDate, p.End()
	switch {
	case start.Equal(end):
		return FormatLong(start)
	case start.Year() == end.Year():
		return FormatDayMonth(start) + " – " + FormatLong(end)
	default:
		return FormatLong(start) + " – " + FormatLong(end)
	}
}

// MonthHeading formats a month grid title ("Marzo 2026").
func MonthHeading(year int, m time.Month) string {
	return fmt.Sprintf("%s %d", MonthTitle(m), year)
}

// WeekHeading formats a Monday-first week title.
func WeekHeading(d plan.Date) string {
	days := WeekDays(d)
	first, last := days[0], days[6]
	if first.Month() == last.Month() {
		return fmt.Sprintf("%d – %s", first.Day(), FormatLong(last))
	}
	if first.Year() == last.Year() {
		return FormatDayMonth(first) + " – " + FormatLong(last)
	}
	return FormatLong(first) + " – " + FormatLong(last)
}
