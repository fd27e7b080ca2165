package calendar

import (
	"math"
	"time"

	"github.com/colmenar/agenda/internal/plan"
)

// MinBarWidthPct is the narrowest a Gantt bar is drawn, as a percentage of the
// full year row, so zero-length bars stay selectable.
const MinBarWidthPct = 0.5

const monthPct = 100.0 / 12

// BarPosition is a plan's span across a 12-month row. Offsets are percentages
// within their month.
type BarPosition struct {
	StartMonth  int // 0-11
	StartOffset float64
	EndMonth    int // 0-11
	EndOffset   float64
	TotalSpan   int // months touched
}

// ComputeBar clamps the plan's interval to the given year and returns its bar
// position. ok is false when the plan does not intersect the year or its
// interval is inverted.
func ComputeBar(p plan.Plan, year int) (pos BarPosition, ok bool) {
	if p.ScheduledDate.IsZero() {
		return BarPosition{}, false
	}
	yearStart := plan.NewDate(year, time.January, 1)
	yearEnd := plan.NewDate(year, time.December, 31)

	start, end := p.ScheduledDate, p.End()
	if start.Before(yearStart) {
		start = yearStart
	}
	if end.After(yearEnd) {
		end = yearEnd
	}
	if start.After(end) {
		return BarPosition{}, false
	}

	startMonth := int(start.Month()) - 1
	endMonth := int(end.Month()) - 1
	return BarPosition{
		StartMonth:  startMonth,
		StartOffset: float64(start.Day()-1) / float64(start.DaysInMonth()) * 100,
		EndMonth:    endMonth,
		EndOffset:   float64(end.Day()) / float64(end.DaysInMonth()) * 100,
		TotalSpan:   endMonth - startMonth + 1,
	}, true
}

// BarLayout is a bar's horizontal placement as percentages of the year row.
type BarLayout struct {
	LeftPct  float64
	WidthPct float64
}

// Layout converts a bar position into left/width percentages over 12 equal
// month columns, enforcing MinBarWidthPct.
func Layout(pos BarPosition) BarLayout {
	left := float64(pos.StartMonth)*monthPct + pos.StartOffset/100*monthPct

	var width float64
	if pos.StartMonth == pos.EndMonth {
		width = (pos.EndOffset - pos.StartOffset) / 100 * monthPct
	} else {
		firstMonth := (100 - pos.StartOffset) / 100 * monthPct
		middle := float64(pos.EndMonth-pos.StartMonth-1) * monthPct
		lastMonth := pos.EndOffset / 100 * monthPct
		width = firstMonth + middle + lastMonth
	}

	if width < MinBarWidthPct {
		width = MinBarWidthPct
	}
	if left+width > 100 {
		width = 100 - left
	}
	return BarLayout{LeftPct: left, WidthPct: width}
}

// Columns maps the layout onto a row of cols cells, returning the first cell
// and the number of cells covered. At least one cell is always covered.
func (l BarLayout) Columns(cols int) (start, span int) {
	if cols <= 0 {
		return 0, 0
	}
	start = int(math.Floor(l.LeftPct / 100 * float64(cols)))
	end := int(math.Ceil((l.LeftPct + l.WidthPct) / 100 * float64(cols)))
	if start >= cols {
		start = cols - 1
	}
	if end > cols {
		end = cols
	}
	span = end - start
	if span < 1 {
		span = 1
	}
	return start, span
}
