package calendar

import (
	"testing"
	"time"

	"github.com/colmenar/agenda/internal/plan"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"2026-03-02", "2026-03-02"}, // Monday
		{"2026-03-04", "2026-03-02"},
		{"2026-03-08", "2026-03-02"}, // Sunday
		{"2026-01-01", "2025-12-29"},
	}
	for _, tt := range tests {
		if got := StartOfWeek(plan.MustParseDate(tt.day)).String(); got != tt.want {
			t.Errorf("StartOfWeek(%s) = %s, want %s", tt.day, got, tt.want)
		}
	}
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(plan.MustParseDate("2026-03-04"))
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Weekday() != time.Monday || days[6].Weekday() != time.Sunday {
		t.Errorf("expected Monday through Sunday, got %v..%v", days[0].Weekday(), days[6].Weekday())
	}
	if days[6].String() != "2026-03-08" {
		t.Errorf("unexpected last day %s", days[6])
	}
}

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantWeeks int
		wantFirst string
		wantLast  string
	}{
		{"march 2026 starts on sunday", 2026, time.March, 6, "2026-02-23", "2026-04-05"},
		{"february 2026", 2026, time.February, 5, "2026-01-26", "2026-03-01"},
		{"february 2021 fits four weeks", 2021, time.February, 4, "2021-02-01", "2021-02-28"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := MonthGrid(tt.year, tt.month)
			if len(grid) != tt.wantWeeks {
				t.Fatalf("expected %d weeks, got %d", tt.wantWeeks, len(grid))
			}
			if got := grid[0][0].String(); got != tt.wantFirst {
				t.Errorf("first cell = %s, want %s", got, tt.wantFirst)
			}
			last := grid[len(grid)-1][6].String()
			if last != tt.wantLast {
				t.Errorf("last cell = %s, want %s", last, tt.wantLast)
			}
			for _, week := range grid {
				if week[0].Weekday() != time.Monday {
					t.Errorf("week starting %s is not Monday-first", week[0])
				}
			}
		})
	}
}

func TestInMonth(t *testing.T) {
	d := plan.MustParseDate("2026-02-28")
	if !InMonth(d, 2026, time.February) {
		t.Error("expected February")
	}
	if InMonth(d, 2025, time.February) || InMonth(d, 2026, time.March) {
		t.Error("unexpected match")
	}
}
