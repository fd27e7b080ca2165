package calendar

import (
	"testing"
	"time"

	"github.com/colmenar/agenda/internal/plan"
)

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, 10, 0, 0, 0, time.Local) }
}

func TestNavigator_StartsToday(t *testing.T) {
	n := NewNavigator(fixedClock(2026, time.March, 4))
	if n.Mode() != ModeMonth {
		t.Errorf("expected month mode, got %v", n.Mode())
	}
	if !n.Cursor().Equal(plan.MustParseDate("2026-03-04")) {
		t.Errorf("unexpected cursor %v", n.Cursor())
	}
	if n.GanttYear() != 2026 {
		t.Errorf("unexpected gantt year %d", n.GanttYear())
	}
}

func TestNavigator_StepByMode(t *testing.T) {
	tests := []struct {
		name       string
		mode       ViewMode
		dir        int
		wantCursor string
		wantYear   int
	}{
		{"month next clamps day", ModeMonth, 1, "2026-02-28", 2026},
		{"month previous crosses year", ModeMonth, -1, "2025-12-31", 2026},
		{"week next", ModeWeek, 1, "2026-02-07", 2026},
		{"week previous", ModeWeek, -1, "2026-01-24", 2026},
		{"gantt next", ModeGantt, 1, "2026-01-31", 2027},
		{"gantt previous", ModeGantt, -1, "2026-01-31", 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNavigator(fixedClock(2026, time.January, 31))
			n.SetMode(tt.mode)
			if tt.dir > 0 {
				n.GoToNext()
			} else {
				n.GoToPrevious()
			}
			if got := n.Cursor().String(); got != tt.wantCursor {
				t.Errorf("cursor = %s, want %s", got, tt.wantCursor)
			}
			if n.GanttYear() != tt.wantYear {
				t.Errorf("gantt year = %d, want %d", n.GanttYear(), tt.wantYear)
			}
		})
	}
}

func TestNavigator_GoToTodayResetsEverything(t *testing.T) {
	n := NewNavigator(fixedClock(2026, time.June, 15))
	n.SetMode(ModeGantt)
	n.GoToNext()
	n.GoToNext()
	n.SetCursor(plan.MustParseDate("2020-01-01"))

	n.GoToToday()

	if n.Mode() != ModeGantt {
		t.Error("GoToToday should not change the mode")
	}
	if n.GanttYear() != 2026 {
		t.Errorf("expected gantt year reset to 2026, got %d", n.GanttYear())
	}
	if n.Cursor().String() != "2026-06-15" {
		t.Errorf("expected cursor reset to today, got %s", n.Cursor())
	}
}

func TestNavigator_ModeSwitchKeepsPositions(t *testing.T) {
	n := NewNavigator(fixedClock(2026, time.June, 15))
	n.GoToNext()
	n.SetMode(ModeGantt)
	n.GoToPrevious()
	n.SetMode(ModeMonth)

	if n.Cursor().String() != "2026-07-15" {
		t.Errorf("expected month cursor kept, got %s", n.Cursor())
	}
	if n.GanttYear() != 2025 {
		t.Errorf("expected gantt year kept, got %d", n.GanttYear())
	}
}

func TestNavigator_SetCursorIgnoresZero(t *testing.T) {
	n := NewNavigator(fixedClock(2026, time.June, 15))
	n.SetCursor(plan.Date{})
	if n.Cursor().IsZero() {
		t.Error("zero cursor should be ignored")
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"2026-01-31", 1, "2026-02-28"},
		{"2028-01-31", 1, "2028-02-29"},
		{"2026-03-31", -1, "2026-02-28"},
		{"2026-12-15", 1, "2027-01-15"},
		{"2026-01-15", -13, "2024-12-15"},
		{"2026-05-20", 0, "2026-05-20"},
	}
	for _, tt := range tests {
		got := AddMonths(plan.MustParseDate(tt.from), tt.n)
		if got.String() != tt.want {
			t.Errorf("AddMonths(%s, %d) = %s, want %s", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ViewMode
		wantErr bool
	}{
		{"month", ModeMonth, false},
		{"", ModeMonth, false},
		{"Semana", ModeWeek, false},
		{"GANTT", ModeGantt, false},
		{"year", ModeMonth, true},
	}
	for _, tt := range tests {
		got, err := ParseViewMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseViewMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseViewMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
