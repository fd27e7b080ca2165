package components

import (
	"fmt"
	"strings"

	"github.com/colmenar/agenda/internal/plan"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// Progress renders a completion bar like: ■■■■□□□□ 3/6 (50%)
type Progress struct {
	Done  int
	Total int
	Width int // character width of the bar portion
}

// NewProgress creates a new Progress instance.
func NewProgress(done, total, width int) Progress {
	return Progress{
		Done:  done,
		Total: total,
		Width: width,
	}
}

// PlanProgress counts completed plans. Cancelled plans are left out of the
// total.
func PlanProgress(plans []plan.Plan, width int) Progress {
	p := Progress{Width: width}
	for _, pl := range plans {
		switch pl.Status {
		case plan.StatusCancelled:
			continue
		case plan.StatusCompleted:
			p.Done++
		}
		p.Total++
	}
	return p
}

// View returns the rendered progress bar string.
func (p Progress) View() string {
	if p.Total <= 0 || p.Width <= 0 {
		return ""
	}

	done := min(max(p.Done, 0), p.Total)
	percent := (done * 100) / p.Total
	filled := (done * p.Width) / p.Total

	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, p.Width-filled)
	return fmt.Sprintf("%s %d/%d (%d%%)", bar, done, p.Total, percent)
}
