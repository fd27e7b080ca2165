package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay draws panel on top of base with its top-left corner at column x,
// row y. Both strings may contain ANSI styling. Rows past the end of base are
// added as needed; cells of base under the panel are replaced.
func Overlay(base, panel string, x, y int) string {
	if panel == "" {
		return base
	}
	if x < 0 {
		x = 0
	}

	lines := strings.Split(base, "\n")
	for i, row := range strings.Split(panel, "\n") {
		at := y + i
		if at < 0 {
			continue
		}
		for at >= len(lines) {
			lines = append(lines, "")
		}
		lines[at] = spliceLine(lines[at], row, x)
	}
	return strings.Join(lines, "\n")
}

func spliceLine(line, row string, x int) string {
	width := ansi.StringWidth(line)
	if width < x {
		line += strings.Repeat(" ", x-width)
		width = x
	}

	var b strings.Builder
	b.WriteString(ansi.Truncate(line, x, ""))
	b.WriteString(ansi.ResetStyle)
	b.WriteString(row)
	b.WriteString(ansi.ResetStyle)

	end := x + ansi.StringWidth(row)
	if width > end {
		b.WriteString(ansi.TruncateLeft(line, end, ""))
	}
	return b.String()
}
