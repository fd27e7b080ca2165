package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// ScrollViewport wraps bubbles/viewport.Model for static documents, adding a
// scrollbar column on the right.
type ScrollViewport struct {
	viewport viewport.Model
	lines    int
	width    int // total width including scrollbar
	height   int
}

// NewScrollViewport creates a viewport of the given size. The width includes
// one column for the scrollbar.
func NewScrollViewport(width, height int) ScrollViewport {
	vp := viewport.New(max(width-1, 0), height)
	return ScrollViewport{viewport: vp, width: width, height: height}
}

// SetSize updates the dimensions, keeping the scroll offset in range.
func (s *ScrollViewport) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.viewport.Width = max(width-1, 0)
	s.viewport.Height = height
	s.viewport.SetYOffset(s.viewport.YOffset)
}

// SetContent replaces the document and scrolls back to the top.
func (s *ScrollViewport) SetContent(content string) {
	s.lines = strings.Count(content, "\n") + 1
	s.viewport.SetContent(content)
	s.viewport.GotoTop()
}

// Update forwards key and mouse wheel events to the viewport.
func (s ScrollViewport) Update(msg tea.Msg) (ScrollViewport, tea.Cmd) {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// View renders the visible rows with the scrollbar column.
func (s ScrollViewport) View() string {
	if s.height <= 0 {
		return ""
	}
	content := strings.Split(s.viewport.View(), "\n")
	bar := strings.Split(RenderScrollbar(s.height, s.lines, s.viewport.YOffset), "\n")
	contentWidth := s.ContentWidth()

	var b strings.Builder
	for i := 0; i < s.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		line := ""
		if i < len(content) {
			line = ansi.Truncate(content[i], contentWidth, "")
		}
		b.WriteString(line)
		if pad := contentWidth - ansi.StringWidth(line); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		if i < len(bar) {
			b.WriteString(bar[i])
		}
	}
	return b.String()
}

// AtTop reports whether the first line is visible.
func (s ScrollViewport) AtTop() bool {
	return s.viewport.AtTop()
}

// AtBottom reports whether the last line is visible.
func (s ScrollViewport) AtBottom() bool {
	return s.viewport.AtBottom()
}

// ContentWidth returns the width available for content.
func (s ScrollViewport) ContentWidth() int {
	return max(s.width-1, 0)
}
