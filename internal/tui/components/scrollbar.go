package components

import "strings"

// RenderScrollbar renders a one-column vertical scrollbar for a view of
// viewHeight rows over contentHeight rows scrolled down by yOffset. When the
// content fits, the column is blank so layouts keep their width.
func RenderScrollbar(viewHeight, contentHeight, yOffset int) string {
	if viewHeight <= 0 {
		return ""
	}

	rows := make([]string, viewHeight)
	if contentHeight <= viewHeight {
		for i := range rows {
			rows[i] = " "
		}
		return strings.Join(rows, "\n")
	}

	thumb := max(1, viewHeight*viewHeight/contentHeight)
	travel := viewHeight - thumb
	top := yOffset * travel / (contentHeight - viewHeight)
	top = min(max(top, 0), travel)

	for i := range rows {
		if i >= top && i < top+thumb {
			rows[i] = "┃"
		} else {
			rows[i] = "│"
		}
	}
	return strings.Join(rows, "\n")
}
