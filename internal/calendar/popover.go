package calendar

// Rect is an on-screen box; X and Y are its left and top edges.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Size is a width/height pair.
type Size struct {
	Width, Height int
}

// Point is a top-left position.
type Point struct {
	X, Y int
}

// PopoverConfig holds the spacing rules for PlacePopover.
type PopoverConfig struct {
	Gap    int // distance between anchor and panel
	Margin int // minimum distance from the viewport edges
}

var (
	// DefaultPopoverConfig uses pixel units.
	DefaultPopoverConfig = PopoverConfig{Gap: 8, Margin: 16}
	// CellPopoverConfig uses terminal cells.
	CellPopoverConfig = PopoverConfig{Gap: 0, Margin: 1}
)

// PlacePopover positions a panel below the anchor, left-aligned with it.
// It shifts left to respect the right margin, then right to respect the left
// margin, and flips above the anchor when the bottom margin would be crossed.
// The result never has a negative top.
func PlacePopover(anchor Rect, panel Size, viewport Size, cfg PopoverConfig) Point {
	left := anchor.X
	top := anchor.Y + anchor.Height + cfg.Gap

	if left+panel.Width > viewport.Width-cfg.Margin {
		left = viewport.Width - cfg.Margin - panel.Width
	}
	if left < cfg.Margin {
		left = cfg.Margin
	}

	if top+panel.Height > viewport.Height-cfg.Margin {
		top = anchor.Y - panel.Height - cfg.Gap
	}
	if top < 0 {
		top = 0
	}

	return Point{X: left, Y: top}
}
