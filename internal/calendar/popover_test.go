package calendar

import "testing"

func TestPlacePopover(t *testing.T) {
	viewport := Size{Width: 1000, Height: 800}
	panel := Size{Width: 300, Height: 200}

	tests := []struct {
		name   string
		anchor Rect
		panel  Size
		want   Point
	}{
		{"below and left aligned", Rect{X: 100, Y: 100, Width: 50, Height: 20}, panel, Point{X: 100, Y: 128}},
		{"shifted left at right edge", Rect{X: 900, Y: 100, Width: 50, Height: 20}, panel, Point{X: 684, Y: 128}},
		{"left margin wins over right", Rect{X: 500, Y: 100, Width: 50, Height: 20}, Size{Width: 990, Height: 200}, Point{X: 16, Y: 128}},
		{"flipped above near bottom", Rect{X: 100, Y: 700, Width: 50, Height: 20}, panel, Point{X: 100, Y: 492}},
		{"top never negative", Rect{X: 100, Y: 100, Width: 50, Height: 20}, Size{Width: 300, Height: 750}, Point{X: 100, Y: 0}},
		{"anchor near left edge", Rect{X: 0, Y: 0, Width: 50, Height: 20}, panel, Point{X: 16, Y: 28}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlacePopover(tt.anchor, tt.panel, viewport, DefaultPopoverConfig)
			if got != tt.want {
				t.Errorf("PlacePopover() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlacePopover_StaysInsideViewport(t *testing.T) {
	viewport := Size{Width: 80, Height: 24}
	panel := Size{Width: 30, Height: 8}
	for x := 0; x < viewport.Width; x += 5 {
		for y := 0; y < viewport.Height; y += 3 {
			p := PlacePopover(Rect{X: x, Y: y, Width: 10, Height: 3}, panel, viewport, CellPopoverConfig)
			if p.X < CellPopoverConfig.Margin || p.X+panel.Width > viewport.Width-CellPopoverConfig.Margin {
				t.Fatalf("anchor (%d,%d): panel x %d escapes horizontal margins", x, y, p.X)
			}
			if p.Y < 0 {
				t.Fatalf("anchor (%d,%d): negative top %d", x, y, p.Y)
			}
		}
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("expected corners inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) || r.Contains(1, 3) {
		t.Error("expected outside points")
	}
}
