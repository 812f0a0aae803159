package tui

import "testing"

func TestLayoutGridFitsColumns(t *testing.T) {
	// 24-wide cells with a one column gap: 3*24 + 2 = 74.
	g := layoutGrid(7, 74, 40, 0, 24, 7, 0)
	if g.cols != 3 {
		t.Fatalf("cols = %d, want 3", g.cols)
	}
	if g.rows != 3 {
		t.Fatalf("rows = %d, want 3", g.rows)
	}
	if g := layoutGrid(7, 73, 40, 0, 24, 7, 0); g.cols != 2 {
		t.Fatalf("cols at width 73 = %d, want 2", g.cols)
	}
	if g := layoutGrid(7, 200, 40, 2, 24, 7, 0); g.cols != 2 {
		t.Fatalf("fixed cols = %d, want 2", g.cols)
	}
}

func TestLayoutGridVisibleRowsAndTop(t *testing.T) {
	// 20 rows of screen minus 4 chrome rows leaves 16: two 7-high rows.
	g := layoutGrid(12, 74, 20, 0, 24, 7, 10)
	if g.visible != 2 {
		t.Fatalf("visible = %d, want 2", g.visible)
	}
	if g.top != 2 {
		t.Fatalf("top clamped = %d, want 2", g.top)
	}
}

func TestCellAt(t *testing.T) {
	g := layoutGrid(5, 74, 40, 0, 24, 7, 0)
	tests := []struct {
		name   string
		x, y   int
		want   int
		wantOK bool
	}{
		{"first cell", 0, gridTop, 0, true},
		{"second cell", 25, gridTop + 3, 1, true},
		{"gap column", 24, gridTop, 0, false},
		{"second row", 2, gridTop + 7, 3, true},
		{"header", 5, 0, 0, false},
		{"empty slot", 50, gridTop + 7, 0, false},
		{"past columns", 80, gridTop, 0, false},
	}
	for _, tt := range tests {
		got, ok := g.cellAt(tt.x, tt.y, 5)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("%s: cellAt(%d, %d) = %d, %v; want %d, %v", tt.name, tt.x, tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCellAtScrolled(t *testing.T) {
	g := layoutGrid(12, 74, 20, 0, 24, 7, 1)
	if got, ok := g.cellAt(0, gridTop, 12); !ok || got != 3 {
		t.Fatalf("cellAt with top=1 = %d, %v; want 3, true", got, ok)
	}
}

func TestGridMove(t *testing.T) {
	g := layoutGrid(7, 74, 40, 0, 24, 7, 0)
	tests := []struct {
		name   string
		from   int
		dr, dc int
		want   int
	}{
		{"right", 0, 0, 1, 1},
		{"right wraps row", 2, 0, 1, 3},
		{"left wraps row", 3, 0, -1, 2},
		{"left at start", 0, 0, -1, 0},
		{"down", 1, 1, 0, 4},
		{"down into short row", 5, 1, 0, 6},
		{"up at top", 1, -1, 0, 1},
		{"right at end", 6, 0, 1, 6},
	}
	for _, tt := range tests {
		if got := g.move(tt.from, tt.dr, tt.dc, 7); got != tt.want {
			t.Errorf("%s: move(%d, %d, %d) = %d, want %d", tt.name, tt.from, tt.dr, tt.dc, got, tt.want)
		}
	}
}

func TestScrollTo(t *testing.T) {
	g := layoutGrid(12, 74, 20, 0, 24, 7, 0)
	if top := g.scrollTo(9); top != 2 {
		t.Fatalf("scrollTo(9) = %d, want 2", top)
	}
	g.top = 2
	if top := g.scrollTo(0); top != 0 {
		t.Fatalf("scrollTo(0) = %d, want 0", top)
	}
}
