package tui

// Screen rows above the grid: header and a blank spacer.
const gridTop = 2

// Rows below the grid: status line and footer.
const chromeBottom = 2

const colGap = 1

// grid is the cell geometry for one frame.
type grid struct {
	cols       int
	cellWidth  int
	cellHeight int
	rows       int // total rows needed for n cells
	visible    int // rows that fit on screen
	top        int // first visible row
}

// layoutGrid fits n cells into a width x height screen. fixedCols of zero
// fits as many columns as the width allows.
func layoutGrid(n, width, height, fixedCols, cellWidth, cellHeight, top int) grid {
	g := grid{cellWidth: cellWidth, cellHeight: cellHeight}
	switch {
	case fixedCols > 0:
		g.cols = fixedCols
	case width <= 0:
		g.cols = 3
	default:
		g.cols = max(1, (width+colGap)/(cellWidth+colGap))
	}
	g.rows = (n + g.cols - 1) / g.cols
	if height <= 0 {
		g.visible = g.rows
	} else {
		g.visible = max(1, (height-gridTop-chromeBottom)/cellHeight)
	}
	g.top = max(0, min(top, g.rows-g.visible))
	return g
}

// cellAt maps a screen position to a cell index. It reports false for gaps,
// positions outside the grid and empty trailing slots.
func (g grid) cellAt(x, y, n int) (int, bool) {
	if x < 0 || y < gridTop {
		return 0, false
	}
	row := (y - gridTop) / g.cellHeight
	if row >= g.visible {
		return 0, false
	}
	stride := g.cellWidth + colGap
	col := x / stride
	if col >= g.cols || x%stride >= g.cellWidth {
		return 0, false
	}
	idx := (g.top+row)*g.cols + col
	if idx >= n {
		return 0, false
	}
	return idx, true
}

// scrollTo returns the top row that keeps index i on screen.
func (g grid) scrollTo(i int) int {
	row := i / g.cols
	switch {
	case row < g.top:
		return row
	case row >= g.top+g.visible:
		return row - g.visible + 1
	default:
		return g.top
	}
}

// move returns the index reached from i by moving dr rows and dc columns,
// clamped to the n cells.
func (g grid) move(i, dr, dc, n int) int {
	if n == 0 {
		return 0
	}
	row, col := i/g.cols, i%g.cols
	row += dr
	col += dc
	switch {
	case col < 0 && row > 0:
		row--
		col = g.cols - 1
	case col >= g.cols:
		row++
		col = 0
	}
	col = max(0, col)
	row = max(0, min(row, g.rows-1))
	return min(row*g.cols+col, n-1)
}
