package tui

import (
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// Terminal cells are about twice as tall as they are wide, so a square board cell is
// twice as many columns wide as it is rows high.
const aspect = 2

// Layout places the 3x3 grid on the screen. Cell k along an axis owns the half-open range
// [origin + k*size, origin + (k+1)*size), grid lines included.
type Layout struct {
	X, Y       int
	CellWidth  int
	CellHeight int
}

// NewLayout fits the largest square-looking grid into the rectangle and centers it.
func NewLayout(x, y, width, height int) Layout {
	cellHeight := min(height/entity.BoardSize, width/entity.BoardSize/aspect)
	if cellHeight < 1 {
		cellHeight = 1
	}
	cellWidth := cellHeight * aspect

	gridWidth := cellWidth * entity.BoardSize
	gridHeight := cellHeight * entity.BoardSize

	return Layout{
		X:          x + max(0, (width-gridWidth)/2),
		Y:          y + max(0, (height-gridHeight)/2),
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}
}

// Fits reports whether the grid lies inside the rectangle.
func (that Layout) Fits(x, y, width, height int) bool {
	return that.X >= x && that.Y >= y &&
		that.X+that.Width() <= x+width && that.Y+that.Height() <= y+height
}

func (that Layout) Width() int {
	return that.CellWidth * entity.BoardSize
}

func (that Layout) Height() int {
	return that.CellHeight * entity.BoardSize
}

// CellAt maps a screen point to a board cell. ok is false outside the grid.
func (that Layout) CellAt(x, y int) (row, col int, ok bool) {
	dx, dy := x-that.X, y-that.Y
	if dx < 0 || dy < 0 || dx >= that.Width() || dy >= that.Height() {
		return 0, 0, false
	}

	return dy / that.CellHeight, dx / that.CellWidth, true
}

// Center is the screen point where a cell's marker is drawn.
func (that Layout) Center(row, col int) (x, y int) {
	return that.X + col*that.CellWidth + that.CellWidth/2,
		that.Y + row*that.CellHeight + that.CellHeight/2
}

// Segment returns the endpoints of the highlight for a winning line. Rows and columns span
// the whole grid through the cell centers; diagonals run corner to corner.
func (that Layout) Segment(line entity.WinLine) (x1, y1, x2, y2 int) {
	right := that.X + that.Width() - 1
	bottom := that.Y + that.Height() - 1

	switch line.Kind {
	case entity.LineRow:
		_, cy := that.Center(line.Index, 0)
		return that.X, cy, right, cy
	case entity.LineColumn:
		cx, _ := that.Center(0, line.Index)
		return cx, that.Y, cx, bottom
	case entity.LineDiagonalNegative:
		return that.X, that.Y, right, bottom
	case entity.LineDiagonalPositive:
		return that.X, bottom, right, that.Y
	default:
		return that.X, that.Y, that.X, that.Y
	}
}

// Points rasterizes a segment into screen points, endpoints included.
func Points(x1, y1, x2, y2 int) [][2]int {
	dx, dy := x2-x1, y2-y1
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return [][2]int{{x1, y1}}
	}

	points := make([][2]int, 0, steps+1)
	for i := 0; i <= steps; i++ {
		points = append(points, [2]int{
			x1 + divRound(dx*i, steps),
			y1 + divRound(dy*i, steps),
		})
	}

	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// divRound divides rounding half away from zero.
func divRound(a, b int) int {
	if (a < 0) != (b < 0) {
		return (a - b/2) / b
	}
	return (a + b/2) / b
}
