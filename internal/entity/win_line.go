package entity

// LineKind tells which family of triples a winning line belongs to.
type LineKind uint8

const (
	LineRow LineKind = iota + 1
	LineColumn
	// LineDiagonalNegative runs from the top-left to the bottom-right corner.
	LineDiagonalNegative
	// LineDiagonalPositive runs from the bottom-left to the top-right corner.
	LineDiagonalPositive
)

func (that LineKind) String() string {
	switch that {
	case LineRow:
		return "row"
	case LineColumn:
		return "column"
	case LineDiagonalNegative:
		return "diagonal-negative"
	case LineDiagonalPositive:
		return "diagonal-positive"
	default:
		return "unknown"
	}
}

// Position is a row, col pair on the board.
type Position struct {
	Row int
	Col int
}

// WinLine identifies one of the eight triples and the player occupying it.
// Index is the row or column number and is always 0 for diagonals.
type WinLine struct {
	Kind   LineKind
	Index  int
	Player Cell
}

// Cells returns the three positions covered by the line.
func (that WinLine) Cells() [BoardSize]Position {
	var cells [BoardSize]Position

	for i := range cells {
		switch that.Kind {
		case LineRow:
			cells[i] = Position{Row: that.Index, Col: i}
		case LineColumn:
			cells[i] = Position{Row: i, Col: that.Index}
		case LineDiagonalNegative:
			cells[i] = Position{Row: i, Col: i}
		case LineDiagonalPositive:
			cells[i] = Position{Row: BoardSize - 1 - i, Col: i}
		}
	}

	return cells
}

// Contains reports whether row, col lies on the line.
func (that WinLine) Contains(row, col int) bool {
	for _, pos := range that.Cells() {
		if pos.Row == row && pos.Col == col {
			return true
		}
	}
	return false
}
