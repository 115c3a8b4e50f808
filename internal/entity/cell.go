package entity

// Cell is the content of one board square. PlayerX and PlayerO double as the player marks.
type Cell uint8

const (
	Empty Cell = iota
	PlayerX
	PlayerO
)

// Opponent returns the other player. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}
