package entity

// Score counts wins per player for the running session.
type Score struct {
	X int `json:"x"`
	O int `json:"o"`
}

func (that *Score) Increment(player Cell) {
	switch player {
	case PlayerX:
		that.X++
	case PlayerO:
		that.O++
	}
}

func (that *Score) Of(player Cell) int {
	switch player {
	case PlayerX:
		return that.X
	case PlayerO:
		return that.O
	default:
		return 0
	}
}

func (that *Score) Reset() {
	that.X, that.O = 0, 0
}
