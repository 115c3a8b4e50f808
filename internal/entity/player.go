package entity

import "fmt"

type Player struct {
	Name string `json:"name"`
	Mark Cell   `json:"mark"`
}

// NewPlayers returns the X and O players. Blank names fall back to the mark.
func NewPlayers(nameX, nameO string) [2]Player {
	return [2]Player{
		{Name: defaultName(nameX, PlayerX), Mark: PlayerX},
		{Name: defaultName(nameO, PlayerO), Mark: PlayerO},
	}
}

func (that Player) String() string {
	return fmt.Sprintf("%s (%s)", that.Name, that.Mark)
}

func defaultName(name string, mark Cell) string {
	if name == "" {
		return "Player " + mark.String()
	}
	return name
}
