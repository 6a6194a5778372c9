package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is the record of one game played from the initial board.
type Game struct {
	ID      string   `json:"id"`
	Board   Board    `json:"board"`
	Moves   []Action `json:"moves"`
	Winner  Mark     `json:"winner"`
	Status  string   `json:"status"`
	Utility int      `json:"utility"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsDraw reports whether a finished game ended without a winner.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == Empty
}
