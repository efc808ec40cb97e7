package entity

// GameRecord is the journal entry written after every finished game.
type GameRecord struct {
	ID         string    `json:"id"`
	Mode       string    `json:"mode"`
	Status     Status    `json:"status"`
	PlayerMark Mark      `json:"player_mark"`
	BotMark    Mark      `json:"bot_mark"`
	Board      Board     `json:"board"`
	BotMoves   []MoveKey `json:"bot_moves"`
	Turns      int       `json:"turns"`
}
