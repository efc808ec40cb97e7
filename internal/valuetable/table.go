package valuetable

import (
	"maps"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// Table maps a move key to the accumulated win/loss credit of that move.
type Table struct {
	scores map[entity.MoveKey]int
}

// New seeds every (position, position) pair with zero. Keys whose previous
// move is none are not seeded.
func New() *Table {
	positions := entity.AllPositions()

	table := &Table{
		scores: make(map[entity.MoveKey]int, len(positions)*len(positions)),
	}

	for _, prev := range positions {
		for _, move := range positions {
			table.scores[entity.MoveKey{Prev: entity.MovedTo(prev), Move: move}] = 0
		}
	}

	return table
}

// Score returns the stored score, or zero for a key never inserted.
func (that *Table) Score(key entity.MoveKey) int {
	return that.scores[key]
}

// Credit adjusts every key in moves by the outcome of the game: +1 when the
// bot won, -1 when the player won, nothing otherwise.
func (that *Table) Credit(moves []entity.MoveKey, outcome entity.Status) {
	var delta int

	switch outcome {
	case entity.StatusBotWon:
		delta = 1
	case entity.StatusPlayerWon:
		delta = -1
	default:
		return
	}

	for _, key := range moves {
		that.scores[key] += delta
	}
}

func (that *Table) Has(key entity.MoveKey) bool {
	_, ok := that.scores[key]
	return ok
}

func (that *Table) Len() int {
	return len(that.scores)
}

// Snapshot returns a copy of every stored entry.
func (that *Table) Snapshot() map[entity.MoveKey]int {
	return maps.Clone(that.scores)
}
