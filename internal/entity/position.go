package entity

import "fmt"

// BoardSize is the edge length of the board.
const BoardSize = 3

// Position is a board coordinate in (column, row) order.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.Col, that.Row)
}

// InBounds reports whether the position lies on the board.
func (that Position) InBounds() bool {
	return that.Col >= 0 && that.Col < BoardSize && that.Row >= 0 && that.Row < BoardSize
}

// AllPositions returns every board position, column by column.
func AllPositions() []Position {
	positions := make([]Position, 0, BoardSize*BoardSize)
	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			positions = append(positions, Position{Col: col, Row: row})
		}
	}

	return positions
}

// LastMove is the opponent's previous move, or none at the start of a game.
type LastMove struct {
	Pos   Position `json:"pos"`
	Valid bool     `json:"valid"`
}

func NoMove() LastMove {
	return LastMove{}
}

func MovedTo(pos Position) LastMove {
	return LastMove{Pos: pos, Valid: true}
}

func (that LastMove) String() string {
	if !that.Valid {
		return "none"
	}

	return that.Pos.String()
}

// MoveKey pairs the opponent's previous move with a candidate move.
type MoveKey struct {
	Prev LastMove `json:"prev"`
	Move Position `json:"move"`
}

func (that MoveKey) String() string {
	return fmt.Sprintf("%s->%s", that.Prev, that.Move)
}
