package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

type Mark string

const (
	MarkX     Mark = "X"
	MarkO     Mark = "O"
	EmptyCell Mark = ""
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusPlayerWon  Status = "player_won"
	StatusBotWon     Status = "bot_won"
	StatusDraw       Status = "draw"
)

// Label returns the name printed in the final "<WINNER> WINS!" line.
func (that Status) Label() string {
	switch that {
	case StatusPlayerWon:
		return "PLAYER"
	case StatusBotWon:
		return "BOT"
	case StatusDraw:
		return "EVERYONE"
	default:
		return ""
	}
}

// Rand is the randomness source used for the coin flip and tie-breaks.
type Rand interface {
	Intn(n int) int
}

// WinLines lists every row, then every column, then both diagonals.
var WinLines = buildWinLines()

func buildWinLines() [][BoardSize]Position {
	lines := make([][BoardSize]Position, 0, 2*BoardSize+2)

	for row := 0; row < BoardSize; row++ {
		var line [BoardSize]Position
		for col := 0; col < BoardSize; col++ {
			line[col] = Position{Col: col, Row: row}
		}
		lines = append(lines, line)
	}

	for col := 0; col < BoardSize; col++ {
		var line [BoardSize]Position
		for row := 0; row < BoardSize; row++ {
			line[row] = Position{Col: col, Row: row}
		}
		lines = append(lines, line)
	}

	var diagonal, antiDiagonal [BoardSize]Position
	for i := 0; i < BoardSize; i++ {
		diagonal[i] = Position{Col: i, Row: i}
		antiDiagonal[i] = Position{Col: BoardSize - 1 - i, Row: i}
	}

	return append(lines, diagonal, antiDiagonal)
}

// Board is indexed [row][col].
type Board [BoardSize][BoardSize]Mark

func (that *Board) At(pos Position) Mark {
	return that[pos.Row][pos.Col]
}

func (that *Board) Set(pos Position, mark Mark) {
	that[pos.Row][pos.Col] = mark
}

// Game is the turn state of a single game between the player and the bot.
type Game struct {
	Board          Board      `json:"board"`
	PlayerMark     Mark       `json:"player_mark"`
	BotMark        Mark       `json:"bot_mark"`
	PlayerTurn     bool       `json:"player_turn"`
	Open           []Position `json:"open"`
	LastPlayerMove LastMove   `json:"last_player_move"`
	LastBotMove    LastMove   `json:"last_bot_move"`
	BotMoves       []MoveKey  `json:"bot_moves"`
	Status         Status     `json:"status"`
}

// NewGame flips a fair coin for who moves first. The first mover plays X.
func NewGame(rng Rand) *Game {
	game := &Game{
		Open:     AllPositions(),
		BotMoves: make([]MoveKey, 0, (BoardSize*BoardSize+1)/2),
		Status:   StatusInProgress,
	}

	game.PlayerTurn = rng.Intn(2) == 0
	if game.PlayerTurn {
		game.PlayerMark, game.BotMark = MarkX, MarkO
	} else {
		game.PlayerMark, game.BotMark = MarkO, MarkX
	}

	return game
}

// TurnMark returns the mark of the side to move.
func (that *Game) TurnMark() Mark {
	if that.PlayerTurn {
		return that.PlayerMark
	}
	return that.BotMark
}

func (that *Game) IsOpen(pos Position) bool {
	return slices.Contains(that.Open, pos)
}

func (that *Game) IsFinished() bool {
	return that.Status != StatusInProgress
}

func (that *Game) MakeTurn(mark Mark, pos Position) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !pos.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, pos)
	}

	if that.TurnMark() != mark {
		return apperror.ErrNotYourTurn
	}

	idx := slices.Index(that.Open, pos)
	if idx < 0 || that.Board.At(pos) != EmptyCell {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	that.Board.Set(pos, mark)
	that.Open = slices.Delete(that.Open, idx, idx+1)

	if that.PlayerTurn {
		that.LastPlayerMove = MovedTo(pos)
	} else {
		that.BotMoves = append(that.BotMoves, MoveKey{Prev: that.LastPlayerMove, Move: pos})
		that.LastBotMove = MovedTo(pos)
	}

	that.PlayerTurn = !that.PlayerTurn

	that.UpdateGameState()

	return nil
}

// DetermineGameResult scans rows, columns and diagonals for a full line,
// then falls back to a draw once no open position remains.
func (that *Game) DetermineGameResult() Status {
	for _, line := range WinLines {
		first := that.Board.At(line[0])
		if first == EmptyCell {
			continue
		}

		complete := true
		for _, pos := range line[1:] {
			if that.Board.At(pos) != first {
				complete = false
				break
			}
		}

		if complete {
			return that.statusFor(first)
		}
	}

	// the game will continue until all the squares are full
	if len(that.Open) == 0 {
		return StatusDraw
	}

	return StatusInProgress
}

func (that *Game) UpdateGameState() {
	that.Status = that.DetermineGameResult()
}

func (that *Game) statusFor(mark Mark) Status {
	if mark == that.BotMark {
		return StatusBotWon
	}
	return StatusPlayerWon
}
