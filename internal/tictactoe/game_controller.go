package tictactoe

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
)

type Mode int

const (
	// ModeSimulated plays both sides with the bot policy and prints nothing.
	ModeSimulated Mode = iota
	// ModeInteractive reads the player's moves from the console.
	ModeInteractive
)

func (that Mode) String() string {
	if that == ModeInteractive {
		return "interactive"
	}
	return "simulated"
}

const movePrompt = `Enter move in the format "x y" without quotes (0 indexed).`

type botService interface {
	SelectMove(scorer service.Scorer, last entity.LastMove, open []entity.Position) (entity.Position, error)
}

type terminal interface {
	RenderBoard(board *entity.Board)
	Println(msg string)
	ReadLine() (string, error)
}

// Result is the outcome of one finished game.
type Result struct {
	Status     entity.Status
	BotMoves   []entity.MoveKey
	Board      entity.Board
	PlayerMark entity.Mark
	BotMark    entity.Mark
	Turns      int
}

type GameController struct {
	logger *slog.Logger
	bot    botService
	term   terminal
	rng    entity.Rand
}

func NewGameController(logger *slog.Logger, bot botService, term terminal, rng entity.Rand) *GameController {
	return &GameController{
		logger: logger.With("component", "game_controller"),
		bot:    bot,
		term:   term,
		rng:    rng,
	}
}

// Play runs one game to completion. The scorer is only read.
func (that *GameController) Play(scorer service.Scorer, mode Mode) (*Result, error) {
	interactive := mode == ModeInteractive
	game := entity.NewGame(that.rng)

	if interactive {
		that.announceSides(game)
	}

	turns := 0
	for !game.IsFinished() {
		if interactive {
			that.term.RenderBoard(&game.Board)
		}

		var (
			pos entity.Position
			err error
		)

		if game.PlayerTurn {
			pos, err = that.playerMove(scorer, game, interactive)
		} else {
			pos, err = that.bot.SelectMove(scorer, game.LastPlayerMove, game.Open)
			if err == nil && interactive {
				that.term.Println(fmt.Sprintf("Bot moved to %s!", pos))
			}
		}

		if err != nil {
			return nil, fmt.Errorf("failed to choose move: %w", err)
		}

		if err = game.MakeTurn(game.TurnMark(), pos); err != nil {
			return nil, fmt.Errorf("failed to make turn: %w", err)
		}
		turns++
	}

	if interactive {
		that.term.RenderBoard(&game.Board)
		that.term.Println(game.Status.Label() + " WINS!")
	}

	that.logger.Debug("game finished",
		"mode", mode.String(), "status", game.Status, "turns", turns, "bot_moves", len(game.BotMoves))

	return &Result{
		Status:     game.Status,
		BotMoves:   game.BotMoves,
		Board:      game.Board,
		PlayerMark: game.PlayerMark,
		BotMark:    game.BotMark,
		Turns:      turns,
	}, nil
}

func (that *GameController) announceSides(game *entity.Game) {
	if game.PlayerTurn {
		that.term.Println(fmt.Sprintf("You are %s, so you move first!\n", game.PlayerMark))
		return
	}
	that.term.Println(fmt.Sprintf("You are %s, so you move second!\n", game.PlayerMark))
}

// playerMove asks the human in interactive mode. In simulation the policy
// plays the player role too, keyed on the bot's last move.
func (that *GameController) playerMove(scorer service.Scorer, game *entity.Game, interactive bool) (entity.Position, error) {
	if !interactive {
		pos, err := that.bot.SelectMove(scorer, game.LastBotMove, game.Open)
		if err != nil {
			return entity.Position{}, fmt.Errorf("simulated player: %w", err)
		}
		return pos, nil
	}

	for {
		that.term.Println(movePrompt)

		line, err := that.term.ReadLine()
		if err != nil {
			return entity.Position{}, fmt.Errorf("failed to read move: %w", err)
		}

		pos, ok := ParseMove(line)
		if !ok {
			continue
		}

		if !game.IsOpen(pos) {
			that.term.Println(fmt.Sprintf("%s is already taken!", pos))
			continue
		}

		return pos, nil
	}
}

// ParseMove accepts exactly two non-negative integers below the board size.
func ParseMove(line string) (entity.Position, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Position{}, false
	}

	var coords [2]int
	for i, field := range fields {
		if !isDigits(field) {
			return entity.Position{}, false
		}

		value, err := strconv.Atoi(field)
		if err != nil || value >= entity.BoardSize {
			return entity.Position{}, false
		}
		coords[i] = value
	}

	return entity.Position{Col: coords[0], Row: coords[1]}, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
