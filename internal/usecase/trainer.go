package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-bot/internal/valuetable"
)

const continueQuestion = "Play again? (y/n)"

type gameController interface {
	Play(scorer service.Scorer, mode tictactoe.Mode) (*tictactoe.Result, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, record *entity.GameRecord) error
}

type prompter interface {
	Confirm(question string) (bool, error)
}

// Stats counts outcomes over a batch of games.
type Stats struct {
	Games      int
	BotWins    int
	PlayerWins int
	Draws      int
}

func (that *Stats) add(status entity.Status) {
	that.Games++

	switch status {
	case entity.StatusBotWon:
		that.BotWins++
	case entity.StatusPlayerWon:
		that.PlayerWins++
	case entity.StatusDraw:
		that.Draws++
	}
}

// Trainer owns the value table for the whole run and credits it after every game.
type Trainer struct {
	logger     *slog.Logger
	table      *valuetable.Table
	controller gameController
	gameRepo   gameRepo
	prompter   prompter

	runID  string
	played int
}

func NewTrainer(logger *slog.Logger, table *valuetable.Table, controller gameController, gameRepo gameRepo, prompter prompter, runID string) *Trainer {
	return &Trainer{
		logger:     logger.With("component", "trainer"),
		table:      table,
		controller: controller,
		gameRepo:   gameRepo,
		prompter:   prompter,
		runID:      runID,
	}
}

func (that *Trainer) Table() *valuetable.Table {
	return that.table
}

// Run trains silently for simCount games, then plays the human until they stop.
func (that *Trainer) Run(ctx context.Context, simCount int) error {
	if _, err := that.Train(ctx, simCount); err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	if _, err := that.PlayInteractive(ctx); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}

	return nil
}

func (that *Trainer) Train(ctx context.Context, games int) (Stats, error) {
	log := that.logger.With("method", "Train")

	var stats Stats
	for range games {
		result, err := that.playOne(ctx, tictactoe.ModeSimulated)
		if err != nil {
			return stats, err
		}
		stats.add(result.Status)
	}

	log.Info("training finished",
		"games", stats.Games, "bot_wins", stats.BotWins, "player_wins", stats.PlayerWins,
		"draws", stats.Draws, "table_keys", that.table.Len())

	return stats, nil
}

// PlayInteractive plays at least one game against the human. Closed input
// ends the session without an error.
func (that *Trainer) PlayInteractive(ctx context.Context) (Stats, error) {
	log := that.logger.With("method", "PlayInteractive")

	var stats Stats
	for {
		result, err := that.playOne(ctx, tictactoe.ModeInteractive)
		if errors.Is(err, apperror.ErrInputClosed) {
			log.Info("input closed, ending session", "games", stats.Games)
			return stats, nil
		}
		if err != nil {
			return stats, err
		}
		stats.add(result.Status)

		again, err := that.prompter.Confirm(continueQuestion)
		if errors.Is(err, apperror.ErrInputClosed) {
			again, err = false, nil
		}
		if err != nil {
			return stats, fmt.Errorf("failed to ask to continue: %w", err)
		}

		if !again {
			log.Info("session finished",
				"games", stats.Games, "bot_wins", stats.BotWins, "player_wins", stats.PlayerWins, "draws", stats.Draws)
			return stats, nil
		}
	}
}

func (that *Trainer) playOne(ctx context.Context, mode tictactoe.Mode) (*tictactoe.Result, error) {
	result, err := that.controller.Play(that.table, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to play %s game: %w", mode, err)
	}

	that.table.Credit(result.BotMoves, result.Status)
	that.played++

	that.record(ctx, mode, result)

	return result, nil
}

// record writes the finished game to the journal. A journal failure is
// logged and does not stop play.
func (that *Trainer) record(ctx context.Context, mode tictactoe.Mode, result *tictactoe.Result) {
	record := &entity.GameRecord{
		ID:         that.runID + ":" + strconv.Itoa(that.played),
		Mode:       mode.String(),
		Status:     result.Status,
		PlayerMark: result.PlayerMark,
		BotMark:    result.BotMark,
		Board:      result.Board,
		BotMoves:   result.BotMoves,
		Turns:      result.Turns,
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, record); err != nil {
		that.logger.Error("failed to record game", "game_id", record.ID, "error", err)
	}
}
