package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	StrategySmart  = "smart"
	StrategyRandom = "random"
)

var ErrUnknownStrategy = errors.New("unknown bot strategy")

type Scorer interface {
	Score(key entity.MoveKey) int
}

type BotService interface {
	SelectMove(scorer Scorer, last entity.LastMove, open []entity.Position) (entity.Position, error)
}

type botService struct {
	rng   entity.Rand
	smart bool
}

func NewBotService(rng entity.Rand, strategy string) (BotService, error) {
	switch strategy {
	case StrategySmart, "":
		return &botService{rng: rng, smart: true}, nil
	case StrategyRandom:
		return &botService{rng: rng}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// SelectMove picks the open position with the highest score for the opponent's
// last move, breaking ties uniformly at random.
func (that *botService) SelectMove(scorer Scorer, last entity.LastMove, open []entity.Position) (entity.Position, error) {
	if len(open) == 0 {
		return entity.Position{}, apperror.ErrNoAvailableMoves
	}

	if !that.smart {
		return open[that.rng.Intn(len(open))], nil
	}

	best := make([]entity.Position, 0, len(open))
	bestScore := 0

	for _, pos := range open {
		score := scorer.Score(entity.MoveKey{Prev: last, Move: pos})

		switch {
		case len(best) == 0 || score > bestScore:
			best = append(best[:0], pos)
			bestScore = score
		case score == bestScore:
			best = append(best, pos)
		}
	}

	return best[that.rng.Intn(len(best))], nil
}
