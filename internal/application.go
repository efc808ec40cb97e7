package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/rocketscienceinc/tictactoe-bot/internal/config"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-bot/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-bot/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-bot/internal/valuetable"
)

// RunApp - trains the bot for simCount games and then plays on the console.
func RunApp(logger *slog.Logger, conf *config.Config, simCount int, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx := context.Background()

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint: gosec // it's ok

	bot, err := service.NewBotService(rng, conf.BotStrategy)
	if err != nil {
		return fmt.Errorf("could not create bot: %w", err)
	}

	gameRepo := repository.NewDiscardRepository()
	if conf.Journal.Enabled {
		redisStorage, err := storage.New(ctx, conf.Journal.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		gameRepo = repository.NewGameRepository(redisStorage)
	}

	term := console.New(in, out)
	gameController := tictactoe.NewGameController(logger, bot, term, rng)
	trainer := usecase.NewTrainer(logger, valuetable.New(), gameController, gameRepo, term, strconv.FormatInt(seed, 10))

	log.Info("Starting session",
		"sim_count", simCount, "seed", seed, "bot_strategy", conf.BotStrategy, "journal", conf.Journal.Enabled)

	if err = trainer.Run(ctx, simCount); err != nil {
		return fmt.Errorf("trainer run failed: %w", err)
	}

	return nil
}
