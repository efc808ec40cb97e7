package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	app "github.com/rocketscienceinc/tictactoe-bot/internal"
	"github.com/rocketscienceinc/tictactoe-bot/internal/config"
)

const usage = "usage: tictactoe-bot [simCount]"

var (
	ErrTooManyArgs     = errors.New("too many arguments")
	ErrInvalidSimCount = errors.New("simulation count must be a non-negative integer")
)

// main - is the entry point of the application. It parses the simulation count, initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	simCount, err := parseSimCount(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n%s\n", err, usage)
		os.Exit(2)
	}

	conf := initConfig()
	logger := initLogger(conf)

	if err = app.RunApp(logger, conf, simCount, os.Stdin, os.Stdout); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// parseSimCount accepts zero or one argument made only of digits.
func parseSimCount(args []string) (int, error) {
	switch len(args) {
	case 0:
		return 0, nil
	case 1:
	default:
		return 0, fmt.Errorf("%w: got %d", ErrTooManyArgs, len(args))
	}

	arg := args[0]
	for _, r := range arg {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSimCount, arg)
		}
	}

	simCount, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSimCount, arg)
	}

	return simCount, nil
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger. Logs go to stderr, stdout belongs to the board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
