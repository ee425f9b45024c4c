package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Lkarthikeya/CODSOFT/internal/config"
	"github.com/Lkarthikeya/CODSOFT/internal/tictactoe"
)

// main - is the entry point of the game. It initializes the configuration, logger, and runs one game session.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "./config.yml", "path to the config file")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	logger := initLogger(conf)

	if err := tictactoe.Run(logger, conf); err != nil {
		panic(fmt.Errorf("game run failed: %w", err))
	}
}

// initialize logger. Logs go to stderr so they never mix into the board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
