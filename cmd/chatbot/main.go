package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Lkarthikeya/CODSOFT/internal/chat"
	"github.com/Lkarthikeya/CODSOFT/internal/config"
)

// main - is the entry point of the chatbot. It initializes the configuration, logger, and runs one conversation.
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

	session := chat.NewSession(logger, os.Stdin, os.Stdout, &conf.Chat)
	if err := session.Run(); err != nil {
		panic(fmt.Errorf("chat run failed: %w", err))
	}
}

// initialize logger. Logs go to stderr so they never mix into the conversation.
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
