package tictactoe

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Lkarthikeya/CODSOFT/internal/bot"
	"github.com/Lkarthikeya/CODSOFT/internal/config"
	"github.com/Lkarthikeya/CODSOFT/internal/console"
)

// Run - wires the console and the configured strategy together and plays
// one game on the process stdio.
func Run(logger *slog.Logger, conf *config.Config) error {
	strategy, err := bot.NewStrategy(conf.Game.Strategy)
	if err != nil {
		return fmt.Errorf("could not configure the bot: %w", err)
	}

	session := NewSession(logger, console.NewConsole(os.Stdin, os.Stdout), strategy)

	if err = session.Run(); err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	return nil
}
