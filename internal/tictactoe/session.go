package tictactoe

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Lkarthikeya/CODSOFT/internal/bot"
	"github.com/Lkarthikeya/CODSOFT/internal/console"
	"github.com/Lkarthikeya/CODSOFT/internal/game"
	"github.com/google/uuid"
)

// Session runs one game between the human and the configured strategy.
type Session struct {
	logger   *slog.Logger
	console  *console.Console
	strategy bot.Strategy
}

func NewSession(logger *slog.Logger, cons *console.Console, strategy bot.Strategy) *Session {
	return &Session{
		logger:   logger.With("component", "tictactoe"),
		console:  cons,
		strategy: strategy,
	}
}

// Run drives one full game: seat setup, alternating turns until the
// board is terminal, then the verdict. Closing the input aborts the
// game cleanly.
func (that *Session) Run() error {
	log := that.logger.With("game_id", uuid.NewString())

	err := that.play(log)
	if errors.Is(err, io.EOF) {
		that.console.AnnounceAborted()
		log.Debug("game aborted")

		return nil
	}

	return err
}

func (that *Session) play(log *slog.Logger) error {
	that.console.ShowWelcome()

	humanMark, err := that.console.PromptMark()
	if err != nil {
		return fmt.Errorf("failed to choose a mark: %w", err)
	}
	aiMark := game.OpponentOf(humanMark)

	humanFirst, err := that.console.PromptHumanFirst()
	if err != nil {
		return fmt.Errorf("failed to choose the first mover: %w", err)
	}

	firstMark := humanMark
	if !humanFirst {
		firstMark = aiMark
	}

	match := game.NewGame(firstMark)
	log.Debug("game started", "human_mark", humanMark, "first_mark", firstMark)

	// Whose turn it is lives in match.Turn alone. MakeMove flips it, so
	// the seats here only ever ask "is it mine".
	for !match.IsFinished() {
		that.console.ShowBoard(match.Board, "Current board:")

		if match.Turn == humanMark {
			if err = that.humanTurn(match, humanMark); err != nil {
				return err
			}

			continue
		}

		if err = that.aiTurn(log, match, aiMark); err != nil {
			return err
		}
	}

	that.console.ShowBoard(match.Board, "Final board:")
	that.console.AnnounceOutcome(match.Winner, humanMark)
	log.Debug("game finished", "winner", match.Winner)

	return nil
}

func (that *Session) humanTurn(match *game.Game, humanMark string) error {
	cell, err := that.console.PromptMove(match.Board, humanMark)
	if err != nil {
		return fmt.Errorf("failed to read a move: %w", err)
	}

	if err = match.MakeMove(humanMark, cell); err != nil {
		return fmt.Errorf("failed to apply the move: %w", err)
	}

	return nil
}

func (that *Session) aiTurn(log *slog.Logger, match *game.Game, aiMark string) error {
	that.console.AnnounceThinking()

	cell, err := that.strategy.BestMove(match.Board, aiMark)
	if err != nil {
		return fmt.Errorf("failed to pick a move: %w", err)
	}

	if err = match.MakeMove(aiMark, cell); err != nil {
		return fmt.Errorf("failed to apply the move: %w", err)
	}

	that.console.AnnounceMove(cell, aiMark)
	log.Debug("bot move made", "cell", cell, "mark", aiMark)

	return nil
}
