package bot

import (
	"errors"
	"fmt"

	"github.com/Lkarthikeya/CODSOFT/internal/game"
)

const (
	StrategyUnbeatable = "unbeatable"
	StrategyRandom     = "random"
)

var (
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrUnknownStrategy  = errors.New("unknown strategy")
)

// Strategy picks a cell for mark on the given board. The board is passed
// by value, so lookahead never leaks into the caller's game state.
type Strategy interface {
	BestMove(board game.Board, mark string) (int, error)
}

// NewStrategy resolves a strategy by its configured name.
func NewStrategy(name string) (Strategy, error) {
	switch name {
	case StrategyUnbeatable:
		return NewUnbeatable(), nil
	case StrategyRandom:
		return NewRandom(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
