package bot

import (
	"math/rand"

	"github.com/Lkarthikeya/CODSOFT/internal/apperror"
	"github.com/Lkarthikeya/CODSOFT/internal/game"
)

type random struct{}

// NewRandom returns a strategy that picks any empty cell with equal
// probability. It is the beatable sparring partner.
func NewRandom() Strategy {
	return &random{}
}

func (that *random) BestMove(board game.Board, mark string) (int, error) {
	if board.Winner() != game.EmptyCell {
		return noMove, apperror.ErrGameFinished
	}

	moves := board.AvailableMoves()
	if len(moves) == 0 {
		return noMove, ErrNoAvailableMoves
	}

	return moves[rand.Intn(len(moves))], nil //nolint: gosec // it's ok
}
