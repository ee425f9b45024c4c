package bot

import (
	"math/rand"

	"github.com/Lkarthikeya/CODSOFT/internal/apperror"
	"github.com/Lkarthikeya/CODSOFT/internal/game"
)

const (
	scoreWin  = 1
	scoreDraw = 0
	scoreLoss = -1

	// infinity sits outside every reachable score, so the first explored
	// move always replaces the initial best.
	infinity = 2

	noMove = -1
)

// openingCells are the strong first moves: the center and the corners.
// Opening on any of them keeps the game at worst drawn.
var openingCells = []int{0, 2, 4, 6, 8}

type unbeatable struct{}

// NewUnbeatable returns the perfect-play strategy. It searches the full
// game tree with minimax and alpha-beta pruning, so it never loses and
// punishes every mistake.
func NewUnbeatable() Strategy {
	return &unbeatable{}
}

func (that *unbeatable) BestMove(board game.Board, mark string) (int, error) {
	if board.IsEmpty() {
		return openingCells[rand.Intn(len(openingCells))], nil //nolint: gosec // it's ok
	}

	if board.Winner() != game.EmptyCell {
		return noMove, apperror.ErrGameFinished
	}

	if board.IsFull() {
		return noMove, ErrNoAvailableMoves
	}

	_, move := minimax(&board, mark, mark == game.PlayerX, -infinity, infinity)

	return move, nil
}

// minimax walks every continuation below board and returns the score of
// the position together with the move that achieves it, or noMove at a
// terminal node. Scores are always from X's side: a won X line is +1, a
// won O line is -1, a full board is 0. markToMove places next, maximizing
// says whether that side wants the score high (X) or low (O). The board
// is mutated in place and restored after each branch.
func minimax(board *game.Board, markToMove string, maximizing bool, alpha, beta int) (int, int) {
	switch winner := board.Winner(); {
	case winner == game.PlayerX:
		return scoreWin, noMove
	case winner == game.PlayerO:
		return scoreLoss, noMove
	case board.IsFull():
		return scoreDraw, noMove
	}

	bestMove := noMove

	if maximizing {
		bestScore := -infinity

		for _, cell := range board.AvailableMoves() {
			board[cell] = markToMove
			score, _ := minimax(board, game.OpponentOf(markToMove), false, alpha, beta)
			board[cell] = game.EmptyCell

			// strictly greater, so the lowest cell keeps equal scores
			if score > bestScore {
				bestScore = score
				bestMove = cell
			}

			if score > alpha {
				alpha = score
			}

			if beta <= alpha {
				break
			}
		}

		return bestScore, bestMove
	}

	bestScore := infinity

	for _, cell := range board.AvailableMoves() {
		board[cell] = markToMove
		score, _ := minimax(board, game.OpponentOf(markToMove), true, alpha, beta)
		board[cell] = game.EmptyCell

		if score < bestScore {
			bestScore = score
			bestMove = cell
		}

		if score < beta {
			beta = score
		}

		if beta <= alpha {
			break
		}
	}

	return bestScore, bestMove
}
