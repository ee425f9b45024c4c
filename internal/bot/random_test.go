package bot

import (
	"testing"

	"github.com/Lkarthikeya/CODSOFT/internal/apperror"
	"github.com/Lkarthikeya/CODSOFT/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_BestMove(t *testing.T) {
	strategy := NewRandom()

	t.Run("Plays only empty cells", func(t *testing.T) {
		// Given: a board with three free cells
		board := game.Board{
			game.PlayerX, game.PlayerO, game.PlayerX,
			game.EmptyCell, game.PlayerO, game.PlayerX,
			game.PlayerO, game.EmptyCell, game.EmptyCell,
		}

		// When: asking for moves many times
		seen := make(map[int]bool)
		for i := 0; i < 100; i++ {
			cell, err := strategy.BestMove(board, game.PlayerX)
			require.NoError(t, err)

			// Then: every pick is one of the free cells
			assert.Contains(t, []int{3, 7, 8}, cell)
			seen[cell] = true
		}

		// Then: every free cell gets picked eventually
		assert.Len(t, seen, 3)
	})

	t.Run("Error when the board is full", func(t *testing.T) {
		// Given: a tie board with no free cell
		board := game.Board{
			game.PlayerX, game.PlayerO, game.PlayerX,
			game.PlayerX, game.PlayerO, game.PlayerO,
			game.PlayerO, game.PlayerX, game.PlayerX,
		}

		// When: asking for a move anyway
		_, err := strategy.BestMove(board, game.PlayerX)

		// Then: an ErrNoAvailableMoves error should be returned
		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Error when the game is already won", func(t *testing.T) {
		// Given: a board O already won
		board := game.Board{
			game.PlayerO, game.PlayerO, game.PlayerO,
			game.PlayerX, game.PlayerX, game.EmptyCell,
			game.EmptyCell, game.EmptyCell, game.EmptyCell,
		}

		// When: asking for a move anyway
		_, err := strategy.BestMove(board, game.PlayerX)

		// Then: an ErrGameFinished error should be returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
