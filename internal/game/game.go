package game

import (
	"errors"
	"fmt"

	"github.com/Lkarthikeya/CODSOFT/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrInvalidCell = errors.New("invalid cell index")

type Game struct {
	Board  Board
	Turn   string
	Winner string
	Status string
}

// NewGame starts a game with firstMark to move. X opens in the classic
// setup, but a game may start with O when that seat goes first.
func NewGame(firstMark string) *Game {
	return &Game{
		Board:  Board{},
		Turn:   firstMark,
		Winner: "",
		Status: StatusOngoing,
	}
}

// MakeMove places mark on cell and passes the turn. The turn flag changes
// nowhere else, so the seats alternate strictly until the game finishes.
func (that *Game) MakeMove(mark string, cell int) error {
	if that.Status == StatusFinished {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = mark

	switch result := that.Board.Result(); result {
	case PlayerX, PlayerO:
		that.Winner = result
		that.Status = StatusFinished
		that.Turn = ""
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	default:
		that.Turn = OpponentOf(mark)
	}

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
