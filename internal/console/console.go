package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Lkarthikeya/CODSOFT/internal/game"
)

// Console is the line-oriented game UI: it prompts until the input is
// usable and keeps the board drawing in one place.
type Console struct {
	reader *Reader
	out    io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: NewReader(in),
		out:    out,
	}
}

func (that *Console) ShowWelcome() {
	fmt.Fprintln(that.out, "Welcome to Tic-Tac-Toe with an unbeatable AI!")
}

// PromptMark asks which mark the human plays until the answer is X or O,
// in any case.
func (that *Console) PromptMark() (string, error) {
	for {
		fmt.Fprint(that.out, "Do you want to be X or O? ")

		input, err := that.reader.ReadLine()
		if err != nil {
			return "", err
		}

		switch strings.ToUpper(strings.TrimSpace(input)) {
		case game.PlayerX:
			return game.PlayerX, nil
		case game.PlayerO:
			return game.PlayerO, nil
		}

		fmt.Fprintln(that.out, "Please enter X or O.")
	}
}

// PromptHumanFirst asks who opens the game. An empty answer keeps the
// human first.
func (that *Console) PromptHumanFirst() (bool, error) {
	for {
		fmt.Fprint(that.out, "Who moves first? (H)uman or (A)I? [H] ")

		input, err := that.reader.ReadLine()
		if err != nil {
			return false, err
		}

		switch strings.ToUpper(strings.TrimSpace(input)) {
		case "", "H":
			return true, nil
		case "A":
			return false, nil
		}

		fmt.Fprintln(that.out, "Please enter H or A, or press Enter for Human.")
	}
}

// PromptMove asks for a cell in 1-9 until the answer names an empty cell,
// and returns it as a 0-8 index. Each kind of bad input gets its own
// message.
func (that *Console) PromptMove(board game.Board, mark string) (int, error) {
	for {
		fmt.Fprintf(that.out, "Your move (%s). Enter 1-9: ", mark)

		input, err := that.reader.ReadLine()
		if err != nil {
			return 0, err
		}

		position, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			fmt.Fprintln(that.out, "Please enter a valid number.")
			continue
		}

		cell := position - 1
		if cell < 0 || cell >= len(board) {
			fmt.Fprintln(that.out, "Please enter a number from 1 to 9.")
			continue
		}

		if board[cell] != game.EmptyCell {
			fmt.Fprintln(that.out, "That spot is already taken. Choose another.")
			continue
		}

		return cell, nil
	}
}

func (that *Console) ShowBoard(board game.Board, caption string) {
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, caption)
	fmt.Fprintln(that.out, FormatBoard(board))
}

func (that *Console) AnnounceThinking() {
	fmt.Fprintln(that.out, "AI is thinking...")
}

func (that *Console) AnnounceMove(cell int, mark string) {
	fmt.Fprintf(that.out, "AI plays at position %d (%s)\n", cell+1, mark)
}

// AnnounceOutcome reports the verdict from the human's side of the board.
func (that *Console) AnnounceOutcome(winner, humanMark string) {
	switch winner {
	case humanMark:
		fmt.Fprintln(that.out, "Wow, you actually beat the AI! (This isn't supposed to happen!)")
	case game.OpponentOf(humanMark):
		fmt.Fprintln(that.out, "AI wins. Better luck next time!")
	default:
		fmt.Fprintln(that.out, "It's a draw!")
	}
}

func (that *Console) AnnounceAborted() {
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, "Game aborted.")
}
