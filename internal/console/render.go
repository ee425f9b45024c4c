package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Lkarthikeya/CODSOFT/internal/game"
)

// FormatBoard renders the grid the way players see it: taken cells show
// their mark, free cells show their 1-based position as a hint.
func FormatBoard(board game.Board) string {
	cell := func(i int) string {
		if board[i] == game.EmptyCell {
			return strconv.Itoa(i + 1)
		}

		return board[i]
	}

	var builder strings.Builder
	for row := 0; row < 3; row++ {
		fmt.Fprintf(&builder, " %s | %s | %s ", cell(row*3), cell(row*3+1), cell(row*3+2))
		if row < 2 {
			builder.WriteString("\n---+---+---\n")
		}
	}

	return builder.String()
}
