package console

import (
	"bufio"
	"fmt"
	"io"
)

// Reader reads whole lines from the underlying input.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(in io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(in)}
}

// ReadLine returns the next line without its terminator. It returns
// io.EOF once the input is exhausted.
func (that *Reader) ReadLine() (string, error) {
	if that.scanner.Scan() {
		return that.scanner.Text(), nil
	}

	if err := that.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return "", io.EOF
}
