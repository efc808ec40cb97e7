package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// EmptyPlaceholder is printed for cells without a mark.
const EmptyPlaceholder = "N"

type Console struct {
	reader *bufio.Reader
	writer io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// RenderBoard prints one line per row followed by a blank line.
func (that *Console) RenderBoard(board *entity.Board) {
	var sb strings.Builder

	for _, row := range board {
		cells := make([]string, len(row))
		for i, mark := range row {
			cells[i] = string(mark)
			if mark == entity.EmptyCell {
				cells[i] = EmptyPlaceholder
			}
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	fmt.Fprint(that.writer, sb.String())
}

func (that *Console) Println(msg string) {
	fmt.Fprintln(that.writer, msg)
}

// ReadLine returns the next input line without its line ending.
func (that *Console) ReadLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", apperror.ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question until it gets y, yes, n or no.
func (that *Console) Confirm(question string) (bool, error) {
	for {
		that.Println(question)

		answer, err := that.ReadLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
