package ttt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidNotation = errors.New("ttt: invalid notation")

// String notation of the position, much like the FEN of a chessboard:
//
//	<row>/<row>/.../<row> <turn>
//
// Each row lists its cells left to right, 'x' and 'o' for the marks and
// a number for a run of empty cells. <turn> is either 'x' or 'o'.
//
// Examples:
//
// * 3/3/3 x (empty 3x3 board, cross to move)
//
// * xx1/oo1/3 x
func (p *Position) Notation() string {
	builder := strings.Builder{}

	for row := 0; row < p.size; row++ {
		empty := 0
		for col := 0; col < p.size; col++ {
			switch cell := p.at(row, col); cell {
			case CellCross, CellNought:
				if empty > 0 {
					builder.WriteString(strconv.Itoa(empty))
					empty = 0
				}
				builder.WriteString(strings.ToLower(cell.String()))
			default:
				empty++
			}
		}

		if empty > 0 {
			builder.WriteString(strconv.Itoa(empty))
		}

		if row != p.size-1 {
			builder.WriteByte('/')
		}
	}

	builder.WriteByte(' ')
	builder.WriteString(strings.ToLower(p.turn.String()))
	return builder.String()
}

// Parse the position from its notation, see Position.Notation
func ParseNotation(notation string) (*Position, error) {
	fields := strings.Fields(notation)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: want '<rows> <turn>', got %q", ErrInvalidNotation, notation)
	}

	turn, err := ParsePlayer(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNotation, err)
	}

	rows := strings.Split(fields[0], "/")
	size := len(rows)
	pos, err := NewPosition(turn, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNotation, err)
	}

	for i, row := range rows {
		col := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			switch {
			case ch == 'x' || ch == 'X' || ch == 'o' || ch == 'O':
				if col >= size {
					return nil, fmt.Errorf("%w: row %d is longer than %d", ErrInvalidNotation, i, size)
				}
				pos.cells[i*size+col] = CellCross
				if ch == 'o' || ch == 'O' {
					pos.cells[i*size+col] = CellNought
				}
				col++
			case ch >= '1' && ch <= '9':
				k := j
				for k < len(row) && row[k] >= '0' && row[k] <= '9' {
					k++
				}
				run, err := strconv.Atoi(row[j:k])
				if err != nil || run > size-col {
					return nil, fmt.Errorf("%w: row %d is longer than %d", ErrInvalidNotation, i, size)
				}
				col += run
				j = k - 1
			default:
				return nil, fmt.Errorf("%w: unexpected %q in row %d", ErrInvalidNotation, ch, i)
			}
		}

		if col != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidNotation, i, col, size)
		}
	}

	return pos, nil
}

// Build the position from rows of "X", "O" and "" strings (case insensitive,
// "." and " " are also empty), all rows must have len(rows) cells
func FromRows(turn Player, rows [][]string) (*Position, error) {
	pos, err := NewPosition(turn, len(rows))
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) != pos.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidNotation, i, len(row), pos.size)
		}
		for j, v := range row {
			switch strings.ToUpper(strings.TrimSpace(v)) {
			case "X":
				pos.cells[i*pos.size+j] = CellCross
			case "O":
				pos.cells[i*pos.size+j] = CellNought
			case "", ".":
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrInvalidNotation, v, i, j)
			}
		}
	}

	return pos, nil
}
