package ttt

import (
	"errors"
	"fmt"
	"strings"
)

type Player uint8
type Cell uint8

const (
	Cross  Player = 1
	Nought Player = 2
)

// Cell values match the player values, so Cell(player) is that player's mark
const (
	CellEmpty  Cell = 0
	CellCross  Cell = Cell(Cross)
	CellNought Cell = Cell(Nought)
)

var (
	ErrOutOfRange    = errors.New("ttt: move out of range")
	ErrCellOccupied  = fmt.Errorf("%w: cell is not empty", ErrOutOfRange)
	ErrInvalidSize   = fmt.Errorf("ttt: board size must be within 1 and %d", MaxSize)
	ErrInvalidPlayer = errors.New("ttt: invalid player")
	ErrNilPosition   = errors.New("ttt: nil position")
)

func (p Player) Valid() bool {
	return p == Cross || p == Nought
}

func (p Player) Opponent() Player {
	if p == Cross {
		return Nought
	}
	return Cross
}

// Cell holding this player's mark
func (p Player) Mark() Cell {
	return Cell(p)
}

func (p Player) String() string {
	switch p {
	case Cross:
		return "X"
	case Nought:
		return "O"
	}
	return fmt.Sprintf("Player(%d)", uint8(p))
}

// Parse "x", "cross", "o", "nought" (any case)
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "cross":
		return Cross, nil
	case "o", "nought", "circle":
		return Nought, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPlayer, s)
}

func (c Cell) String() string {
	switch c {
	case CellCross:
		return "X"
	case CellNought:
		return "O"
	}
	return ""
}
