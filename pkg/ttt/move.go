package ttt

import "fmt"

// A move is a board coordinate. It carries no reference to any board,
// so it's up to the caller to check it against one (see Position.Apply).
type Move struct {
	Row int
	Col int
}

func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
