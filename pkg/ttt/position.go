package ttt

import "fmt"

// Immutable NxN board with the player to move. Successor positions are
// created by Apply, which copies the whole grid.
type Position struct {
	size  int
	cells []Cell // row-major
	turn  Player
}

// Largest supported board size
const MaxSize = 64

// Empty board of given size, 'first' moves first
func NewPosition(first Player, size int) (*Position, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if !first.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayer, uint8(first))
	}

	return &Position{
		size:  size,
		cells: make([]Cell, size*size),
		turn:  first,
	}, nil
}

func (p *Position) Size() int {
	return p.size
}

// Player to move
func (p *Position) Turn() Player {
	return p.turn
}

func (p *Position) InBounds(row, col int) bool {
	return row >= 0 && row < p.size && col >= 0 && col < p.size
}

// Get the cell at given coordinates, fails with ErrOutOfRange
func (p *Position) Cell(row, col int) (Cell, error) {
	if !p.InBounds(row, col) {
		return CellEmpty, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfRange, row, col, p.size, p.size)
	}
	return p.at(row, col), nil
}

// Unchecked cell access
func (p *Position) at(row, col int) Cell {
	return p.cells[row*p.size+col]
}

// Number of non-empty cells
func (p *Position) Occupied() int {
	n := 0
	for _, c := range p.cells {
		if c != CellEmpty {
			n++
		}
	}
	return n
}

// Returns the position after the player to move plays 'mv'. The receiver
// is left untouched. Fails with ErrOutOfRange if the coordinates are outside
// of the board, or ErrCellOccupied (which also matches ErrOutOfRange) if
// the target cell isn't empty.
func (p *Position) Apply(mv Move) (*Position, error) {
	if !p.InBounds(mv.Row, mv.Col) {
		return nil, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfRange, mv, p.size, p.size)
	}

	idx := mv.Row*p.size + mv.Col
	if p.cells[idx] != CellEmpty {
		return nil, fmt.Errorf("%w: %v holds %v", ErrCellOccupied, mv, p.cells[idx])
	}

	cells := make([]Cell, len(p.cells))
	copy(cells, p.cells)
	cells[idx] = p.turn.Mark()

	return &Position{
		size:  p.size,
		cells: cells,
		turn:  p.turn.Opponent(),
	}, nil
}

// Rows of the board as "X", "O" and "" strings
func (p *Position) Rows() [][]string {
	rows := make([][]string, p.size)
	for i := range rows {
		rows[i] = make([]string, p.size)
		for j := range rows[i] {
			rows[i][j] = p.at(i, j).String()
		}
	}
	return rows
}

// Same position with the Cross and Nought roles exchanged
func (p *Position) Swapped() *Position {
	cells := make([]Cell, len(p.cells))
	for i, c := range p.cells {
		switch c {
		case CellCross:
			cells[i] = CellNought
		case CellNought:
			cells[i] = CellCross
		}
	}
	return &Position{size: p.size, cells: cells, turn: p.turn.Opponent()}
}

func (p *Position) String() string {
	return p.Notation()
}
