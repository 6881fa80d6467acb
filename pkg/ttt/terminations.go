package ttt

import "fmt"

type Termination int

const (
	TerminationNone      Termination = 0
	TerminationNoughtWon Termination = 1
	TerminationCrossWon  Termination = 2
	TerminationDraw      Termination = 4
)

func (t Termination) String() string {
	switch t {
	case TerminationNone:
		return "Undecided"
	case TerminationNoughtWon:
		return "NoughtWon"
	case TerminationCrossWon:
		return "CrossWon"
	case TerminationDraw:
		return "Draw"
	}
	return fmt.Sprintf("Termination(%d)", int(t))
}

// Result of the outcome detection: undecided, a draw, or a win with the
// winning line (Size() coordinates, in board order).
type Outcome struct {
	Termination Termination
	Winner      Player
	Line        []Move
}

func (o Outcome) Undecided() bool {
	return o.Termination == TerminationNone
}

func (o Outcome) IsDraw() bool {
	return o.Termination == TerminationDraw
}

func (o Outcome) IsWin() bool {
	return o.Termination == TerminationCrossWon || o.Termination == TerminationNoughtWon
}

func (o Outcome) String() string {
	if o.IsWin() {
		return fmt.Sprintf("%v won %v", o.Winner, o.Line)
	}
	return o.Termination.String()
}

// Number of crosses and noughts seen on a line
type lineCount struct {
	cross  int
	nought int
}

func (c *lineCount) add(cell Cell) {
	switch cell {
	case CellCross:
		c.cross++
	case CellNought:
		c.nought++
	}
}

func (c lineCount) full(n int) bool {
	return c.cross == n || c.nought == n
}

// Classify the position.
//
// Scans the rows top to bottom; at step i it counts row i, column i, and
// adds cell i of both main diagonals (the diagonal counts accumulate, so they
// can only complete on the last step). The first step where any of the counts
// reaches the board size is a win. Only the two main diagonals are checked,
// for boards bigger than 3x3 a complete shorter diagonal is not a win.
//
// The winning line is taken from the row, then the column, then the main
// diagonal, then the anti-diagonal; the winner is Nought if any of the four
// lines is full of noughts, otherwise Cross.
// Without a win, a position where every row is filled is a draw.
func (p *Position) Outcome() Outcome {
	n := p.size
	var diag0, diag1 lineCount
	filledRows := 0

	for i := 0; i < n; i++ {
		var row, col lineCount
		for j := 0; j < n; j++ {
			row.add(p.at(i, j))
			col.add(p.at(j, i))
		}
		diag0.add(p.at(i, i))
		diag1.add(p.at(n-1-i, i))

		if row.full(n) || col.full(n) || diag0.full(n) || diag1.full(n) {
			winner := Cross
			if row.nought == n || col.nought == n || diag0.nought == n || diag1.nought == n {
				winner = Nought
			}

			var line []Move
			switch {
			case row.full(n):
				line = lineOf(n, func(k int) Move { return Move{Row: i, Col: k} })
			case col.full(n):
				line = lineOf(n, func(k int) Move { return Move{Row: k, Col: i} })
			case diag0.full(n):
				line = lineOf(n, func(k int) Move { return Move{Row: k, Col: k} })
			default:
				line = lineOf(n, func(k int) Move { return Move{Row: n - 1 - k, Col: k} })
			}

			return Outcome{Termination: winTermination(winner), Winner: winner, Line: line}
		}

		if row.cross+row.nought == n {
			filledRows++
		}
	}

	if filledRows == n {
		return Outcome{Termination: TerminationDraw}
	}
	return Outcome{Termination: TerminationNone}
}

// Whether the position is won or drawn
func (p *Position) IsTerminated() bool {
	return !p.Outcome().Undecided()
}

func lineOf(n int, at func(k int) Move) []Move {
	line := make([]Move, n)
	for k := range line {
		line[k] = at(k)
	}
	return line
}

func winTermination(winner Player) Termination {
	if winner == Nought {
		return TerminationNoughtWon
	}
	return TerminationCrossWon
}
