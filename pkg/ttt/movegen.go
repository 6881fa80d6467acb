package ttt

// Every empty cell is a legal move, listed row by row, left to right.
// The engine keeps the first of equally valued moves, so this order
// decides its choice.
func (p *Position) GenerateMoves() []Move {
	moves := make([]Move, 0, len(p.cells))
	for row := 0; row < p.size; row++ {
		for col := 0; col < p.size; col++ {
			if p.at(row, col) == CellEmpty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}
