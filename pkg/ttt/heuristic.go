package ttt

// Score of a won position
const WinScore = 27

// Score the position from the perspective player's point of view:
// 0 for a draw, +/-WinScore for a win/loss, otherwise the number of
// the player's marks minus the number of the opponent's marks.
// An invalid perspective scores 0.
func (p *Position) Heuristic(perspective Player) int {
	if !perspective.Valid() {
		return 0
	}

	outcome := p.Outcome()
	switch {
	case outcome.IsDraw():
		return 0
	case outcome.IsWin():
		if outcome.Winner == perspective {
			return WinScore
		}
		return -WinScore
	}

	ours, theirs := perspective.Mark(), perspective.Opponent().Mark()
	score := 0
	for _, c := range p.cells {
		switch c {
		case ours:
			score++
		case theirs:
			score--
		}
	}
	return score
}
