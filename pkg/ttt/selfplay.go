package ttt

import "fmt"

// Game played by the engine against itself
type PlayedGame struct {
	Start   *Position
	Final   *Position
	Moves   []Move
	Outcome Outcome
	Nodes   uint64 // total over all searches
}

// Let the engine play both sides from 'start' until the game ends
func (m *Model) SelfPlay(start *Position) (PlayedGame, error) {
	if start == nil {
		return PlayedGame{}, ErrNilPosition
	}

	game := PlayedGame{Start: start, Final: start}
	pos := start
	for !pos.IsTerminated() {
		result, err := m.FindBestMoveWithStats(pos)
		if err != nil {
			return game, fmt.Errorf("self-play ply %d: %w", len(game.Moves)+1, err)
		}

		next, err := pos.Apply(result.Move)
		if err != nil {
			return game, fmt.Errorf("self-play ply %d: %w", len(game.Moves)+1, err)
		}

		game.Moves = append(game.Moves, result.Move)
		game.Nodes += result.Nodes
		pos = next
		game.Final = pos
	}

	game.Outcome = pos.Outcome()
	m.logger.Info("self-play finished",
		"start", start.Notation(),
		"plies", len(game.Moves),
		"outcome", game.Outcome.String(),
		"nodes", game.Nodes,
	)
	return game, nil
}
