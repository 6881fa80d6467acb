package search

import (
	"fmt"
	"math"
)

// Plain minimax, visits the whole tree (down to the depth limit).
// Uses the same move ordering and tie-break as AlphaBeta, so both return
// the same value and the same move, AlphaBeta just visits fewer nodes.
func Minimax[S any, M comparable, P comparable](
	game Game[S, M, P], counter *NodeCounter, limits *Limits,
	state S, perspective P,
) (Evaluation[M], error) {
	if game == nil {
		return Evaluation[M]{}, ErrNilGame
	}
	return newSearcher(game, counter, limits).minimax(state, perspective, 0)
}

func (s *searcher[S, M, P]) minimax(state S, perspective P, ply int) (Evaluation[M], error) {
	s.counter.Increment()

	if s.game.GameOver(state) || ply >= s.maxDepth {
		return Evaluation[M]{Value: s.game.Heuristic(state, perspective)}, nil
	}

	moves := s.game.Moves(state)
	if len(moves) == 0 {
		return Evaluation[M]{Value: s.game.Heuristic(state, perspective)}, nil
	}

	maximizing := s.game.Turn(state) == perspective
	best := Evaluation[M]{Value: math.MaxInt}
	if maximizing {
		best.Value = math.MinInt
	}

	for _, move := range moves {
		child, err := s.game.Apply(state, move)
		if err != nil {
			return Evaluation[M]{}, fmt.Errorf("search: apply move %v: %w", move, err)
		}

		eval, err := s.minimax(child, perspective, ply+1)
		if err != nil {
			return Evaluation[M]{}, err
		}

		if ply == 0 && s.onRoot != nil {
			s.onRoot(move, eval.Value)
		}

		if !best.HasMove ||
			(maximizing && eval.Value > best.Value) ||
			(!maximizing && eval.Value < best.Value) {
			best = Evaluation[M]{Move: move, HasMove: true, Value: eval.Value}
		}
	}

	return best, nil
}
