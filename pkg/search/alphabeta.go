package search

import (
	"fmt"
	"math"
)

// Shared state of one top-level search: the game operations, the node
// counter and the depth limit. Never shared between searches.
type searcher[S any, M comparable, P comparable] struct {
	game     Game[S, M, P]
	counter  *NodeCounter
	maxDepth int
	onRoot   func(move M, value int)
}

func newSearcher[S any, M comparable, P comparable](game Game[S, M, P], counter *NodeCounter, limits *Limits) *searcher[S, M, P] {
	if counter == nil {
		counter = &NodeCounter{}
	}
	return &searcher[S, M, P]{
		game:     game,
		counter:  counter,
		maxDepth: limits.depth(),
	}
}

// Minimax with alpha-beta pruning.
//
// Evaluates 'state' from the perspective player's point of view: nodes where
// it's the perspective player's turn are maximizing, the others minimizing.
// Moves are tried in the order returned by the game, and only a strictly better
// value replaces the current best move, so the first of the equally valued moves wins.
// Terminal positions (and the positions at the depth limit) return no move.
//
// The counter is incremented once per visited node, it's not reset here.
func AlphaBeta[S any, M comparable, P comparable](
	game Game[S, M, P], counter *NodeCounter, limits *Limits,
	alpha, beta int, state S, perspective P,
) (Evaluation[M], error) {
	if game == nil {
		return Evaluation[M]{}, ErrNilGame
	}
	return newSearcher(game, counter, limits).alphaBeta(alpha, beta, state, perspective, 0)
}

func (s *searcher[S, M, P]) alphaBeta(alpha, beta int, state S, perspective P, ply int) (Evaluation[M], error) {
	s.counter.Increment()

	if s.game.GameOver(state) || ply >= s.maxDepth {
		return Evaluation[M]{Value: s.game.Heuristic(state, perspective)}, nil
	}

	moves := s.game.Moves(state)
	if len(moves) == 0 {
		// Blocked position the game didn't report as over, nothing to choose from
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

		eval, err := s.alphaBeta(alpha, beta, child, perspective, ply+1)
		if err != nil {
			return Evaluation[M]{}, err
		}

		if ply == 0 && s.onRoot != nil {
			s.onRoot(move, eval.Value)
		}

		if maximizing {
			if !best.HasMove || eval.Value > best.Value {
				best = Evaluation[M]{Move: move, HasMove: true, Value: eval.Value}
			}
			alpha = max(alpha, best.Value)
		} else {
			if !best.HasMove || eval.Value < best.Value {
				best = Evaluation[M]{Move: move, HasMove: true, Value: eval.Value}
			}
			beta = min(beta, best.Value)
		}

		// The opponent won't allow this line, skip the remaining siblings
		if alpha >= beta {
			break
		}
	}

	return best, nil
}
