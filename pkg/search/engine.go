package search

import (
	"fmt"
	"math"
	"time"
)

// Result of a top-level search
type Result[M comparable] struct {
	Move    M
	Value   int
	Nodes   uint64
	Elapsed time.Duration
}

func (r Result[M]) String() string {
	return fmt.Sprintf("Result={Move=%v, Value=%d, Nodes=%d, Elapsed=%v}", r.Move, r.Value, r.Nodes, r.Elapsed)
}

// Best move finder for any game implementing the Game operations.
//
// Configure the engine (limits, listener) before using it, after that
// Search may be called from many goroutines at once: every call owns
// its node counter, the engine itself is only read.
type Engine[S any, M comparable, P comparable] struct {
	game     Game[S, M, P]
	limits   Limits
	listener StatsListener[M]
}

func NewEngine[S any, M comparable, P comparable](game Game[S, M, P]) *Engine[S, M, P] {
	return &Engine[S, M, P]{
		game:     game,
		limits:   *DefaultLimits(),
		listener: NewStatsListener[M](),
	}
}

func (e *Engine[S, M, P]) SetLimits(limits *Limits) {
	if limits == nil {
		limits = DefaultLimits()
	}
	e.limits = *limits
}

// Copy of the current limits
func (e *Engine[S, M, P]) Limits() *Limits {
	limits := e.limits
	return &limits
}

func (e *Engine[S, M, P]) SetListener(listener StatsListener[M]) {
	e.listener = listener
}

// Find the best move for the player to move, using alpha-beta pruning.
// Fails with ErrInvalidState if the game is over or there is no legal move.
func (e *Engine[S, M, P]) Search(state S) (Result[M], error) {
	return e.run(state, true)
}

// Same as Search, but without pruning, meant for verification and comparison
func (e *Engine[S, M, P]) SearchMinimax(state S) (Result[M], error) {
	return e.run(state, false)
}

func (e *Engine[S, M, P]) run(state S, pruning bool) (Result[M], error) {
	if e.game == nil {
		return Result[M]{}, ErrNilGame
	}

	if e.game.GameOver(state) || len(e.game.Moves(state)) == 0 {
		return Result[M]{}, ErrInvalidState
	}

	// Counter is local to this call, so concurrent searches can't interfere
	counter := &NodeCounter{}
	counter.Reset()

	s := newSearcher(e.game, counter, &e.limits)
	s.onRoot = e.listener.rootHook(counter)

	start := time.Now()
	perspective := e.game.Turn(state)

	var (
		eval Evaluation[M]
		err  error
	)
	if pruning {
		eval, err = s.alphaBeta(math.MinInt, math.MaxInt, state, perspective, 0)
	} else {
		eval, err = s.minimax(state, perspective, 0)
	}
	if err != nil {
		return Result[M]{}, err
	}

	if !eval.HasMove {
		return Result[M]{}, fmt.Errorf("%w: search returned no move", ErrInvalidState)
	}

	result := Result[M]{
		Move:    eval.Move,
		Value:   eval.Value,
		Nodes:   counter.Count(),
		Elapsed: time.Since(start),
	}

	e.listener.invokeStop(SearchStats[M]{
		BestMove: result.Move,
		Value:    result.Value,
		Nodes:    result.Nodes,
		TimeMs:   elapsedMs(start),
		Limits:   e.limits,
		Pruning:  pruning,
	})

	return result, nil
}
