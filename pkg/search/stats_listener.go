package search

import "time"

// Statistics of a finished top-level search
type SearchStats[M comparable] struct {
	BestMove M
	Value    int
	Nodes    uint64
	TimeMs   int
	Limits   Limits
	Pruning  bool // false for the plain minimax search
}

// Root move evaluation, reported after each of the root's children is searched
type RootMoveStats[M comparable] struct {
	Move  M
	Value int
	Nodes uint64 // nodes visited so far in this search
}

type ListenerFunc[M comparable] func(SearchStats[M])
type RootMoveFunc[M comparable] func(RootMoveStats[M])

// Diagnostic callbacks of the engine, both are called synchronously on the
// searching goroutine. When the engine is used by multiple goroutines at once,
// the callbacks must be safe for concurrent use.
type StatsListener[M comparable] struct {
	// called once the search ends
	onStop ListenerFunc[M]

	// called after every root move is evaluated
	onRootMove RootMoveFunc[M]
}

func NewStatsListener[M comparable]() StatsListener[M] {
	return StatsListener[M]{}
}

// Attach 'on search end' callback
func (listener *StatsListener[M]) OnStop(onStop ListenerFunc[M]) *StatsListener[M] {
	listener.onStop = onStop
	return listener
}

// Attach root move callback, the values of pruned root moves are only bounds
// (at most the current best value), not their exact values
func (listener *StatsListener[M]) OnRootMove(onRootMove RootMoveFunc[M]) *StatsListener[M] {
	listener.onRootMove = onRootMove
	return listener
}

func (listener *StatsListener[M]) invokeStop(stats SearchStats[M]) {
	if listener.onStop != nil {
		listener.onStop(stats)
	}
}

func (listener *StatsListener[M]) rootHook(counter *NodeCounter) func(M, int) {
	if listener.onRootMove == nil {
		return nil
	}
	f := listener.onRootMove
	return func(move M, value int) {
		f(RootMoveStats[M]{Move: move, Value: value, Nodes: counter.Count()})
	}
}

func elapsedMs(start time.Time) int {
	return max(int(time.Since(start).Milliseconds()), 0)
}
