package search

// Operations the search needs from a concrete game.
//
// S is the position (it must behave as an immutable value, the search shares
// it freely between recursive calls), M is the move and P the player.
type Game[S any, M comparable, P comparable] interface {
	// Player whose turn it is in the given position
	Turn(S) P
	// True for a won or drawn position, the search never expands those
	GameOver(S) bool
	// Score of the position as seen by the perspective player,
	// higher is better for that player
	Heuristic(S, P) int
	// Legal moves, the order decides which of the equally valued moves is chosen
	Moves(S) []M
	// Returns a new position with the move played, the given one stays unchanged
	Apply(S, M) (S, error)
}

// Value of a searched position, Move is only set (HasMove) when the
// position was expanded
type Evaluation[M comparable] struct {
	Move    M
	HasMove bool
	Value   int
}
