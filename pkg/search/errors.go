package search

import "errors"

var (
	// Returned when the search is asked to pick a move in a finished position,
	// or a position without any legal move
	ErrInvalidState = errors.New("search: position is terminal or has no legal moves")

	// Nil game operations passed to the engine
	ErrNilGame = errors.New("search: nil game")
)
