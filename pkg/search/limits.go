package search

import (
	"encoding/json"
	"math"
	"strings"
)

// Search limits. With the default limits the search always runs to the
// terminal positions, a depth limit makes it score the positions at the
// horizon with the game's heuristic instead.
type Limits struct {
	Depth int
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return strings.TrimSpace(builder.String())
}

const (
	DefaultDepthLimit int = math.MaxInt
)

func DefaultLimits() *Limits {
	return &Limits{
		Depth: DefaultDepthLimit,
	}
}

// Set the maximum depth (in plies) of the search, values below 1 remove the limit
func (l *Limits) SetDepth(depth int) *Limits {
	if depth < 1 {
		depth = DefaultDepthLimit
	}
	l.Depth = depth
	return l
}

// Whether the search will always reach the terminal positions
func (l *Limits) Infinite() bool {
	return l.Depth == DefaultDepthLimit
}

func (l *Limits) depth() int {
	if l == nil || l.Depth < 1 {
		return DefaultDepthLimit
	}
	return l.Depth
}
