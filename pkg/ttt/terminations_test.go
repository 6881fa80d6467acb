package ttt

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		want     Outcome
	}{
		{"empty", "3/3/3 x", Outcome{}},
		{"one move", "1x1/3/3 o", Outcome{}},
		{
			"top row", "xxx/oo1/3 o",
			Outcome{TerminationCrossWon, Cross, []Move{{0, 0}, {0, 1}, {0, 2}}},
		},
		{
			"bottom row", "xx1/x2/ooo x",
			Outcome{TerminationNoughtWon, Nought, []Move{{2, 0}, {2, 1}, {2, 2}}},
		},
		{
			"middle column", "xo1/xo1/1o1 x",
			Outcome{TerminationNoughtWon, Nought, []Move{{0, 1}, {1, 1}, {2, 1}}},
		},
		{
			"main diagonal", "xoo/1x1/2x o",
			Outcome{TerminationCrossWon, Cross, []Move{{0, 0}, {1, 1}, {2, 2}}},
		},
		{
			"anti-diagonal", "xxo/xo1/o2 x",
			Outcome{TerminationNoughtWon, Nought, []Move{{2, 0}, {1, 1}, {0, 2}}},
		},
		{"draw", "xox/xoo/oxx o", Outcome{Termination: TerminationDraw}},
		// both the first and the last column are complete, the first one is scanned first
		{
			"first complete column", "x1o/x1o/xoo x",
			Outcome{TerminationCrossWon, Cross, []Move{{0, 0}, {1, 0}, {2, 0}}},
		},
		{
			"row before column", "xxx/x2/x2 o",
			Outcome{TerminationCrossWon, Cross, []Move{{0, 0}, {0, 1}, {0, 2}}},
		},
		{
			"4x4 column", "1o1x/1o1x/1o1x/3x o",
			Outcome{TerminationCrossWon, Cross, []Move{{0, 3}, {1, 3}, {2, 3}, {3, 3}}},
		},
		{
			"4x4 anti-diagonal", "3o/2o1/1o2/oxxx x",
			Outcome{TerminationNoughtWon, Nought, []Move{{3, 0}, {2, 1}, {1, 2}, {0, 3}}},
		},
		{
			"1x1", "o x",
			Outcome{TerminationNoughtWon, Nought, []Move{{0, 0}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustNotation(t, tt.notation)
			outcome := pos.Outcome()
			assert.Equal(t, tt.want, outcome)
			assert.Equal(t, !tt.want.Undecided(), pos.IsTerminated())
		})
	}
}

func TestOutcomeOnlyMainDiagonals(t *testing.T) {
	// Off-center diagonals of a 4x4 board never count as a line
	pos := mustNotation(t, "1x2/2x1/3x/o1oo o")
	assert.True(t, pos.Outcome().Undecided())

	pos = mustNotation(t, "x3/1x2/2x1/ooo1 o")
	assert.True(t, pos.Outcome().Undecided())
}

func TestOutcomeLastEmptyCell(t *testing.T) {
	// Nobody can win with the last cell, but it's still undecided until it's filled
	pos := mustNotation(t, "xox/xoo/ox1 x")
	assert.True(t, pos.Outcome().Undecided())
	assert.Equal(t, []Move{{2, 2}}, pos.GenerateMoves())

	next, err := pos.Apply(NewMove(2, 2))
	require.NoError(t, err)
	assert.True(t, next.Outcome().IsDraw())
}

// Random playout from given position, stops at the first terminated position
func randomPlayout(r *rand.Rand, pos *Position, maxPlies int) *Position {
	for ply := 0; ply < maxPlies && !pos.IsTerminated(); ply++ {
		moves := pos.GenerateMoves()
		next, err := pos.Apply(moves[r.Intn(len(moves))])
		if err != nil {
			panic(err)
		}
		pos = next
	}
	return pos
}

func TestOutcomeSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		size := 3 + i%2
		start, err := NewPosition(Cross, size)
		require.NoError(t, err)
		pos := randomPlayout(r, start, size*size)

		t.Run(fmt.Sprintf("Playout-%d", i), func(t *testing.T) {
			outcome := pos.Outcome()
			swapped := pos.Swapped().Outcome()

			assert.Equal(t, outcome.Line, swapped.Line, pos.Notation())
			switch {
			case outcome.IsWin():
				assert.Equal(t, outcome.Winner.Opponent(), swapped.Winner)
			default:
				assert.Equal(t, outcome.Termination, swapped.Termination)
			}
		})
	}
}

func TestHeuristic(t *testing.T) {
	tests := []struct {
		notation string
		cross    int
		nought   int
	}{
		{"3/3/3 x", 0, 0},
		{"1x1/3/3 o", 1, -1},
		{"1x1/1o1/2x o", 1, -1},
		{"xo1/xo1/3 x", 0, 0},
		{"xxx/oo1/3 o", WinScore, -WinScore},
		{"xo1/xo1/1o1 x", -WinScore, WinScore},
		{"xox/xoo/oxx o", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			pos := mustNotation(t, tt.notation)
			assert.Equal(t, tt.cross, pos.Heuristic(Cross))
			assert.Equal(t, tt.nought, pos.Heuristic(Nought))
			assert.Zero(t, pos.Heuristic(Player(0)))
		})
	}
}

func TestHeuristicTerminalValues(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 300; i++ {
		start, err := NewPosition(Player(1+i%2), 3)
		require.NoError(t, err)
		pos := randomPlayout(r, start, 9)
		require.True(t, pos.IsTerminated())

		outcome := pos.Outcome()
		for _, perspective := range []Player{Cross, Nought} {
			h := pos.Heuristic(perspective)
			switch {
			case outcome.IsDraw():
				assert.Equal(t, 0, h)
			case outcome.Winner == perspective:
				assert.Equal(t, WinScore, h)
			default:
				assert.Equal(t, -WinScore, h)
			}
		}
	}
}
