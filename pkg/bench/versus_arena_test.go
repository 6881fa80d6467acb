package bench

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/IlikeChooros/go-alphabeta/pkg/search"
	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingListener struct {
	mu       sync.Mutex
	moves    int
	records  map[int]GameRecord[ttt.Move]
	finished []VersusWorkerInfo[ttt.Move]
}

func newRecordingListener() *recordingListener {
	return &recordingListener{records: make(map[int]GameRecord[ttt.Move])}
}

func (l *recordingListener) OnMoveMade(info VersusWorkerInfo[ttt.Move]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.moves++
}

func (l *recordingListener) OnFinishedGame(record GameRecord[ttt.Move]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records[record.Index] = record
}

func (l *recordingListener) OnFinishedWork(info VersusWorkerInfo[ttt.Move]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.finished = append(l.finished, info)
}

func contestants(p2Depth int) (Contestant[*ttt.Position, ttt.Move, ttt.Player], Contestant[*ttt.Position, ttt.Move, ttt.Player]) {
	full := search.NewEngine(ttt.Operations())
	other := search.NewEngine(ttt.Operations())
	other.SetLimits(search.DefaultLimits().SetDepth(p2Depth))
	return Contestant[*ttt.Position, ttt.Move, ttt.Player]{Name: "alphabeta", Engine: full},
		Contestant[*ttt.Position, ttt.Move, ttt.Player]{Name: "limited", Engine: other}
}

func mustPosition(t *testing.T, notation string) *ttt.Position {
	t.Helper()
	pos, err := ttt.ParseNotation(notation)
	require.NoError(t, err)
	return pos
}

func TestVersusArenaPruningAgainstMinimax(t *testing.T) {
	p1 := Contestant[*ttt.Position, ttt.Move, ttt.Player]{
		Name: "alphabeta", Engine: search.NewEngine(ttt.Operations()),
	}
	p2 := Contestant[*ttt.Position, ttt.Move, ttt.Player]{
		Name: "minimax", Engine: search.NewEngine(ttt.Operations()), Minimax: true,
	}
	listener := newRecordingListener()
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	// Corner against center is a draw with best play
	arena := NewVersusArena(ttt.Operations(), mustPosition(t, "x2/1o1/3 x"), p1, p2).
		Setup(4, 2).
		WithListener(listener).
		WithMetrics(metrics)

	summary, err := arena.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalGames)
	assert.Equal(t, 4, summary.Draws)
	assert.Equal(t, 0, summary.P1Wins+summary.P2Wins)
	assert.Equal(t, "alphabeta", summary.P1Name)
	assert.Equal(t, "minimax", summary.P2Name)

	// Both engines pick the same moves, pruning only saves nodes
	assert.Less(t, summary.P1Nodes, summary.P2Nodes)
	require.Len(t, listener.records, 4)
	for index, record := range listener.records {
		assert.Equal(t, listener.records[0].Moves, record.Moves, "game %d", index)
		assert.Equal(t, index%2 == 0, record.P1First)
		assert.Empty(t, record.Opening)
		_, err := uuid.Parse(record.ID)
		assert.NoError(t, err)
	}
	assert.Equal(t, 4*len(listener.records[0].Moves), listener.moves)
	assert.Len(t, listener.finished, 2)

	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.games.WithLabelValues("draw")))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.nodes))
}

func TestVersusArenaFullSearchNeverLoses(t *testing.T) {
	p1, p2 := contestants(1)
	start, err := ttt.NewPosition(ttt.Cross, 3)
	require.NoError(t, err)

	arena := NewVersusArena(ttt.Operations(), start, p1, p2).
		Setup(10, 3).
		WithOpening(1, 7)

	summary, err := arena.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, summary.TotalGames)
	assert.Equal(t, 0, summary.P2Wins)
	assert.Equal(t, summary.P1Wins, summary.FirstToMoveWins+summary.SecondToMoveWins)
	assert.Equal(t, 3, summary.Workers)
}

func TestVersusArenaOpeningsAreSeeded(t *testing.T) {
	start, err := ttt.NewPosition(ttt.Cross, 3)
	require.NoError(t, err)

	play := func(workers int) map[int]GameRecord[ttt.Move] {
		p1, p2 := contestants(2)
		listener := newRecordingListener()
		_, err := NewVersusArena(ttt.Operations(), start, p1, p2).
			Setup(6, workers).
			WithOpening(3, 42).
			WithListener(listener).
			Run(context.Background())
		require.NoError(t, err)
		return listener.records
	}

	first, second := play(1), play(3)
	require.Len(t, first, 6)
	require.Len(t, second, 6)
	for index := range first {
		assert.Len(t, first[index].Opening, 3)
		assert.Equal(t, first[index].Opening, second[index].Opening)
		assert.Equal(t, first[index].Moves, second[index].Moves)
		assert.Equal(t, first[index].Result, second[index].Result)
	}
}

func TestVersusArenaRunTwice(t *testing.T) {
	p1, p2 := contestants(2)
	start, err := ttt.NewPosition(ttt.Cross, 3)
	require.NoError(t, err)

	arena := NewVersusArena(ttt.Operations(), start, p1, p2).
		Setup(3, 2).
		WithOpening(2, 5)

	first, err := arena.Run(context.Background())
	require.NoError(t, err)
	second, err := arena.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, second.TotalGames)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, arena.Total())
}

func TestVersusArenaCancelled(t *testing.T) {
	p1, p2 := contestants(0)
	start, err := ttt.NewPosition(ttt.Cross, 3)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := NewVersusArena(ttt.Operations(), start, p1, p2).
		Setup(4, 2).
		Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, summary.TotalGames)
}

func TestVersusArenaInvalidSetup(t *testing.T) {
	p1, p2 := contestants(0)

	_, err := NewVersusArena(ttt.Operations(), mustPosition(t, "xxx/oo1/3 o"), p1, p2).Run(context.Background())
	assert.ErrorIs(t, err, ErrTerminatedGame)

	start, err := ttt.NewPosition(ttt.Cross, 3)
	require.NoError(t, err)
	p2.Engine = nil
	_, err = NewVersusArena(ttt.Operations(), start, p1, p2).Run(context.Background())
	assert.ErrorIs(t, err, ErrNoContestant)
}

func TestVersusArenaLogsSummary(t *testing.T) {
	p1, p2 := contestants(0)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := NewVersusArena(ttt.Operations(), mustPosition(t, "xx1/oo1/3 x"), p1, p2).
		Setup(2, 1).
		WithLogger(logger).
		Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"arena finished"`)
	assert.Contains(t, out, `"msg":"game finished"`)
	assert.Contains(t, out, `"component":"arena"`)
}

func TestMatchResultString(t *testing.T) {
	assert.Equal(t, "player1", VersusPl1Win.String())
	assert.Equal(t, "player2", VersusPl2Win.String())
	assert.Equal(t, "draw", VersusDraw.String())
}
