package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/IlikeChooros/go-alphabeta/internal/logging"
	"github.com/IlikeChooros/go-alphabeta/pkg/search"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

/*
Arena benchmark subpackage, plays a series of games between two
engines searching the same game.
*/

var (
	ErrNoContestant   = errors.New("bench: both contestants need an engine")
	ErrTerminatedGame = errors.New("bench: starting position is already decided")
)

type VersusArena[S any, M comparable, P comparable] struct {
	VersusArenaStats
	Player1     Contestant[S, M, P]
	Player2     Contestant[S, M, P]
	NGames      int
	NWorkers    int
	RandomPlies int   // random moves played before the engines take over
	Seed        int64 // game i uses Seed+i for its opening
	Position    S
	game        search.Game[S, M, P]
	listener    ListenerLike[M]
	metrics     *Metrics
	logger      *slog.Logger
}

func NewVersusArena[S any, M comparable, P comparable](
	game search.Game[S, M, P], position S, p1, p2 Contestant[S, M, P],
) *VersusArena[S, M, P] {
	if p1.Name == "" {
		p1.Name = VersusPl1Win.String()
	}
	if p2.Name == "" {
		p2.Name = VersusPl2Win.String()
	}
	return &VersusArena[S, M, P]{
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NWorkers: 2,
		Position: position,
		game:     game,
		listener: DefaultListener[M]{},
		logger:   logging.Discard(),
	}
}

func (va *VersusArena[S, M, P]) Setup(nGames, nWorkers int) *VersusArena[S, M, P] {
	va.NGames = max(nGames, 0)
	va.NWorkers = max(nWorkers, 1)
	return va
}

func (va *VersusArena[S, M, P]) WithOpening(randomPlies int, seed int64) *VersusArena[S, M, P] {
	va.RandomPlies = max(randomPlies, 0)
	va.Seed = seed
	return va
}

func (va *VersusArena[S, M, P]) WithListener(listener ListenerLike[M]) *VersusArena[S, M, P] {
	if listener == nil {
		listener = DefaultListener[M]{}
	}
	va.listener = listener
	return va
}

func (va *VersusArena[S, M, P]) WithMetrics(metrics *Metrics) *VersusArena[S, M, P] {
	va.metrics = metrics
	return va
}

func (va *VersusArena[S, M, P]) WithLogger(logger *slog.Logger) *VersusArena[S, M, P] {
	if logger != nil {
		va.logger = logger.With("component", "arena")
	}
	return va
}

func (va *VersusArena[S, M, P]) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          va.NWorkers,
		P1Name:           va.Player1.Name,
		P2Name:           va.Player2.Name,
		P1Nodes:          va.P1Nodes(),
		P2Nodes:          va.P2Nodes(),
	}
}

// Play all of the games, blocking until they are finished, the context
// is cancelled or a search fails
func (va *VersusArena[S, M, P]) Run(ctx context.Context) (VersusSummaryInfo, error) {
	if va.Player1.Engine == nil || va.Player2.Engine == nil {
		return VersusSummaryInfo{}, ErrNoContestant
	}
	if va.game.GameOver(va.Position) || len(va.game.Moves(va.Position)) == 0 {
		return VersusSummaryInfo{}, ErrTerminatedGame
	}

	// Totals of a previous run are dropped
	va.VersusArenaStats = VersusArenaStats{}

	va.logger.Info("arena started",
		"games", va.NGames, "workers", va.NWorkers,
		"player1", va.Player1.Name, "player2", va.Player2.Name)

	// Equally distributed work between the workers, game indices are
	// interleaved so the openings do not depend on the worker count
	g, ctx := errgroup.WithContext(ctx)
	for id := range va.NWorkers {
		g.Go(func() error {
			return va.worker(ctx, id)
		})
	}

	err := g.Wait()
	summary := va.Summary()
	if err != nil {
		va.logger.Warn("arena stopped", "error", err, "finished", summary.TotalGames)
		return summary, err
	}

	va.logger.Info("arena finished",
		"player1_wins", summary.P1Wins, "player2_wins", summary.P2Wins, "draws", summary.Draws)
	return summary, nil
}

func (va *VersusArena[S, M, P]) worker(ctx context.Context, id int) error {
	local := VersusArenaStats{}
	nGames := 0
	for index := id; index < va.NGames; index += va.NWorkers {
		nGames++
	}

	finished := 0
	for index := id; index < va.NGames; index += va.NWorkers {
		record, err := va.playGame(ctx, id, index, nGames, finished)
		if err != nil {
			return err
		}

		va.record(&record.GameRecordHeader)
		local.record(&record.GameRecordHeader)
		va.metrics.observeGame(record.Result)
		va.listener.OnFinishedGame(record)
		finished++

		va.logger.Debug("game finished",
			"id", record.ID, "worker", id, "index", index,
			"result", record.Result.String(), "moves", len(record.Moves))
	}

	va.listener.OnFinishedWork(VersusWorkerInfo[M]{
		WorkerID:      id,
		NGames:        nGames,
		FinishedGames: finished,
		P1Wins:        local.P1Wins(),
		P2Wins:        local.P2Wins(),
		Draws:         local.Draws(),
	})
	return nil
}

func (va *VersusArena[S, M, P]) playGame(ctx context.Context, workerID, index, nGames, finished int) (GameRecord[M], error) {
	record := GameRecord[M]{
		GameRecordHeader: GameRecordHeader{
			ID:       uuid.NewString(),
			WorkerID: workerID,
			Index:    index,
			// Contestants alternate who moves first
			P1First: index%2 == 0,
		},
	}

	state, opening, err := va.opening(index)
	if err != nil {
		return record, err
	}
	record.Opening = opening

	first, second := va.Player1, va.Player2
	firstNodes, secondNodes := &record.P1Nodes, &record.P2Nodes
	if !record.P1First {
		first, second = second, first
		firstNodes, secondNodes = secondNodes, firstNodes
	}

	firstSide := va.game.Turn(state)
	for ply := 0; !va.game.GameOver(state) && len(va.game.Moves(state)) > 0; ply++ {
		if err := ctx.Err(); err != nil {
			return record, err
		}

		mover, nodes := first, firstNodes
		if ply%2 == 1 {
			mover, nodes = second, secondNodes
		}

		result, err := mover.search(state)
		if err != nil {
			return record, fmt.Errorf("bench: game %d, %s: %w", index, mover.Name, err)
		}
		*nodes += result.Nodes
		va.metrics.observeSearch(mover.Name, result.Nodes)

		state, err = va.game.Apply(state, result.Move)
		if err != nil {
			return record, fmt.Errorf("bench: game %d, %s: %w", index, mover.Name, err)
		}
		record.Moves = append(record.Moves, result.Move)

		va.listener.OnMoveMade(VersusWorkerInfo[M]{
			WorkerID:      workerID,
			NGames:        nGames,
			FinishedGames: finished,
			GameMoveNum:   len(record.Moves),
			Moves:         record.Moves,
			P1Wins:        va.P1Wins(),
			P2Wins:        va.P2Wins(),
			Draws:         va.Draws(),
		})
	}

	// Sign of the final evaluation from the first engine's side
	score := va.game.Heuristic(state, firstSide)
	switch {
	case score == 0:
		record.Result = VersusDraw
	case (score > 0) == record.P1First:
		record.Result = VersusPl1Win
	default:
		record.Result = VersusPl2Win
	}
	return record, nil
}

// Play the random opening of game 'index', stops early if the game ends
func (va *VersusArena[S, M, P]) opening(index int) (S, []M, error) {
	r := rand.New(rand.NewSource(va.Seed + int64(index)))
	state := va.Position
	moves := make([]M, 0, va.RandomPlies)

	for range va.RandomPlies {
		if va.game.GameOver(state) {
			break
		}
		legal := va.game.Moves(state)
		if len(legal) == 0 {
			break
		}

		move := legal[r.Intn(len(legal))]
		next, err := va.game.Apply(state, move)
		if err != nil {
			return state, moves, fmt.Errorf("bench: opening of game %d: %w", index, err)
		}
		state = next
		moves = append(moves, move)
	}
	return state, moves, nil
}
