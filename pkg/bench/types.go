package bench

import (
	"sync/atomic"

	"github.com/IlikeChooros/go-alphabeta/pkg/search"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player1"
	case VersusPl2Win:
		return "player2"
	}
	return "draw"
}

// One side of the arena: an engine, optionally searching without pruning
type Contestant[S any, M comparable, P comparable] struct {
	Name    string
	Engine  *search.Engine[S, M, P]
	Minimax bool
}

func (c Contestant[S, M, P]) search(state S) (search.Result[M], error) {
	if c.Minimax {
		return c.Engine.SearchMinimax(state)
	}
	return c.Engine.Search(state)
}

type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
	p1Nodes          uint64
	p2Nodes          uint64
}

func (vas *VersusArenaStats) Total() int {
	return int(vas.P1Wins() + vas.P2Wins() + vas.Draws())
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

// Nodes searched by player 1 over all games
func (vas *VersusArenaStats) P1Nodes() uint64 {
	return atomic.LoadUint64(&vas.p1Nodes)
}

func (vas *VersusArenaStats) P2Nodes() uint64 {
	return atomic.LoadUint64(&vas.p2Nodes)
}

func (vas *VersusArenaStats) record(game *GameRecordHeader) {
	switch game.Result {
	case VersusDraw:
		atomic.AddUint32(&vas.draws, 1)
	case VersusPl1Win:
		atomic.AddUint32(&vas.p1Wins, 1)
	case VersusPl2Win:
		atomic.AddUint32(&vas.p2Wins, 1)
	}

	if game.Result != VersusDraw {
		if (game.Result == VersusPl1Win) == game.P1First {
			atomic.AddUint32(&vas.firstToMoveWins, 1)
		} else {
			atomic.AddUint32(&vas.secondToMoveWins, 1)
		}
	}

	atomic.AddUint64(&vas.p1Nodes, game.P1Nodes)
	atomic.AddUint64(&vas.p2Nodes, game.P2Nodes)
}

// Move independent part of a finished game
type GameRecordHeader struct {
	ID       string
	WorkerID int
	Index    int
	P1First  bool
	Result   VersusMatchResult
	P1Nodes  uint64
	P2Nodes  uint64
}

type GameRecord[M comparable] struct {
	GameRecordHeader
	Opening []M // random plies played before the engines took over
	Moves   []M // engine moves
}

type VersusWorkerInfo[M comparable] struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	GameMoveNum   int
	Moves         []M
	P1Wins        int
	P2Wins        int
	Draws         int
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
	P1Nodes          uint64 `json:"player1_nodes"`
	P2Nodes          uint64 `json:"player2_nodes"`
}
