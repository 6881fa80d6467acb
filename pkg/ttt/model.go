package ttt

import (
	"fmt"
	"log/slog"

	"github.com/IlikeChooros/go-alphabeta/internal/logging"
	"github.com/IlikeChooros/go-alphabeta/pkg/search"
)

// Binds the position to the search engine's game operations
type operations struct{}

func (operations) Turn(p *Position) Player                       { return p.Turn() }
func (operations) GameOver(p *Position) bool                     { return p.IsTerminated() }
func (operations) Heuristic(p *Position, perspective Player) int { return p.Heuristic(perspective) }
func (operations) Moves(p *Position) []Move                      { return p.GenerateMoves() }
func (operations) Apply(p *Position, mv Move) (*Position, error) { return p.Apply(mv) }

// Game operations of NxN tic-tac-toe, usable with any search.Engine
func Operations() search.Game[*Position, Move, Player] {
	return operations{}
}

type Engine = search.Engine[*Position, Move, Player]

// NxN tic-tac-toe with an alpha-beta opponent, the API a UI or CLI
// driver plays against
type Model struct {
	engine *Engine
	logger *slog.Logger
}

type Option func(*Model)

// Limit the search, by default it always runs to the end of the game
func WithLimits(limits *search.Limits) Option {
	return func(m *Model) {
		m.engine.SetLimits(limits)
	}
}

func WithListener(listener search.StatsListener[Move]) Option {
	return func(m *Model) {
		m.engine.SetListener(listener)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func NewModel(opts ...Option) *Model {
	m := &Model{
		engine: search.NewEngine(Operations()),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("component", "ttt")
	return m
}

func (m *Model) Engine() *Engine {
	return m.engine
}

func (m *Model) String() string {
	return "Go NxN tic-tac-toe with alpha-beta pruning"
}

func (m *Model) GameStart(first Player, size int) (*Position, error) {
	return NewPosition(first, size)
}

func (m *Model) CreateMove(row, col int) Move {
	return NewMove(row, col)
}

func (m *Model) ApplyMove(p *Position, mv Move) (*Position, error) {
	if p == nil {
		return nil, ErrNilPosition
	}
	return p.Apply(mv)
}

func (m *Model) GetTurn(p *Position) Player {
	return p.Turn()
}

func (m *Model) MoveGenerator(p *Position) []Move {
	return p.GenerateMoves()
}

func (m *Model) Heuristic(p *Position, perspective Player) int {
	return p.Heuristic(perspective)
}

func (m *Model) GameOver(p *Position) bool {
	return p.IsTerminated()
}

func (m *Model) GameOutcome(p *Position) Outcome {
	return p.Outcome()
}

// Best move for the player to move. The position must not be terminated
// (check GameOver first), otherwise search.ErrInvalidState is returned.
func (m *Model) FindBestMove(p *Position) (Move, error) {
	result, err := m.FindBestMoveWithStats(p)
	return result.Move, err
}

// Same as FindBestMove, also returns the search value and node count
func (m *Model) FindBestMoveWithStats(p *Position) (search.Result[Move], error) {
	if p == nil {
		return search.Result[Move]{}, fmt.Errorf("%w: %w", search.ErrInvalidState, ErrNilPosition)
	}

	result, err := m.engine.Search(p)
	if err != nil {
		return search.Result[Move]{}, fmt.Errorf("find best move in %q: %w", p.Notation(), err)
	}

	m.logger.Debug("best move found",
		slog.String("position", p.Notation()),
		slog.String("move", result.Move.String()),
		slog.Int("value", result.Value),
		slog.Uint64("nodes", result.Nodes),
		slog.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}
