package main

import (
	"encoding/json"
	"fmt"

	"github.com/IlikeChooros/go-alphabeta/pkg/bench"
	"github.com/IlikeChooros/go-alphabeta/pkg/search"
	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type arenaOptions struct {
	notation    string
	file        string
	games       int
	workers     int
	randomPlies int
	seed        int64
	p1Depth     int
	p2Depth     int
	p2Minimax   bool
	metricsOut  string
}

func newArenaCmd(a *app) *cobra.Command {
	opts := arenaOptions{}

	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Play a series of games between two engine configurations",
		Example: `  tttsearch arena --games 50 --p2-depth 2
  tttsearch arena --p2-minimax --metrics-out arena.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyConfig(cmd, a)
			return runArena(cmd, a, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.notation, "notation", "n", "", "starting position notation")
	f.StringVarP(&opts.file, "file", "f", "", "yaml position file")
	f.IntVarP(&opts.games, "games", "g", 0, "number of games")
	f.IntVarP(&opts.workers, "workers", "w", 0, "number of parallel workers")
	f.IntVar(&opts.randomPlies, "random-plies", 0, "random opening plies of every game")
	f.Int64Var(&opts.seed, "seed", 0, "seed of the random openings")
	f.IntVar(&opts.p1Depth, "p1-depth", 0, "search depth of player 1, 0 searches to the end")
	f.IntVar(&opts.p2Depth, "p2-depth", 0, "search depth of player 2, 0 searches to the end")
	f.BoolVar(&opts.p2Minimax, "p2-minimax", false, "player 2 searches without pruning")
	f.StringVar(&opts.metricsOut, "metrics-out", "", "write prometheus metrics to this file")
	return cmd
}

// Fill the options not set on the command line from the config
func (o *arenaOptions) applyConfig(cmd *cobra.Command, a *app) {
	f := cmd.Flags()
	conf := a.config.Arena
	if !f.Changed("games") {
		o.games = conf.Games
	}
	if !f.Changed("workers") {
		o.workers = conf.Workers
	}
	if !f.Changed("random-plies") {
		o.randomPlies = conf.RandomPlies
	}
	if !f.Changed("seed") {
		o.seed = conf.Seed
	}
	if !f.Changed("metrics-out") {
		o.metricsOut = conf.MetricsFile
	}
	if !f.Changed("p1-depth") {
		o.p1Depth = a.config.Search.Depth
	}
	if !f.Changed("p2-depth") {
		o.p2Depth = a.config.Search.Depth
	}
}

func contestant(name string, depth int, minimax bool) bench.Contestant[*ttt.Position, ttt.Move, ttt.Player] {
	engine := search.NewEngine(ttt.Operations())
	engine.SetLimits(search.DefaultLimits().SetDepth(depth))
	if minimax {
		name += "-minimax"
	}
	return bench.Contestant[*ttt.Position, ttt.Move, ttt.Player]{
		Name:    fmt.Sprintf("%s-d%d", name, depth),
		Engine:  engine,
		Minimax: minimax,
	}
}

func runArena(cmd *cobra.Command, a *app, opts arenaOptions) error {
	pos, err := resolvePosition(a.config, opts.notation, opts.file)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	arena := bench.NewVersusArena(ttt.Operations(), pos,
		contestant("p1", opts.p1Depth, false),
		contestant("p2", opts.p2Depth, opts.p2Minimax),
	).
		Setup(opts.games, opts.workers).
		WithOpening(opts.randomPlies, opts.seed).
		WithMetrics(bench.NewMetrics(registry)).
		WithLogger(a.logger)

	summary, err := arena.Run(cmd.Context())
	if err != nil {
		return err
	}

	if opts.metricsOut != "" {
		if err := prometheus.WriteToTextfile(opts.metricsOut, registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.logger.Info("metrics written", "path", opts.metricsOut)
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return a.renderer.Println(string(data))
}
