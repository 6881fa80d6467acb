package main

import (
	"fmt"
	"log/slog"

	"github.com/IlikeChooros/go-alphabeta/internal/config"
	"github.com/IlikeChooros/go-alphabeta/internal/logging"
	"github.com/IlikeChooros/go-alphabeta/internal/render"
	"github.com/spf13/cobra"
)

// Shared state of a single command invocation
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	config   *config.Config
	logger   *slog.Logger
	renderer *render.Renderer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tttsearch",
		Short: "Alpha-beta search for n x n tic-tac-toe",
		Long: `tttsearch finds the best move of a tic-tac-toe position with
minimax and alpha-beta pruning, plays self-play games and runs
engine against engine arenas.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to the yaml config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "override the log format (text, json)")

	root.AddCommand(
		newBestMoveCmd(a),
		newSelfPlayCmd(a),
		newArenaCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	conf, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		conf.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		conf.LogFormat = a.logFormat
	}

	logger, err := logging.New(conf.LogLevel, conf.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.config = conf
	a.logger = logger
	a.renderer = render.New(cmd.OutOrStdout())
	logger.Debug("config loaded", "path", a.configPath, "limits", conf.Limits().String())
	return nil
}
