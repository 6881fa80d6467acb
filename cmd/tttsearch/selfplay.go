package main

import (
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
	"github.com/spf13/cobra"
)

func newSelfPlayCmd(a *app) *cobra.Command {
	var (
		notation string
		file     string
	)

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let the engine play both sides until the game ends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := resolvePosition(a.config, notation, file)
			if err != nil {
				return err
			}

			model := ttt.NewModel(ttt.WithLimits(a.config.Limits()), ttt.WithLogger(a.logger))
			game, err := model.SelfPlay(pos)
			if err != nil {
				return err
			}

			moves := make([]string, len(game.Moves))
			for i, mv := range game.Moves {
				moves[i] = mv.String()
			}

			out := []string{
				a.renderer.Board(game.Final, game.Outcome.Line),
				fmt.Sprintf("moves: %s", strings.Join(moves, " ")),
				fmt.Sprintf("final: %s", game.Final.Notation()),
				fmt.Sprintf("nodes: %d", game.Nodes),
				a.renderer.Outcome(game.Outcome),
			}
			for _, line := range out {
				if err := a.renderer.Println(line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&notation, "notation", "n", "", "starting position notation")
	cmd.Flags().StringVarP(&file, "file", "f", "", "yaml position file")
	return cmd
}
