package main

import (
	"github.com/IlikeChooros/go-alphabeta/pkg/search"
	"github.com/IlikeChooros/go-alphabeta/pkg/ttt"
	"github.com/spf13/cobra"
)

func newBestMoveCmd(a *app) *cobra.Command {
	var (
		notation string
		file     string
		depth    int
		minimax  bool
	)

	cmd := &cobra.Command{
		Use:   "bestmove",
		Short: "Find the best move for the side to move",
		Example: `  tttsearch bestmove --notation "xx1/oo1/3 x"
  tttsearch bestmove --file position.yml --depth 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := resolvePosition(a.config, notation, file)
			if err != nil {
				return err
			}

			limits := a.config.Limits()
			if cmd.Flags().Changed("depth") {
				limits.SetDepth(depth)
			}
			model := ttt.NewModel(ttt.WithLimits(limits), ttt.WithLogger(a.logger))

			var result search.Result[ttt.Move]
			if minimax {
				result, err = model.Engine().SearchMinimax(pos)
			} else {
				result, err = model.FindBestMoveWithStats(pos)
			}
			if err != nil {
				return err
			}

			next, err := model.ApplyMove(pos, result.Move)
			if err != nil {
				return err
			}
			if err := a.renderer.Println(a.renderer.Board(next, []ttt.Move{result.Move})); err != nil {
				return err
			}
			return a.renderer.Println(a.renderer.Result(pos, result))
		},
	}

	cmd.Flags().StringVarP(&notation, "notation", "n", "", "position notation, e.g. \"x2/1o1/3 x\"")
	cmd.Flags().StringVarP(&file, "file", "f", "", "yaml position file")
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "maximum search depth in plies, 0 searches to the end")
	cmd.Flags().BoolVar(&minimax, "minimax", false, "search without alpha-beta pruning")
	return cmd
}
