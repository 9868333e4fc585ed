package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/edgeguard/internal/model"
	"github.com/mcoot/edgeguard/internal/services/strategy"
)

// LayoutView is a defence layout together with the configured launch cell
type LayoutView struct {
	Name        string             `json:"name"`
	PrimaryRole model.UnitRole     `json:"primary_role"`
	Primary     []model.Coordinate `json:"primary"`
	Walls       []model.Coordinate `json:"walls"`
	Launch      model.Coordinate   `json:"launch"`
}

func newLayoutCmd() *cobra.Command {
	var layout string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show where the defence layout and attack launch cell sit on the arena",
		RunE: func(cmd *cobra.Command, args []string) error {
			applyLayoutFlag(cmd, layout)

			l, err := strategy.LayoutByName(settings.Strategy.Layout)
			if err != nil {
				return err
			}

			view := LayoutView{
				Name:        l.Name,
				PrimaryRole: l.PrimaryRole,
				Primary:     l.Primary.Coords(),
				Walls:       l.Walls.Coords(),
				Launch:      model.At(settings.Strategy.Launch.X, settings.Strategy.Launch.Y),
			}
			NewOutput(settings.Output, cmd.OutOrStdout()).Print(view)
			return nil
		},
	}

	cmd.Flags().StringVar(&layout, "layout", strategy.LayoutEdges, "Defence layout: edges, line")

	return cmd
}
