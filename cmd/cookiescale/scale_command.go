package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cookiescale/internal/recipe"
	"cookiescale/internal/render"
)

func newScaleCommand(ctx *commandContext) *cobra.Command {
	var compareFlag bool

	cmd := &cobra.Command{
		Use:   "scale <servings>",
		Short: "Scale the recipe once and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validation errors carry their guidance message and exit
			// non-zero via main's error printing.
			servings, err := recipe.ValidateServings(args[0])
			if err != nil {
				return err
			}

			factor, err := recipe.ScalingFactor(recipe.OriginalServings, servings)
			if err != nil {
				return err
			}
			scaled, err := recipe.Scale(recipe.Original(), factor)
			if err != nil {
				return err
			}

			st := ctx.styles()
			out := cmd.OutOrStdout()

			if servings != recipe.OriginalServings {
				fmt.Fprintln(out, render.FactorLine(factor, st))
			}
			fmt.Fprint(out, render.RecipeBlock(scaled, servings, st))

			if compareFlag {
				table, err := render.ComparisonTable(recipe.Original(), scaled, recipe.OriginalServings, servings)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, table)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&compareFlag, "compare", false, "Also print the side-by-side comparison table")

	return cmd
}
