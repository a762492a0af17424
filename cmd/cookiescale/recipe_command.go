package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cookiescale/internal/recipe"
	"cookiescale/internal/render"
)

func newRecipeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "recipe",
		Short: "Print the baseline 12-serving recipe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			block := render.RecipeBlock(recipe.Original(), recipe.OriginalServings, ctx.styles())
			fmt.Fprint(cmd.OutOrStdout(), block)
			return nil
		},
	}
}
