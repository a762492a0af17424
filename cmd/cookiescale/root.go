package main

import (
	"github.com/spf13/cobra"

	"cookiescale/internal/buildinfo"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	longHelp := "cookiescale scales the fixed 12-serving cookie recipe by a desired\n" +
		"serving count (1-100) and renders kitchen-friendly amounts.\n\n" +
		"Run without arguments for the interactive console, or use the tui\n" +
		"command for the touch-style interface."

	rootCmd := &cobra.Command{
		Use:           "cookiescale",
		Short:         "Scale the 12-serving cookie recipe for any number of servings",
		Long:          longHelp,
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.ensure()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newTUICommand(ctx))
	rootCmd.AddCommand(newRecipeCommand(ctx))
	rootCmd.AddCommand(newScaleCommand(ctx))

	return rootCmd
}
