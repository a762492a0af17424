package main

import (
	"github.com/spf13/cobra"

	"cookiescale/internal/tui"
)

func newTUICommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the touch-style full-screen interface",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.log.Close()

			app := tui.New(ctx.styles(), ctx.log, ctx.cfg.UI.ShowComparison)
			return app.Run()
		},
	}
}
