package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cookiescale/internal/console"
)

// runConsole starts the interactive console shell. A user interrupt is a
// clean exit, matching the shell's handling of end-of-input.
func runConsole(ctx *commandContext) error {
	defer ctx.log.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		fmt.Println("\n\nInterrupted. Exiting.")
		os.Exit(0)
	}()

	shell := console.New(os.Stdin, os.Stdout, ctx.styles(), ctx.log, ctx.cfg.UI.ShowComparison)
	return shell.Run()
}
