package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ib-77/gocoinbase/cmd/cbctl/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx, cmd.NewRootCmd()); err != nil {
		stop()
		os.Exit(1)
	}
}
