package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/vaultchat/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "vaultchat: %v\n", err)
		os.Exit(cmd.ExitCode(err))
	}
}
