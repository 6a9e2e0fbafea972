package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nativoseo/internal/dashboard"
	"nativoseo/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd(os.Stdout, os.Stderr, os.Stdin).ExecuteContext(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, dashboard.ErrLoginRequired) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	stop()
	os.Exit(1)
}
