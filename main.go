package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	log := newLogger(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := New(DefaultConfig(), log).ListenAndServe(ctx); err != nil {
		log.Fatal(err)
	}
}
