package app

import (
	"context"
	"os/signal"
	"syscall"
)

// App runs the picker server until SIGINT or SIGTERM.
type App struct {
	srv Runner
}

func New(srv Runner) *App {
	return &App{srv: srv}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.srv.Run(ctx)
}
