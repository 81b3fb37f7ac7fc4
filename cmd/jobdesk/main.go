package main

import (
	"context"
	"log/slog"
	"os"

	"jobdesk/internal/cli"
	"jobdesk/internal/config"
	"jobdesk/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	log := logging.NewSlogLogger(slog.New(handler))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
