package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/ecofinds/ecofinds-go/internal/buildinfo"
	"github.com/ecofinds/ecofinds-go/internal/cli"
	"github.com/ecofinds/ecofinds-go/internal/config"
	"github.com/ecofinds/ecofinds-go/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})
	logger := logging.NewSlogLogger(slog.New(handler))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
