package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/campus-suite/campusctl/internal/cli"
	"github.com/campus-suite/campusctl/internal/config"
	"github.com/campus-suite/campusctl/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
