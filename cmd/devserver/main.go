package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/jobly/internal/devserver"
	"github.com/dmitrijs2005/jobly/internal/devserver/config"
	"github.com/dmitrijs2005/jobly/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, closer := logging.NewFileLogger("", cfg.LogLevel)
	defer closer.Close()

	app, err := devserver.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
