package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/jobly/internal/buildinfo"
	"github.com/dmitrijs2005/jobly/internal/client/cli"
	"github.com/dmitrijs2005/jobly/internal/client/client"
	"github.com/dmitrijs2005/jobly/internal/client/config"
	"github.com/dmitrijs2005/jobly/internal/client/flash"
	"github.com/dmitrijs2005/jobly/internal/client/services"
	"github.com/dmitrijs2005/jobly/internal/client/storage"
	"github.com/dmitrijs2005/jobly/internal/common"
	"github.com/dmitrijs2005/jobly/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, closer := logging.NewFileLogger(cfg.LogFile, cfg.LogLevel)
	defer closer.Close()

	db, err := storage.Open(ctx, cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	store := storage.NewStore(db.Metadata(), logger.With("module", "storage"))
	credential := storage.NewSlot[string](ctx, store, common.CredentialKey)

	apiClient := client.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout, logger.With("module", "api"))
	flashes := flash.NewQueue()

	session := services.NewSessionService(apiClient, credential, flashes, logger.With("module", "session"))
	catalog := services.NewCatalogService(apiClient)

	app := cli.NewApp(session, catalog, flashes, logger, os.Stdin, os.Stdout)
	app.Run(ctx)
}
