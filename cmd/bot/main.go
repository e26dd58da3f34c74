package main

import (
	"context"
	"fmt"

	"github.com/luoyiming/game-account-bot/internal/adapter"
	"github.com/luoyiming/game-account-bot/internal/config"
	"github.com/luoyiming/game-account-bot/internal/handler"
	handlerhttp "github.com/luoyiming/game-account-bot/internal/handler/http"
	"github.com/luoyiming/game-account-bot/internal/logger"
	"github.com/luoyiming/game-account-bot/internal/server"
	"github.com/luoyiming/game-account-bot/internal/service"
	"github.com/luoyiming/game-account-bot/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("game-account-bot")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg.Grants, log)

	api := adapter.NewOneBotClient(cfg.OneBot, log)
	router := handler.NewRouter(services, api, log)

	mux := handlerhttp.NewHandler(router, api, cfg.OneBot.CallbackSecret, log).Init()

	srv, err := server.NewServer(mux, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
