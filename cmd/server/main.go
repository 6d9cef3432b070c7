package main

import (
	"fmt"

	"webclass/internal/config"
	handler "webclass/internal/handler/http"
	"webclass/internal/logger"
	"webclass/internal/render"
	"webclass/internal/server"
	"webclass/internal/service"
	"webclass/internal/session"
	"webclass/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("webclass-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(cfg.Storage, log)
	services := service.NewServices(storages, log)
	sessions := session.NewManager(cfg.App, log)

	pages, err := render.NewPages()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing page templates")
	}
	articles, err := render.NewArticlePages()
	if err != nil {
		log.Fatal().Err(err).Msg("error compiling article templates")
	}

	handlers := handler.NewHandler(services, storages, sessions, pages, articles, cfg.Server, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
