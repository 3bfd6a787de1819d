package main

import (
	"context"
	"fmt"

	"github.com/wanpc3/Data-Privacy-Protector/internal/config"
	"github.com/wanpc3/Data-Privacy-Protector/internal/detect"
	"github.com/wanpc3/Data-Privacy-Protector/internal/detect/anonymizer"
	httphandler "github.com/wanpc3/Data-Privacy-Protector/internal/handler/http"
	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/internal/server"
	"github.com/wanpc3/Data-Privacy-Protector/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("privacy-portal-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectSQLite(context.Background(), config.DB{DSN: cfg.DSN}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	repos := store.NewRepositories(db, log)
	engine := detect.NewEngine(log)
	handler := httphandler.NewHandler(repos, engine, anonymizer.New(), cfg.DataDir, cfg.Version, log)

	srv, err := server.NewServer(handler.Init(), cfg, log)
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
