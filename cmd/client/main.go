package main

import (
	"context"
	"fmt"

	"github.com/wanpc3/Data-Privacy-Protector/internal/adapter"
	"github.com/wanpc3/Data-Privacy-Protector/internal/config"
	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/internal/service"
	"github.com/wanpc3/Data-Privacy-Protector/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("privacy-portal-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	portalAdapter := adapter.NewHTTPPortalAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Portal.BaseURL,
		Timeout: cfg.Portal.RequestTimeout,
	}, log)

	services := service.NewClientServices(portalAdapter, log)

	ui, err := tui.New(services, cfg.DownloadDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = ui.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
