package http

import (
	"github.com/wanpc3/Data-Privacy-Protector/internal/detect"
	"github.com/wanpc3/Data-Privacy-Protector/internal/detect/anonymizer"
	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/internal/store"
)

// Handler serves the portal REST API. It orchestrates the repositories,
// the detection engine, and the anonymizer; there is no further service
// layer behind it.
type Handler struct {
	repos      store.Repositories
	engine     *detect.Engine
	anonymizer *anonymizer.Service
	dataDir    string
	version    string

	logger *logger.Logger
}

func NewHandler(repos store.Repositories, engine *detect.Engine, anonym *anonymizer.Service, dataDir, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		repos:      repos,
		engine:     engine,
		anonymizer: anonym,
		dataDir:    dataDir,
		version:    version,
		logger:     logger,
	}
}
