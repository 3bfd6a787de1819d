package http

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/api/partners", h.listPartners)
	router.Post("/create-partner", h.createPartner)
	router.Put("/api/partners/{partnerID}", h.updatePartner)
	router.Delete("/api/partners/{partnerID}", h.deletePartner)

	router.Post("/upload", h.upload)
	router.Post("/proceed", h.proceed)
	router.Put("/api/files/{fileID}/state", h.setFileState)
	router.Get("/api/files/{fileID}/auditlog", h.auditLog)
	router.Get("/api/files/{fileID}/download", h.downloadArtifact)
	router.Post("/download", h.downloadAll)

	router.Get("/api/version", h.getVersion)

	logosDir := http.Dir(filepath.Join(h.dataDir, "logos"))
	router.Handle("/logos/*", http.StripPrefix("/logos/", http.FileServer(logosDir)))

	return router
}
