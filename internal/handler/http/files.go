package http

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wanpc3/Data-Privacy-Protector/internal/detect"
	"github.com/wanpc3/Data-Privacy-Protector/internal/detect/anonymizer"
	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/internal/store"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}

	partnerName := strings.TrimSpace(r.FormValue("partner"))
	if partnerName == "" {
		writeError(w, r, http.StatusBadRequest, "partner is required")
		return
	}

	upload, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "file is required")
		return
	}
	defer upload.Close()

	content, err := io.ReadAll(upload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error reading uploaded file")
		writeError(w, r, http.StatusBadRequest, "error reading uploaded file")
		return
	}

	partner, err := h.repos.Partners.GetPartnerByName(r.Context(), partnerName)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Str("partner", partnerName).Msg("partner lookup failed")
		h.writeMappedError(w, r, err)
		return
	}

	fileType := models.ClassifyFile(header.Filename)
	review, err := h.runDetection(fileType, header.Filename, content, partner.DetectionSettings)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Str("filename", header.Filename).Msg("detection failed")
		writeError(w, r, http.StatusBadRequest, "could not analyze file: "+err.Error())
		return
	}

	fileID := uuid.NewString()
	originalPath, err := h.saveOriginal(fileID, header.Filename, content)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error saving original file")
		writeError(w, r, http.StatusInternalServerError, "error saving uploaded file")
		return
	}

	record := store.FileRecord{
		ID:           fileID,
		PartnerID:    partner.ID,
		Filename:     header.Filename,
		Type:         fileType,
		State:        models.PendingReview,
		Review:       review,
		OriginalPath: originalPath,
	}
	if err := h.repos.Files.CreateFile(r.Context(), record); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error persisting file")
		h.writeMappedError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.UploadResponse{
		FileID:   fileID,
		Filename: header.Filename,
		Type:     fileType,
		Review:   review,
	})
}

// runDetection picks the scan strategy by file type. Text and tabular
// files produce a batch (possibly empty); other types produce no batch at
// all, which the client renders as "no detection data".
func (h *Handler) runDetection(fileType models.FileType, filename string, content []byte, enabled []string) ([]models.DetectedEntity, error) {
	switch fileType {
	case models.TextFile:
		findings := h.engine.DetectText(string(content), enabled)
		if findings == nil {
			findings = []models.DetectedEntity{}
		}
		return findings, nil
	case models.TabularFile:
		columns, err := h.readColumns(filename, content)
		if err != nil {
			return nil, err
		}
		findings := h.engine.DetectTabular(columns, enabled)
		if findings == nil {
			findings = []models.DetectedEntity{}
		}
		return findings, nil
	default:
		return nil, nil
	}
}

func (h *Handler) readColumns(filename string, content []byte) ([]detect.Column, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".xlsx" || ext == ".xlsm" || ext == ".xls" {
		return detect.ReadXLSXColumns(content)
	}
	return detect.ReadCSVColumns(bytes.NewReader(content))
}

func (h *Handler) proceed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ProceedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.FileID == "" {
		writeError(w, r, http.StatusBadRequest, "file_id is required")
		return
	}

	file, err := h.repos.Files.GetFile(r.Context(), req.FileID)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	partner, err := h.repos.Partners.GetPartner(r.Context(), file.PartnerID)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	original, err := os.ReadFile(file.OriginalPath)
	if err != nil {
		log.Err(err).Str("func", "*Handler.proceed").Str("file_id", file.ID).Msg("error reading original file")
		writeError(w, r, http.StatusInternalServerError, "error reading original file")
		return
	}

	key := h.anonymizer.DeriveKey(partner.EncryptionKey, []byte(partner.ID))

	artifact, actions, err := h.anonymizeContent(file, original, req.Review, key)
	if err != nil {
		log.Err(err).Str("func", "*Handler.proceed").Str("file_id", file.ID).Msg("anonymization failed")
		writeError(w, r, http.StatusInternalServerError, "anonymization failed: "+err.Error())
		return
	}

	artifactPath, err := h.saveArtifact(file.ID, file.Filename, artifact)
	if err != nil {
		log.Err(err).Str("func", "*Handler.proceed").Msg("error writing artifact")
		writeError(w, r, http.StatusInternalServerError, "error writing anonymized file")
		return
	}

	if err := h.repos.Files.MarkAnonymized(r.Context(), file.ID, artifactPath); err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	auditEntries := make([]store.AuditRecord, 0, len(actions))
	for _, action := range actions {
		auditEntries = append(auditEntries, store.AuditRecord{
			FileID: file.ID,
			Detect: action.Detect,
			Total:  action.Total,
			Column: action.Column,
		})
	}
	if err := h.repos.Audit.AppendEntries(r.Context(), auditEntries); err != nil {
		log.Err(err).Str("func", "*Handler.proceed").Str("file_id", file.ID).Msg("error recording audit entries")
		h.writeMappedError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.ProceedResponse{Filename: file.Filename})
}

func (h *Handler) anonymizeContent(file store.FileRecord, original []byte, review []models.CleanedItem, key []byte) ([]byte, []anonymizer.Action, error) {
	switch file.Type {
	case models.TextFile:
		content, actions, err := h.anonymizer.AnonymizeText(string(original), review, key)
		if err != nil {
			return nil, nil, err
		}
		return []byte(content), actions, nil
	case models.TabularFile:
		columns, err := h.readColumns(file.Filename, original)
		if err != nil {
			return nil, nil, err
		}
		anonymized, actions, err := h.anonymizer.AnonymizeTabular(columns, review, key)
		if err != nil {
			return nil, nil, err
		}
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext == ".xlsx" || ext == ".xlsm" || ext == ".xls" {
			artifact, err := detect.WriteXLSXColumns(anonymized)
			return artifact, actions, err
		}
		artifact, err := detect.WriteCSVColumns(anonymized)
		return artifact, actions, err
	default:
		return nil, nil, fmt.Errorf("file type %q cannot be anonymized", file.Type)
	}
}

func (h *Handler) setFileState(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	fileID := chi.URLParam(r, "fileID")

	var req models.StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.State != models.Anonymized && req.State != models.Deanonymized {
		writeError(w, r, http.StatusBadRequest, "invalid state")
		return
	}

	file, err := h.repos.Files.GetFile(r.Context(), fileID)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}
	if file.State == models.PendingReview {
		writeError(w, r, http.StatusBadRequest, "file has not been anonymized yet")
		return
	}

	if err := h.repos.Files.UpdateState(r.Context(), fileID, req.State); err != nil {
		log.Err(err).Str("func", "*Handler.setFileState").Str("file_id", fileID).Msg("error updating state")
		h.writeMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) auditLog(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")

	file, err := h.repos.Files.GetFile(r.Context(), fileID)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	partner, err := h.repos.Partners.GetPartner(r.Context(), file.PartnerID)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	entries, err := h.repos.Audit.ListByFile(r.Context(), fileID)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	rows := make([]models.AuditRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, models.AuditRow{
			Detect: entry.Detect,
			Total:  entry.Total,
			Column: entry.Column,
		})
	}

	writeJSON(w, r, http.StatusOK, models.AuditLogEntry{
		Filename: file.Filename,
		Partner:  partner.Name,
		Method:   models.AnonymizationMethod,
		Type:     file.Type,
		Log:      rows,
	})
}

func (h *Handler) downloadArtifact(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")

	file, err := h.repos.Files.GetFile(r.Context(), fileID)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}
	if file.State != models.Anonymized || file.ArtifactPath == "" {
		writeError(w, r, http.StatusNotFound, "no anonymized artifact for this file")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	http.ServeFile(w, r, file.ArtifactPath)
}

func (h *Handler) downloadAll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	partnerName := strings.TrimSpace(r.FormValue("partner"))
	if partnerName == "" {
		writeError(w, r, http.StatusBadRequest, "partner is required")
		return
	}

	partner, err := h.repos.Partners.GetPartnerByName(r.Context(), partnerName)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	files, err := h.repos.Files.ListFilesByPartner(r.Context(), partner.ID)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)
	for _, file := range files {
		if file.State != models.Anonymized || file.ArtifactPath == "" {
			continue
		}

		artifact, readErr := os.ReadFile(file.ArtifactPath)
		if readErr != nil {
			log.Err(readErr).Str("func", "*Handler.downloadAll").Str("file_id", file.ID).Msg("error reading artifact")
			writeError(w, r, http.StatusInternalServerError, "error reading anonymized file")
			return
		}

		entry, zipErr := archive.Create(file.Filename)
		if zipErr == nil {
			_, zipErr = entry.Write(artifact)
		}
		if zipErr != nil {
			writeError(w, r, http.StatusInternalServerError, "error building archive")
			return
		}
	}
	if err := archive.Close(); err != nil {
		writeError(w, r, http.StatusInternalServerError, "error building archive")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+partner.Name+`.zip"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Err(err).Str("func", "*Handler.downloadAll").Msg("error writing archive response")
	}
}

func (h *Handler) saveOriginal(fileID, filename string, content []byte) (string, error) {
	dir := filepath.Join(h.dataDir, "originals")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create originals dir: %w", err)
	}
	path := filepath.Join(dir, fileID+"_"+filepath.Base(filename))
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("write original file: %w", err)
	}
	return path, nil
}

func (h *Handler) saveArtifact(fileID, filename string, content []byte) (string, error) {
	dir := filepath.Join(h.dataDir, "anonymized")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create anonymized dir: %w", err)
	}
	path := filepath.Join(dir, fileID+"_"+filepath.Base(filename))
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("write artifact file: %w", err)
	}
	return path, nil
}
