package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/internal/store"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

// maxUploadSize bounds multipart request bodies (64 MiB).
const maxUploadSize = 64 << 20

func (h *Handler) listPartners(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.repos.Partners.ListPartners(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listPartners").Msg("error listing partners")
		h.writeMappedError(w, r, err)
		return
	}

	partners := make([]models.Partner, 0, len(records))
	for _, record := range records {
		files, err := h.repos.Files.ListFilesByPartner(r.Context(), record.ID)
		if err != nil {
			log.Err(err).Str("func", "*Handler.listPartners").Str("partner_id", record.ID).Msg("error listing partner files")
			h.writeMappedError(w, r, err)
			return
		}
		partners = append(partners, partnerView(record, files))
	}

	writeJSON(w, r, http.StatusOK, partners)
}

func (h *Handler) createPartner(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}

	name := strings.TrimSpace(r.FormValue("partner"))
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "partner name is required")
		return
	}

	settings, err := parseDetectionSettings(r.FormValue("detection"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid detection settings")
		return
	}

	key := r.FormValue("key")
	if key == "" {
		// a partner registered without a key gets a generated one
		if key, err = generateEncryptionKey(); err != nil {
			log.Err(err).Str("func", "*Handler.createPartner").Msg("error generating encryption key")
			writeError(w, r, http.StatusInternalServerError, "error generating encryption key")
			return
		}
	}

	record := store.PartnerRecord{
		ID:                uuid.NewString(),
		Name:              name,
		EncryptionKey:     key,
		FilePassword:      r.FormValue("password"),
		DetectionSettings: settings,
	}

	if icon, header, iconErr := r.FormFile("icon"); iconErr == nil {
		defer icon.Close()
		logo, saveErr := h.saveLogo(record.ID, header.Filename, icon)
		if saveErr != nil {
			log.Err(saveErr).Str("func", "*Handler.createPartner").Msg("error saving partner logo")
			writeError(w, r, http.StatusInternalServerError, "error saving partner logo")
			return
		}
		record.Logo = logo
	}

	created, err := h.repos.Partners.CreatePartner(r.Context(), record)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createPartner").Msg("error creating partner")
		h.writeMappedError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, partnerView(created, nil))
}

func (h *Handler) updatePartner(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	partnerID := chi.URLParam(r, "partnerID")

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var update store.PartnerUpdate
	if _, ok := r.MultipartForm.Value["partner"]; ok {
		name := strings.TrimSpace(r.FormValue("partner"))
		if name == "" {
			writeError(w, r, http.StatusBadRequest, "partner name cannot be empty")
			return
		}
		update.Name = &name
	}
	if _, ok := r.MultipartForm.Value["key"]; ok {
		key := r.FormValue("key")
		update.EncryptionKey = &key
	}
	if _, ok := r.MultipartForm.Value["password"]; ok {
		password := r.FormValue("password")
		update.FilePassword = &password
	}
	if _, ok := r.MultipartForm.Value["detection"]; ok {
		settings, err := parseDetectionSettings(r.FormValue("detection"))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid detection settings")
			return
		}
		update.DetectionSettings = &settings
	}

	if icon, header, iconErr := r.FormFile("icon"); iconErr == nil {
		defer icon.Close()
		logo, saveErr := h.saveLogo(partnerID, header.Filename, icon)
		if saveErr != nil {
			log.Err(saveErr).Str("func", "*Handler.updatePartner").Msg("error saving partner logo")
			writeError(w, r, http.StatusInternalServerError, "error saving partner logo")
			return
		}
		update.Logo = &logo
	}

	updated, err := h.repos.Partners.UpdatePartner(r.Context(), partnerID, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updatePartner").Str("partner_id", partnerID).Msg("error updating partner")
		h.writeMappedError(w, r, err)
		return
	}

	files, err := h.repos.Files.ListFilesByPartner(r.Context(), partnerID)
	if err != nil {
		h.writeMappedError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, partnerView(updated, files))
}

func (h *Handler) deletePartner(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	partnerID := chi.URLParam(r, "partnerID")

	if err := h.repos.Partners.DeletePartner(r.Context(), partnerID); err != nil {
		log.Err(err).Str("func", "*Handler.deletePartner").Str("partner_id", partnerID).Msg("error deleting partner")
		h.writeMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"version": h.version})
}

// partnerView maps a stored partner and its files onto the wire shape.
// Secrets never leave the server; the download link appears only once a
// file is anonymized.
func partnerView(record store.PartnerRecord, files []store.FileRecord) models.Partner {
	view := models.Partner{
		ID:                record.ID,
		Name:              record.Name,
		Logo:              record.Logo,
		DetectionSettings: record.DetectionSettings,
		Files:             make([]models.File, 0, len(files)),
	}

	for _, f := range files {
		file := models.File{
			ID:       f.ID,
			Filename: f.Filename,
			Type:     f.Type,
			State:    f.State,
		}
		if f.State == models.Anonymized {
			file.Download = "/api/files/" + f.ID + "/download"
		}
		view.Files = append(view.Files, file)
	}

	return view
}

func parseDetectionSettings(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var settings []string
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func generateEncryptionKey() (string, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(key), nil
}

func (h *Handler) saveLogo(partnerID, filename string, icon multipart.File) (string, error) {
	dir := filepath.Join(h.dataDir, "logos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create logos dir: %w", err)
	}

	logoName := partnerID + filepath.Ext(filename)
	dst, err := os.Create(filepath.Join(dir, logoName))
	if err != nil {
		return "", fmt.Errorf("create logo file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, icon); err != nil {
		return "", fmt.Errorf("write logo file: %w", err)
	}

	return "/logos/" + logoName, nil
}
