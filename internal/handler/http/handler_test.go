package http

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wanpc3/Data-Privacy-Protector/internal/detect"
	"github.com/wanpc3/Data-Privacy-Protector/internal/detect/anonymizer"
	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/internal/mock"
	"github.com/wanpc3/Data-Privacy-Protector/internal/store"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

type handlerMocks struct {
	partners *mock.MockPartnerRepository
	files    *mock.MockFileRepository
	audit    *mock.MockAuditRepository
}

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, handlerMocks) {
	t.Helper()

	m := handlerMocks{
		partners: mock.NewMockPartnerRepository(ctrl),
		files:    mock.NewMockFileRepository(ctrl),
		audit:    mock.NewMockAuditRepository(ctrl),
	}
	repos := store.Repositories{Partners: m.partners, Files: m.files, Audit: m.audit}

	log := logger.Nop()
	h := NewHandler(repos, detect.NewEngine(log), anonymizer.New(), t.TempDir(), "test", log)
	return h, m
}

func doRequest(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// multipartBody assembles a multipart form with string fields and an
// optional file part.
func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Error
}

// ── GET /api/partners ────────────────────────────────────────────────────────

func TestListPartners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	records := []store.PartnerRecord{
		{ID: "p1", Name: "Acme", EncryptionKey: "secret", FilePassword: "pw", DetectionSettings: []string{"EMAIL_ADDRESS"}},
	}
	files := []store.FileRecord{
		{ID: "f1", Filename: "a.txt", Type: models.TextFile, State: models.Anonymized, ArtifactPath: "/x"},
		{ID: "f2", Filename: "b.txt", Type: models.TextFile, State: models.Deanonymized},
	}

	gomock.InOrder(
		m.partners.EXPECT().ListPartners(gomock.Any()).Return(records, nil),
		m.files.EXPECT().ListFilesByPartner(gomock.Any(), "p1").Return(files, nil),
	)

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/api/partners", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var partners []models.Partner
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &partners))
	require.Len(t, partners, 1)
	require.Len(t, partners[0].Files, 2)

	assert.Equal(t, "/api/files/f1/download", partners[0].Files[0].Download)
	assert.Empty(t, partners[0].Files[1].Download, "de-anonymized files carry no download link")
	assert.NotContains(t, rec.Body.String(), "secret", "secrets never leave the server")
	assert.NotContains(t, rec.Body.String(), `"pw"`)
}

// ── POST /create-partner ─────────────────────────────────────────────────────

func TestCreatePartner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	m.partners.EXPECT().CreatePartner(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, record store.PartnerRecord) (store.PartnerRecord, error) {
			assert.Equal(t, "Acme", record.Name)
			assert.Equal(t, "provided-key", record.EncryptionKey)
			assert.Equal(t, []string{"EMAIL_ADDRESS", "PERSON"}, record.DetectionSettings)
			assert.NotEmpty(t, record.ID)
			return record, nil
		},
	)

	body, contentType := multipartBody(t, map[string]string{
		"partner":   "Acme",
		"key":       "provided-key",
		"detection": `["EMAIL_ADDRESS","PERSON"]`,
	}, "", "", nil)

	req := httptest.NewRequest(http.MethodPost, "/create-partner", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(h, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var partner models.Partner
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &partner))
	assert.Equal(t, "Acme", partner.Name)
	assert.NotNil(t, partner.Files)
}

func TestCreatePartner_GeneratesKeyWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	m.partners.EXPECT().CreatePartner(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, record store.PartnerRecord) (store.PartnerRecord, error) {
			assert.NotEmpty(t, record.EncryptionKey)
			return record, nil
		},
	)

	body, contentType := multipartBody(t, map[string]string{"partner": "Acme"}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/create-partner", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(h, req)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreatePartner_NameRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	body, contentType := multipartBody(t, map[string]string{"partner": "  "}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/create-partner", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(h, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "partner name is required", errorBody(t, rec))
}

func TestCreatePartner_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	m.partners.EXPECT().CreatePartner(gomock.Any(), gomock.Any()).
		Return(store.PartnerRecord{}, store.ErrPartnerAlreadyExists)

	body, contentType := multipartBody(t, map[string]string{"partner": "Acme"}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/create-partner", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(h, req)
	require.Equal(t, http.StatusConflict, rec.Code)
}

// ── PUT /api/partners/{partnerID} ────────────────────────────────────────────

func TestUpdatePartner_OnlyPresentFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	gomock.InOrder(
		m.partners.EXPECT().UpdatePartner(gomock.Any(), "p1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, update store.PartnerUpdate) (store.PartnerRecord, error) {
				require.NotNil(t, update.Name)
				assert.Equal(t, "Acme Renamed", *update.Name)
				assert.Nil(t, update.EncryptionKey, "absent fields stay nil")
				assert.Nil(t, update.FilePassword)
				assert.Nil(t, update.DetectionSettings)
				return store.PartnerRecord{ID: "p1", Name: *update.Name}, nil
			},
		),
		m.files.EXPECT().ListFilesByPartner(gomock.Any(), "p1").Return(nil, nil),
	)

	body, contentType := multipartBody(t, map[string]string{"partner": "Acme Renamed"}, "", "", nil)
	req := httptest.NewRequest(http.MethodPut, "/api/partners/p1", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(h, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdatePartner_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	m.partners.EXPECT().UpdatePartner(gomock.Any(), "missing", gomock.Any()).
		Return(store.PartnerRecord{}, store.ErrPartnerNotFound)

	body, contentType := multipartBody(t, map[string]string{"partner": "X"}, "", "", nil)
	req := httptest.NewRequest(http.MethodPut, "/api/partners/missing", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(h, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ── DELETE /api/partners/{partnerID} ─────────────────────────────────────────

func TestDeletePartner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.partners.EXPECT().DeletePartner(gomock.Any(), "p1").Return(nil)

	rec := doRequest(h, httptest.NewRequest(http.MethodDelete, "/api/partners/p1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// ── POST /upload ─────────────────────────────────────────────────────────────

func TestUpload_TextFileProducesReviewBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	partner := store.PartnerRecord{ID: "p1", Name: "Acme", DetectionSettings: []string{"EMAIL_ADDRESS"}}

	gomock.InOrder(
		m.partners.EXPECT().GetPartnerByName(gomock.Any(), "Acme").Return(partner, nil),
		m.files.EXPECT().CreateFile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, record store.FileRecord) error {
				assert.Equal(t, "p1", record.PartnerID)
				assert.Equal(t, models.TextFile, record.Type)
				assert.Equal(t, models.PendingReview, record.State)
				require.Len(t, record.Review, 1)
				assert.FileExists(t, record.OriginalPath)
				return nil
			},
		),
	)

	body, contentType := multipartBody(t, map[string]string{"partner": "Acme"},
		"file", "report.txt", []byte("contact alice@example.com"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(h, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.FileID)
	assert.Equal(t, models.TextFile, resp.Type)
	require.Len(t, resp.Review, 1)
	assert.Equal(t, "EMAIL_ADDRESS", resp.Review[0].Detect)
	assert.InDelta(t, 0.95, resp.Review[0].Confidence, 1e-9, "confidence is in the wire domain")
}

func TestUpload_CleanTextFileReturnsEmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	gomock.InOrder(
		m.partners.EXPECT().GetPartnerByName(gomock.Any(), "Acme").
			Return(store.PartnerRecord{ID: "p1", Name: "Acme", DetectionSettings: []string{"EMAIL_ADDRESS"}}, nil),
		m.files.EXPECT().CreateFile(gomock.Any(), gomock.Any()).Return(nil),
	)

	body, contentType := multipartBody(t, map[string]string{"partner": "Acme"},
		"file", "clean.txt", []byte("nothing sensitive"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(h, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"review":[]`, "an analyzed clean file reports an empty batch, not null")
}

func TestUpload_ImageFileHasNoBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	gomock.InOrder(
		m.partners.EXPECT().GetPartnerByName(gomock.Any(), "Acme").
			Return(store.PartnerRecord{ID: "p1", Name: "Acme"}, nil),
		m.files.EXPECT().CreateFile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, record store.FileRecord) error {
				assert.Nil(t, record.Review)
				return nil
			},
		),
	)

	body, contentType := multipartBody(t, map[string]string{"partner": "Acme"},
		"file", "photo.jpg", []byte{0xFF, 0xD8, 0xFF})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(h, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"review":null`)
}

func TestUpload_UnknownPartner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	m.partners.EXPECT().GetPartnerByName(gomock.Any(), "Ghost").
		Return(store.PartnerRecord{}, store.ErrPartnerNotFound)

	body, contentType := multipartBody(t, map[string]string{"partner": "Ghost"},
		"file", "a.txt", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(h, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, store.ErrPartnerNotFound.Error(), errorBody(t, rec))
}

func TestUpload_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	body, contentType := multipartBody(t, map[string]string{"partner": "Acme"}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(h, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "file is required", errorBody(t, rec))
}

// ── POST /proceed ────────────────────────────────────────────────────────────

func TestProceed_TextFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	originalPath := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(originalPath, []byte("contact alice@example.com today"), 0o600))

	file := store.FileRecord{
		ID:           "f1",
		PartnerID:    "p1",
		Filename:     "report.txt",
		Type:         models.TextFile,
		State:        models.PendingReview,
		OriginalPath: originalPath,
	}
	partner := store.PartnerRecord{ID: "p1", Name: "Acme", EncryptionKey: "secret"}

	var artifactPath string
	gomock.InOrder(
		m.files.EXPECT().GetFile(gomock.Any(), "f1").Return(file, nil),
		m.partners.EXPECT().GetPartner(gomock.Any(), "p1").Return(partner, nil),
		m.files.EXPECT().MarkAnonymized(gomock.Any(), "f1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, path string) error {
				artifactPath = path
				return nil
			},
		),
		m.audit.EXPECT().AppendEntries(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entries []store.AuditRecord) error {
				require.Len(t, entries, 1)
				assert.Equal(t, "EMAIL_ADDRESS", entries[0].Detect)
				assert.Equal(t, 1, entries[0].Total)
				return nil
			},
		),
	)

	start, end := 8, 25
	payload, err := json.Marshal(models.ProceedRequest{
		FileID: "f1",
		Review: []models.CleanedItem{
			{Detect: "EMAIL_ADDRESS", Confidence: 0.95, Word: "alice@example.com", Start: &start, End: &end},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/proceed", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := doRequest(h, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProceedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "report.txt", resp.Filename)

	artifact, err := os.ReadFile(artifactPath)
	require.NoError(t, err)
	assert.NotContains(t, string(artifact), "alice@example.com")
	assert.Contains(t, string(artifact), "ENC[")
}

func TestProceed_TabularFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	originalPath := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(originalPath, []byte("name,email\nAlice,a@x.co\nBob,b@x.co\n"), 0o600))

	file := store.FileRecord{
		ID:           "f2",
		PartnerID:    "p1",
		Filename:     "people.csv",
		Type:         models.TabularFile,
		State:        models.PendingReview,
		OriginalPath: originalPath,
	}

	var artifactPath string
	gomock.InOrder(
		m.files.EXPECT().GetFile(gomock.Any(), "f2").Return(file, nil),
		m.partners.EXPECT().GetPartner(gomock.Any(), "p1").
			Return(store.PartnerRecord{ID: "p1", EncryptionKey: "secret"}, nil),
		m.files.EXPECT().MarkAnonymized(gomock.Any(), "f2", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, path string) error {
				artifactPath = path
				return nil
			},
		),
		m.audit.EXPECT().AppendEntries(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entries []store.AuditRecord) error {
				require.Len(t, entries, 1)
				assert.Equal(t, "email", entries[0].Column)
				return nil
			},
		),
	)

	payload, err := json.Marshal(models.ProceedRequest{
		FileID: "f2",
		Review: []models.CleanedItem{{Detect: "EMAIL_ADDRESS", Confidence: 0.95, Column: "email"}},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/proceed", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := doRequest(h, req)
	require.Equal(t, http.StatusOK, rec.Code)

	artifact, err := os.ReadFile(artifactPath)
	require.NoError(t, err)
	assert.Contains(t, string(artifact), "name,email")
	assert.Contains(t, string(artifact), "Alice", "untargeted columns stay in the clear")
	assert.NotContains(t, string(artifact), "a@x.co")
}

func TestProceed_ImageFileCannotBeAnonymized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	originalPath := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(originalPath, []byte{0xFF, 0xD8}, 0o600))

	gomock.InOrder(
		m.files.EXPECT().GetFile(gomock.Any(), "f3").Return(store.FileRecord{
			ID: "f3", PartnerID: "p1", Filename: "photo.jpg", Type: models.ImageFile, OriginalPath: originalPath,
		}, nil),
		m.partners.EXPECT().GetPartner(gomock.Any(), "p1").
			Return(store.PartnerRecord{ID: "p1", EncryptionKey: "k"}, nil),
	)

	req := httptest.NewRequest(http.MethodPost, "/proceed", strings.NewReader(`{"file_id":"f3","review":[]}`))
	req.Header.Set("Content-Type", "application/json")

	rec := doRequest(h, req)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, errorBody(t, rec), "cannot be anonymized")
}

func TestProceed_MissingFileID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/proceed", strings.NewReader(`{"review":[]}`))
	req.Header.Set("Content-Type", "application/json")

	rec := doRequest(h, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "file_id is required", errorBody(t, rec))
}

// ── PUT /api/files/{fileID}/state ────────────────────────────────────────────

func TestSetFileState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	gomock.InOrder(
		m.files.EXPECT().GetFile(gomock.Any(), "f1").
			Return(store.FileRecord{ID: "f1", State: models.Anonymized}, nil),
		m.files.EXPECT().UpdateState(gomock.Any(), "f1", models.Deanonymized).Return(nil),
	)

	req := httptest.NewRequest(http.MethodPut, "/api/files/f1/state", strings.NewReader(`{"state":"De-anonymized"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := doRequest(h, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSetFileState_RejectsPendingReviewTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPut, "/api/files/f1/state", strings.NewReader(`{"state":"Pending Review"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := doRequest(h, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid state", errorBody(t, rec))
}

func TestSetFileState_PendingFileCannotToggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	m.files.EXPECT().GetFile(gomock.Any(), "f1").
		Return(store.FileRecord{ID: "f1", State: models.PendingReview}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/files/f1/state", strings.NewReader(`{"state":"Anonymized"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := doRequest(h, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "file has not been anonymized yet", errorBody(t, rec))
}

// ── GET /api/files/{fileID}/auditlog ─────────────────────────────────────────

func TestAuditLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	gomock.InOrder(
		m.files.EXPECT().GetFile(gomock.Any(), "f1").
			Return(store.FileRecord{ID: "f1", PartnerID: "p1", Filename: "report.txt", Type: models.TextFile}, nil),
		m.partners.EXPECT().GetPartner(gomock.Any(), "p1").
			Return(store.PartnerRecord{ID: "p1", Name: "Acme"}, nil),
		m.audit.EXPECT().ListByFile(gomock.Any(), "f1").Return([]store.AuditRecord{
			{FileID: "f1", Detect: "EMAIL_ADDRESS", Total: 2},
			{FileID: "f1", Detect: "PHONE_NUMBER", Column: "phone"},
		}, nil),
	)

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/api/files/f1/auditlog", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var entry models.AuditLogEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, "report.txt", entry.Filename)
	assert.Equal(t, "Acme", entry.Partner)
	assert.Equal(t, models.AnonymizationMethod, entry.Method)
	require.Len(t, entry.Log, 2)
	assert.Equal(t, 2, entry.Log[0].Total)
	assert.Equal(t, "phone", entry.Log[1].Column)
}

func TestAuditLog_FileNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	m.files.EXPECT().GetFile(gomock.Any(), "missing").
		Return(store.FileRecord{}, store.ErrFileNotFound)

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/api/files/missing/auditlog", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ── GET /api/files/{fileID}/download ─────────────────────────────────────────

func TestDownloadArtifact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	artifactPath := filepath.Join(t.TempDir(), "f1_report.txt")
	require.NoError(t, os.WriteFile(artifactPath, []byte("ENC[blob]"), 0o600))

	m.files.EXPECT().GetFile(gomock.Any(), "f1").Return(store.FileRecord{
		ID: "f1", Filename: "report.txt", State: models.Anonymized, ArtifactPath: artifactPath,
	}, nil)

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/api/files/f1/download", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ENC[blob]", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="report.txt"`)
}

func TestDownloadArtifact_DeanonymizedHidesArtifact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	m.files.EXPECT().GetFile(gomock.Any(), "f1").Return(store.FileRecord{
		ID: "f1", State: models.Deanonymized, ArtifactPath: "/somewhere",
	}, nil)

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/api/files/f1/download", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no anonymized artifact for this file", errorBody(t, rec))
}

// ── POST /download ───────────────────────────────────────────────────────────

func TestDownloadAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)

	dir := t.TempDir()
	artifactA := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(artifactA, []byte("anon-a"), 0o600))

	gomock.InOrder(
		m.partners.EXPECT().GetPartnerByName(gomock.Any(), "Acme").
			Return(store.PartnerRecord{ID: "p1", Name: "Acme"}, nil),
		m.files.EXPECT().ListFilesByPartner(gomock.Any(), "p1").Return([]store.FileRecord{
			{ID: "f1", Filename: "a.txt", State: models.Anonymized, ArtifactPath: artifactA},
			{ID: "f2", Filename: "b.txt", State: models.Deanonymized, ArtifactPath: "/ignored"},
			{ID: "f3", Filename: "c.txt", State: models.PendingReview},
		}, nil),
	)

	form := strings.NewReader("partner=Acme")
	req := httptest.NewRequest(http.MethodPost, "/download", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := doRequest(h, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="Acme.zip"`)

	reader, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	require.NoError(t, err)
	require.Len(t, reader.File, 1, "only anonymized files enter the archive")
	assert.Equal(t, "a.txt", reader.File[0].Name)

	entry, err := reader.File[0].Open()
	require.NoError(t, err)
	defer func() { _ = entry.Close() }()
	content, err := io.ReadAll(entry)
	require.NoError(t, err)
	assert.Equal(t, "anon-a", string(content))
}

// ── GET /api/version ─────────────────────────────────────────────────────────

func TestGetVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	rec := doRequest(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"test"}`, rec.Body.String())
}
