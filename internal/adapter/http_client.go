package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

// HTTPClientConfig holds the settings of the HTTP portal adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpPortalAdapter struct {
	client *resty.Client
	log    *logger.Logger
}

// NewHTTPPortalAdapter creates a PortalAdapter speaking the portal's REST
// protocol over HTTP.
func NewHTTPPortalAdapter(cfg HTTPClientConfig, log *logger.Logger) PortalAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpPortalAdapter{client: cli, log: log}
}

func (h *httpPortalAdapter) ListPartners(ctx context.Context) ([]models.Partner, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/partners")
	if err != nil {
		return nil, fmt.Errorf("list partners request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var partners []models.Partner
	if err = json.Unmarshal(resp.Body(), &partners); err != nil {
		return nil, fmt.Errorf("decode partners response: %w", err)
	}
	return partners, nil
}

func (h *httpPortalAdapter) CreatePartner(ctx context.Context, req models.CreatePartnerRequest) (models.Partner, error) {
	detection, err := json.Marshal(req.DetectionSettings)
	if err != nil {
		return models.Partner{}, fmt.Errorf("encode detection settings: %w", err)
	}

	// The server parses partner writes as multipart regardless of whether
	// an icon is attached, so the fields must be sent as multipart parts.
	r := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"partner":   req.Name,
			"key":       req.EncryptionKey,
			"password":  req.FilePassword,
			"detection": string(detection),
		})
	if req.IconPath != "" {
		r.SetFile("icon", req.IconPath)
	}

	resp, err := r.Post("/create-partner")
	if err != nil {
		return models.Partner{}, fmt.Errorf("create partner request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Partner{}, err
	}

	var partner models.Partner
	if err = json.Unmarshal(resp.Body(), &partner); err != nil {
		return models.Partner{}, fmt.Errorf("decode created partner: %w", err)
	}
	return partner, nil
}

func (h *httpPortalAdapter) UpdatePartner(ctx context.Context, partnerID string, req models.UpdatePartnerRequest) (models.Partner, error) {
	fields := map[string]string{}
	if req.Name != nil {
		fields["partner"] = *req.Name
	}
	if req.EncryptionKey != nil {
		fields["key"] = *req.EncryptionKey
	}
	if req.FilePassword != nil {
		fields["password"] = *req.FilePassword
	}
	if req.DetectionSettings != nil {
		detection, err := json.Marshal(req.DetectionSettings)
		if err != nil {
			return models.Partner{}, fmt.Errorf("encode detection settings: %w", err)
		}
		fields["detection"] = string(detection)
	}

	r := h.client.R().SetContext(ctx).SetMultipartFormData(fields)
	if req.IconPath != nil && *req.IconPath != "" {
		r.SetFile("icon", *req.IconPath)
	}

	resp, err := r.Put("/api/partners/" + partnerID)
	if err != nil {
		return models.Partner{}, fmt.Errorf("update partner request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Partner{}, err
	}

	var partner models.Partner
	if err = json.Unmarshal(resp.Body(), &partner); err != nil {
		return models.Partner{}, fmt.Errorf("decode updated partner: %w", err)
	}
	return partner, nil
}

func (h *httpPortalAdapter) DeletePartner(ctx context.Context, partnerID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/partners/" + partnerID)
	if err != nil {
		return fmt.Errorf("delete partner request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpPortalAdapter) Upload(ctx context.Context, partnerName, filename string, content []byte) (models.UploadResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"partner": partnerName}).
		SetFileReader("file", filename, bytes.NewReader(content)).
		Post("/upload")
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	var ur models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &ur); err != nil {
		return models.UploadResponse{}, fmt.Errorf("decode upload response: %w", err)
	}

	h.log.Debug().
		Str("file_id", ur.FileID).
		Str("type", string(ur.Type)).
		Int("candidates", len(ur.Review)).
		Msg("file uploaded for detection")

	return ur, nil
}

func (h *httpPortalAdapter) Proceed(ctx context.Context, req models.ProceedRequest) (models.ProceedResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/proceed")
	if err != nil {
		return models.ProceedResponse{}, fmt.Errorf("proceed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProceedResponse{}, err
	}

	var pr models.ProceedResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return models.ProceedResponse{}, fmt.Errorf("decode proceed response: %w", err)
	}
	return pr, nil
}

func (h *httpPortalAdapter) SetFileState(ctx context.Context, fileID string, state models.FileState) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.StateRequest{State: state}).
		Put("/api/files/" + fileID + "/state")
	if err != nil {
		return fmt.Errorf("set file state request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpPortalAdapter) AuditLog(ctx context.Context, fileID string) (models.AuditLogEntry, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/files/" + fileID + "/auditlog")
	if err != nil {
		return models.AuditLogEntry{}, fmt.Errorf("audit log request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuditLogEntry{}, err
	}

	var entry models.AuditLogEntry
	if err = json.Unmarshal(resp.Body(), &entry); err != nil {
		return models.AuditLogEntry{}, fmt.Errorf("decode audit log: %w", err)
	}
	return entry, nil
}

func (h *httpPortalAdapter) DownloadAll(ctx context.Context, partnerName string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"partner": partnerName}).
		Post("/download")
	if err != nil {
		return nil, fmt.Errorf("download all request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}
