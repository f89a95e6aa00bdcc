package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/ar-fit/internal/config"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/utils"
)

// ImportPath is the import endpoint of the ar-fit HTTP API.
const ImportPath = "/api/data/import"

// ExportNameHeader carries the export file name alongside the payload.
const ExportNameHeader = "X-Export-Name"

// HTTPSink uploads the export to another ar-fit server.
type HTTPSink struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPSink normalises and validates cfg.RemoteAddress and configures the
// underlying HTTP client with it and cfg.RemoteTimeout.
//
// Returns an error wrapping [ErrInvalidDestination] if the address is empty
// or cannot be parsed as a URL.
func NewHTTPSink(cfg config.Export, logger *logger.Logger) (*HTTPSink, error) {
	baseURL, err := normalizeBaseURL(cfg.RemoteAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: remote address: %w", ErrInvalidDestination, err)
	}

	return &HTTPSink{
		client:  utils.NewHTTPClient(baseURL, cfg.RemoteTimeout),
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Put POSTs data to the remote import endpoint. The remote replaces all of
// its users with the payload.
func (h *HTTPSink) Put(ctx context.Context, name string, data []byte) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(ExportNameHeader, name).
		SetBody(data).
		Post(ImportPath)
	if err != nil {
		return "", fmt.Errorf("export upload request: %w", err)
	}
	if err = mapImportResponse(resp); err != nil {
		h.logger.Err(err).Str("func", "HTTPSink.Put").Int("status", resp.StatusCode()).Msg("remote refused the export")
		return "", err
	}

	location := h.baseURL + ImportPath
	h.logger.Info().Str("location", location).Int("bytes", len(data)).Msg("export uploaded")
	return location, nil
}
