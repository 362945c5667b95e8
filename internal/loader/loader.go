// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-env-overlay/internal/logger"
	"github.com/MKhiriev/go-env-overlay/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used to fetch
// remote configuration documents.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client with the given request
// timeout. A zero timeout means no timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{Client: resty.New().SetTimeout(timeout)}
}

// Loader loads base configuration trees.
type Loader struct {
	client *HTTPClient
	format Format
	logger *logger.Logger
}

// NewLoader returns a Loader. format forces a document format; FormatUnknown
// detects it from the extension or, for URLs, the Content-Type.
func NewLoader(client *HTTPClient, format Format, log *logger.Logger) *Loader {
	if client == nil {
		client = NewHTTPClient(0)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Loader{
		client: client,
		format: format,
		logger: log,
	}
}

// Load reads source, a file path or an http(s) URL, and decodes it.
func (l *Loader) Load(ctx context.Context, source string) (models.Value, error) {
	if strings.TrimSpace(source) == "" {
		return models.Value{}, ErrEmptySource
	}

	if isURL(source) {
		return l.loadURL(ctx, source)
	}
	return l.loadFile(source)
}

func (l *Loader) loadFile(path string) (models.Value, error) {
	format := l.format
	if format == FormatUnknown {
		format = formatFromName(path)
	}
	if format == FormatUnknown {
		return models.Value{}, fmt.Errorf("%w: cannot detect format of %q", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Value{}, fmt.Errorf("error reading config file: %w", err)
	}

	l.logger.Debug().Str("path", path).Str("format", string(format)).Int("size", len(data)).Msg("config file read")

	return Decode(data, format)
}

func (l *Loader) loadURL(ctx context.Context, rawURL string) (models.Value, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return models.Value{}, fmt.Errorf("error parsing config url: %w", err)
	}

	resp, err := l.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json, application/yaml;q=0.9, */*;q=0.1").
		Get(rawURL)
	if err != nil {
		return models.Value{}, fmt.Errorf("error fetching config: %w", err)
	}
	if resp.IsError() {
		return models.Value{}, fmt.Errorf("error fetching config from %s: %w: %d", rawURL, ErrUnexpectedStatus, resp.StatusCode())
	}

	format := l.format
	if format == FormatUnknown {
		format = formatFromName(u.Path)
	}
	if format == FormatUnknown {
		format = formatFromContentType(resp.Header().Get("Content-Type"))
	}
	if format == FormatUnknown {
		return models.Value{}, fmt.Errorf("%w: cannot detect format of %s", ErrUnsupportedFormat, rawURL)
	}

	l.logger.Debug().
		Str("url", rawURL).
		Int("status", resp.StatusCode()).
		Str("format", string(format)).
		Dur("duration", resp.Time()).
		Msg("config fetched")

	return Decode(resp.Body(), format)
}

func isURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
