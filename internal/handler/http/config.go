// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-env-overlay/internal/logger"
	"github.com/MKhiriev/go-env-overlay/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.config.Value())
}

// getConfigPath serves GET /api/config/{path}. Segments may be separated by
// "/" or "."; both forms resolve to the same dotted path.
func (h *Handler) getConfigPath(w http.ResponseWriter, r *http.Request) {
	raw, err := routeParam(r, "*")
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidPath, err), "")
		return
	}

	path := dottedPath(raw)
	if path == "" {
		h.getConfig(w, r)
		return
	}

	value, ok := h.config.Get(path)
	if !ok {
		logger.FromRequest(r).Debug().Str("path", path).Msg("configuration path not found")
		writeError(w, r, ErrPathNotFound, path)
		return
	}

	writeJSON(w, r, http.StatusOK, value)
}

func (h *Handler) getOverrides(w http.ResponseWriter, r *http.Request) {
	overrides := h.config.Overrides()
	if overrides == nil {
		overrides = []models.Override{}
	}
	writeJSON(w, r, http.StatusOK, overrides)
}

// routeParam returns the decoded URL parameter. chi matches against
// URL.RawPath when it is set, and the parameter is still escaped then.
func routeParam(r *http.Request, key string) (string, error) {
	param := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return param, nil
	}
	return url.PathUnescape(param)
}

func dottedPath(raw string) string {
	return strings.ReplaceAll(strings.Trim(raw, "/"), "/", ".")
}
