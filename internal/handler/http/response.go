package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-env-overlay/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Path  string `json:"path,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// writeError renders err as {"error": ...} with the status from errorStatusMap.
func writeError(w http.ResponseWriter, r *http.Request, err error, path string) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
	}

	writeJSON(w, r, status, errorResponse{Error: err.Error(), Path: path})
}
