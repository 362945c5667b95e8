package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-env-overlay/internal/logger"
	"github.com/MKhiriev/go-env-overlay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonDoc = `{
  "name": "mock",
  "server": {"port": 8080, "base_path": "/api"},
  "logs": [{"level": "info", "output": "console"}],
  "nums": [1, 2, 3],
  "ratio": 0.5
}`

const yamlDoc = `
name: mock
server:
  port: 8080
  base_path: /api
logs:
  - level: info
    output: console
nums: [1, 2, 3]
ratio: 0.5
`

func wantDoc() models.Value {
	return models.MustFromAny(map[string]any{
		"name":   "mock",
		"server": map[string]any{"port": 8080, "base_path": "/api"},
		"logs":   []any{map[string]any{"level": "info", "output": "console"}},
		"nums":   []any{1, 2, 3},
		"ratio":  0.5,
	})
}

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestLoader(format Format) *Loader {
	return NewLoader(NewHTTPClient(5*time.Second), format, logger.Nop())
}

// ── files ─────────────────────────────────────────────────────────────────────

func TestLoad_Files(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "json", file: "config.json", content: jsonDoc},
		{name: "yaml", file: "config.yaml", content: yamlDoc},
		{name: "yml upper-case extension", file: "config.YML", content: yamlDoc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.file, tt.content)

			got, err := newTestLoader(FormatUnknown).Load(context.Background(), path)

			require.NoError(t, err)
			assert.True(t, wantDoc().Equal(got), "got %s", got)
		})
	}
}

func TestLoad_ForcedFormat(t *testing.T) {
	path := writeTempConfig(t, "config.conf", yamlDoc)

	got, err := newTestLoader(FormatYAML).Load(context.Background(), path)

	require.NoError(t, err)
	assert.True(t, wantDoc().Equal(got))
}

func TestLoad_UnknownExtension(t *testing.T) {
	path := writeTempConfig(t, "config.toml", "a = 1")

	_, err := newTestLoader(FormatUnknown).Load(context.Background(), path)

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := newTestLoader(FormatUnknown).Load(context.Background(), filepath.Join(t.TempDir(), "none.json"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EmptySource(t *testing.T) {
	_, err := newTestLoader(FormatUnknown).Load(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{"a": `)

	_, err := newTestLoader(FormatUnknown).Load(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json config")
}

// ── urls ──────────────────────────────────────────────────────────────────────

func TestLoad_URL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/config.yaml", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(yamlDoc))
	})
	mux.HandleFunc("/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(jsonDoc))
	})
	mux.HandleFunc("/plain", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(jsonDoc))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	t.Run("format from extension", func(t *testing.T) {
		got, err := newTestLoader(FormatUnknown).Load(context.Background(), srv.URL+"/config.yaml")
		require.NoError(t, err)
		assert.True(t, wantDoc().Equal(got))
	})

	t.Run("format from content type", func(t *testing.T) {
		got, err := newTestLoader(FormatUnknown).Load(context.Background(), srv.URL+"/config")
		require.NoError(t, err)
		assert.True(t, wantDoc().Equal(got))
	})

	t.Run("undetectable format", func(t *testing.T) {
		_, err := newTestLoader(FormatUnknown).Load(context.Background(), srv.URL+"/plain")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("forced format", func(t *testing.T) {
		got, err := newTestLoader(FormatJSON).Load(context.Background(), srv.URL+"/plain")
		require.NoError(t, err)
		assert.True(t, wantDoc().Equal(got))
	})

	t.Run("error status", func(t *testing.T) {
		_, err := newTestLoader(FormatJSON).Load(context.Background(), srv.URL+"/broken")
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})
}

func TestLoad_URLCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(jsonDoc))
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestLoader(FormatJSON).Load(ctx, srv.URL+"/config.json")

	assert.ErrorIs(t, err, context.Canceled)
}

// ── decode ────────────────────────────────────────────────────────────────────

func TestDecode_EmptyYAMLIsEmptyMapping(t *testing.T) {
	got, err := Decode([]byte(""), FormatYAML)

	require.NoError(t, err)
	assert.Equal(t, models.KindMapping, got.Kind())
	assert.Zero(t, got.Len())
}

func TestDecode_YAMLScalars(t *testing.T) {
	got, err := Decode([]byte("enabled: true\ncount: 3\nnothing: ~\nwhen: 2024-01-02\n"), FormatYAML)

	require.NoError(t, err)
	assert.True(t, models.MustFromAny(map[string]any{
		"enabled": true,
		"count":   3,
		"nothing": nil,
		"when":    "2024-01-02",
	}).Equal(got), "got %s", got)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatUnknown},
		{in: "JSON", want: FormatJSON},
		{in: "yml", want: FormatYAML},
		{in: " yaml ", want: FormatYAML},
		{in: "toml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
