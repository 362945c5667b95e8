package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/MKhiriev/go-env-overlay/models"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a configuration document.
type Format string

const (
	// FormatUnknown asks the loader to detect the format.
	FormatUnknown Format = ""
	// FormatJSON is a JSON document.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return FormatUnknown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// formatFromName detects the format from a file name or URL path extension.
func formatFromName(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// formatFromContentType detects the format from an HTTP Content-Type.
func formatFromContentType(contentType string) Format {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "json"):
		return FormatJSON
	case strings.Contains(ct, "yaml"):
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// Decode parses data in the given format into a configuration tree. JSON
// integers decode as integers.
func Decode(data []byte, format Format) (models.Value, error) {
	switch format {
	case FormatJSON:
		var v models.Value
		if err := v.UnmarshalJSON(data); err != nil {
			return models.Value{}, fmt.Errorf("error decoding json config: %w", err)
		}
		return v, nil
	case FormatYAML:
		var raw any
		err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&raw)
		if errors.Is(err, io.EOF) {
			return models.Mapping(nil), nil
		}
		if err != nil {
			return models.Value{}, fmt.Errorf("error decoding yaml config: %w", err)
		}
		v, err := models.FromAny(raw)
		if err != nil {
			return models.Value{}, fmt.Errorf("error converting yaml config: %w", err)
		}
		return v, nil
	default:
		return models.Value{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
