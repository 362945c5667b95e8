package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// settingsFile is the on-disk shape of the JSON settings file. Durations are
// written as strings such as "30s".
type settingsFile struct {
	Source struct {
		Path     string   `json:"path"`
		Format   string   `json:"format"`
		EnvFiles []string `json:"env_files"`
		Timeout  Duration `json:"timeout"`
	} `json:"source"`

	Overlay struct {
		Prefix    string `json:"prefix"`
		Separator string `json:"separator"`
		Disabled  *bool  `json:"disabled"`
	} `json:"overlay"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Log struct {
		Level string `json:"level"`
	} `json:"log"`
}

// parseJSON reads the settings file. The returned *bool is Overlay.Disabled
// when the file sets it and nil otherwise.
func parseJSON(jsonFilePath string) (*StructuredConfig, *bool, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var file settingsFile
	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Source: Source{
			Path:     file.Source.Path,
			Format:   file.Source.Format,
			EnvFiles: file.Source.EnvFiles,
			Timeout:  time.Duration(file.Source.Timeout),
		},
		Overlay: Overlay{
			Prefix:    file.Overlay.Prefix,
			Separator: file.Overlay.Separator,
		},
		Server: Server{
			HTTPAddress:    file.Server.HTTPAddress,
			RequestTimeout: time.Duration(file.Server.RequestTimeout),
		},
		Log: Log{
			Level: file.Log.Level,
		},
	}

	if file.Overlay.Disabled != nil {
		cfg.Overlay.Disabled = *file.Overlay.Disabled
	}

	return cfg, file.Overlay.Disabled, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
