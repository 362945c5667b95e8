package http

import "github.com/MKhiriev/go-env-overlay/models"

//go:generate mockgen -source=interfaces.go -destination=../../mock/config_reader_mock.go -package=mock

// ConfigReader is the read side of a merged configuration. *conf.Conf
// satisfies it.
type ConfigReader interface {
	// Get resolves a dotted path and returns a copy of the value found there.
	Get(path string) (models.Value, bool)

	// Value returns a copy of the whole tree.
	Value() models.Value

	// Overrides lists the leaves replaced by environment variables.
	Overrides() []models.Override
}
