// Package loader reads base configuration trees for confctl from local files
// or http(s) URLs and decodes them from JSON or YAML.
package loader
