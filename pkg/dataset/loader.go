package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MovieMaker93/landscape2/pkg/catalog"
	"github.com/MovieMaker93/landscape2/pkg/models"
)

// Load reads and validates a landscape dataset file, returning the
// catalog snapshot built from it.
func Load(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset %s: %w", path, err)
	}
	return cat, nil
}

// Parse unmarshals a raw dataset document and validates it into a
// catalog. A malformed document fails the whole load.
func Parse(data []byte) (*catalog.Catalog, error) {
	var raw models.Dataset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return catalog.Load(&raw)
}

// LoadSettings reads the settings file, falling back to defaults when the
// file does not exist.
func LoadSettings(path string) (*models.Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return settings, nil
}
