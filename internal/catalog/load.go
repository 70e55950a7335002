package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tj2904.com/internal/models"
)

//go:embed data/projects.json
var defaultData []byte

// Default returns the catalog shipped with the binary
func Default() (*Catalog, error) {
	records, err := DecodeJSON(defaultData)
	if err != nil {
		return nil, fmt.Errorf("embedded projects.json: %w", err)
	}
	return New(records)
}

// Load reads a catalog file. The format is chosen by extension:
// .json, .yaml or .yml.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var records []models.Record
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		records, err = DecodeJSON(data)
	case ".yaml", ".yml":
		records, err = DecodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	return New(records)
}

// DecodeJSON parses a JSON array of records
func DecodeJSON(data []byte) ([]models.Record, error) {
	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DecodeYAML parses a YAML sequence of records
func DecodeYAML(data []byte) ([]models.Record, error) {
	var records []models.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
