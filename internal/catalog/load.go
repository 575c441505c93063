package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog file from disk. A missing file is an empty catalog.
// Files ending in .yml or .yaml are decoded as YAML, anything else as JSON.
func Load(path string) ([]Plant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Plant{}, nil
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	if isYAML(path) {
		return ParseYAML(data)
	}
	return Parse(data)
}

// LoadOrEmpty is Load with the fallback applied: the returned catalog is
// never nil, and on failure it is empty while the error is still reported
// so the caller can log it.
func LoadOrEmpty(path string) ([]Plant, error) {
	plants, err := Load(path)
	if err != nil {
		return []Plant{}, err
	}
	return plants, nil
}

// Parse decodes a JSON array of plant records.
func Parse(data []byte) ([]Plant, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []Plant{}, nil
	}
	var plants []Plant
	if err := json.Unmarshal(data, &plants); err != nil {
		return nil, fmt.Errorf("parsing catalog JSON: %w", err)
	}
	return normalize(plants), nil
}

// ParseYAML decodes a YAML list of plant records.
func ParseYAML(data []byte) ([]Plant, error) {
	if len(data) == 0 {
		return []Plant{}, nil
	}
	var plants []Plant
	if err := yaml.Unmarshal(data, &plants); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	return normalize(plants), nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	}
	return false
}
