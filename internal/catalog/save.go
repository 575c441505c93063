package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Marshal encodes a plant list to indented JSON.
func Marshal(plants []Plant) ([]byte, error) {
	if plants == nil {
		plants = []Plant{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(plants); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalYAML encodes a plant list to YAML.
func MarshalYAML(plants []Plant) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(plants); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the plant list to a file, as YAML or JSON depending on the
// extension.
func Save(path string, plants []Plant) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = MarshalYAML(plants)
	} else {
		data, err = Marshal(plants)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
