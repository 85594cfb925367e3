package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML catalog file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var cf File

	err := yaml.Unmarshal(data, &cf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	applyDefaults(&cf)

	return &cf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cf *File) {
	if cf.Version == "" {
		cf.Version = SchemaVersion
	}

	for i := range cf.Masks {
		m := &cf.Masks[i]
		if m.Description == "" {
			m.Description = m.Pattern
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(cf *File) ([]byte, error) {
	return yaml.Marshal(cf)
}

// WriteFile writes a File to the given path.
func WriteFile(cf *File, path string) error {
	data, err := Marshal(cf)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file %s: %w", path, err)
	}

	return nil
}
