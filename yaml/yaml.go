// Package yaml loads tutor.Config from YAML files using gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/tutor"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the file at path and decodes it over
// tutor.DefaultConfig. Keys absent from the file keep their defaults.
func LoadConfig(path string) (tutor.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tutor.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return tutor.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML data over tutor.DefaultConfig. Unknown keys are
// rejected so that typos do not silently fall back to defaults. The result
// is validated.
func ParseConfig(data []byte) (tutor.Config, error) {
	cfg := tutor.DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return tutor.Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return tutor.Config{}, err
	}
	return cfg, nil
}
