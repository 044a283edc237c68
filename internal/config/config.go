package config

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// FileConfig represents the configuration file structure
type FileConfig struct {
	Prefix     *string  `yaml:"prefix"`
	Command    string   `yaml:"command"`
	Args       []string `yaml:"args"`
	Set        []string `yaml:"set"`
	Duplicates bool     `yaml:"duplicates"`
	Malformed  bool     `yaml:"malformed"`
	Strict     bool     `yaml:"strict"`
	Verbose    bool     `yaml:"verbose"`
}

// LoadFile loads configuration from a YAML file.
// Unknown fields are rejected.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("read config: %w", err)
	}

	var cfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !xerrors.Is(err, io.EOF) {
		return nil, xerrors.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}
