// Package config loads service configuration from YAML files. An optional
// .env file is loaded first and ${VAR} references in the YAML are expanded
// from the environment before decoding.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load decodes the YAML file at path into dst.
func Load(path string, dst any) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open configuration %s: %w", path, err)
	}
	expanded := os.ExpandEnv(string(raw))
	dec := yaml.NewDecoder(bytes.NewBufferString(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("parse configuration %s: %w", path, err)
	}
	return nil
}
