package config

import (
	"bytes"
	"io"

	"github.com/jmgilman/go/vfs/errors"
	"gopkg.in/yaml.v3"
)

// Encode renders cfg as YAML.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(&buf, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes cfg as YAML to w.
func EncodeTo(w io.Writer, cfg *Config) error {
	if w == nil {
		return errors.New(errors.CodeInvalidInput, "writer cannot be nil")
	}
	if cfg == nil {
		return errors.New(errors.CodeInvalidInput, "config cannot be nil")
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return wrapf(err, "failed to encode config")
	}
	if err := enc.Close(); err != nil {
		return wrapf(err, "failed to encode config")
	}
	return nil
}
