package chart

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/orgflow/pkg/errors"
)

// NewID returns a fresh shape identifier.
func NewID() string {
	return uuid.NewString()
}

// Unmarshal decodes a chart document from JSON, fills defaults, and
// validates it.
func Unmarshal(data []byte) (*Chart, error) {
	var c Chart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidChart, err, "decode chart")
	}
	if err := c.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Marshal encodes a chart document as indented JSON with a trailing
// newline, the form written to disk and returned by the API.
func Marshal(c *Chart) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode chart")
	}
	return buf.Bytes(), nil
}

// Read loads and validates a chart document from a file.
func Read(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read chart file %s", path)
	}
	return Unmarshal(data)
}

// Write saves a chart document to a file, creating or truncating it.
func Write(c *Chart, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write chart file %s", path)
	}
	return nil
}
