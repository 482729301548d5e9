package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type validator interface {
	Validate() error
}

// LoadSpec decodes a prefab into T. Specs that implement Validate are
// checked before they are returned.
func LoadSpec[T any](filename string) (T, error) {
	spec, _, err := loadSpec[T](filename)
	return spec, err
}

func loadSpec[T any](filename string) (T, Source, error) {
	var zero T
	data, src, err := load(filename)
	if err != nil {
		return zero, src, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return zero, src, fmt.Errorf("prefabs: decode %s (%s): %w", filename, src, err)
	}

	if v, ok := any(spec).(validator); ok {
		if err := v.Validate(); err != nil {
			return zero, src, fmt.Errorf("prefabs: %s (%s): %w", filename, src, err)
		}
	}
	return spec, src, nil
}
