package prefabs

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var embedded embed.FS

// Dir is where on-disk prefab overrides are looked up. A file found there
// replaces the embedded copy of the same name.
var Dir = "prefabs"

// Source says where a prefab was read from.
type Source int

const (
	SourceEmbedded Source = iota
	SourceDisk
)

func (s Source) String() string {
	if s == SourceDisk {
		return "disk"
	}
	return "embedded"
}

// Load returns the raw bytes of a prefab, preferring the copy under Dir.
func Load(name string) ([]byte, error) {
	data, _, err := load(name)
	return data, err
}

func load(name string) ([]byte, Source, error) {
	clean := cleanName(name)
	data, err := os.ReadFile(filepath.Join(Dir, clean))
	if err == nil {
		return data, SourceDisk, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, SourceDisk, err
	}
	data, err = embedded.ReadFile(clean)
	return data, SourceEmbedded, err
}

// cleanName maps "prefabs/marine.yaml", "marine.yaml" and "marine" to the
// embedded file name.
func cleanName(name string) string {
	s := path.Clean(filepath.ToSlash(name))
	s = strings.TrimPrefix(s, "prefabs/")
	if path.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}
