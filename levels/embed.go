package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/milk9111/marinescroller/ecs/component"
)

//go:embed *.json
var LevelsFS embed.FS

type Level struct {
	Name      string             `json:"name"`
	Boundary  component.Boundary `json:"boundary"`
	Platforms []Platform         `json:"platforms"`
	Entities  []Entity           `json:"entities,omitempty"`
}

// Platform is a static solid rectangle given by its centre and full size.
type Platform struct {
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bounds returns the rectangle the platform occupies.
func (p Platform) Bounds() component.Boundary {
	return component.Boundary{
		Left:   p.X - p.Width/2,
		Right:  p.X + p.Width/2,
		Top:    p.Y - p.Height/2,
		Bottom: p.Y + p.Height/2,
	}
}

type Entity struct {
	Type  string         `json:"type"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

// StringProp returns a string property, or "" when absent.
func (e Entity) StringProp(key string) string {
	if v, ok := e.Props[key].(string); ok {
		return v
	}
	return ""
}

// Platform looks a platform up by name.
func (l *Level) Platform(name string) (Platform, bool) {
	for _, p := range l.Platforms {
		if p.Name == name {
			return p, true
		}
	}
	return Platform{}, false
}

func LoadLevelFromFS(name string) (*Level, error) {
	if name == "" {
		name = "docks"
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Boundary.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &lvl, nil
}
