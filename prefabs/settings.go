package prefabs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/marinescroller/collision"
	"github.com/milk9111/marinescroller/ecs/component"
)

const SettingsFile = "collision.yaml"

var ErrInvalidSettings = errors.New("prefabs: invalid settings")

// Settings holds the simulation and collision tuning read from collision.yaml.
type Settings struct {
	TickRate  int               `yaml:"tick_rate"`
	Gravity   float64           `yaml:"gravity"`
	Collision CollisionSettings `yaml:"collision"`
	Debug     bool              `yaml:"debug"`
}

type CollisionSettings struct {
	ZeroSpeedRatio    *float64 `yaml:"zero_speed_ratio"`
	Epsilon           float64  `yaml:"epsilon"`
	SlotPolicy        string   `yaml:"slot_policy"`
	ParallelThreshold int      `yaml:"parallel_threshold"`
}

func LoadSettings() (Settings, error) {
	return LoadSpec[Settings](SettingsFile)
}

// ReloadSettings is LoadSettings that also reports whether the values came
// from the on-disk override or the embedded defaults.
func ReloadSettings() (Settings, Source, error) {
	return loadSpec[Settings](SettingsFile)
}

func (s Settings) Validate() error {
	if s.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidSettings, s.TickRate)
	}
	if s.Collision.Epsilon < 0 {
		return fmt.Errorf("%w: collision.epsilon must not be negative", ErrInvalidSettings)
	}
	if _, err := parseSlotPolicy(s.Collision.SlotPolicy); err != nil {
		return err
	}
	return nil
}

// CollisionOptions converts the YAML settings into detection options. Unset
// fields keep their defaults.
func (s Settings) CollisionOptions() collision.Options {
	opts := collision.DefaultOptions()
	if s.Collision.ZeroSpeedRatio != nil {
		opts.ZeroSpeedRatio = *s.Collision.ZeroSpeedRatio
	}
	if s.Collision.Epsilon > 0 {
		opts.Epsilon = s.Collision.Epsilon
	}
	if policy, err := parseSlotPolicy(s.Collision.SlotPolicy); err == nil {
		opts.Policy = policy
	}
	return opts
}

func parseSlotPolicy(v string) (component.SlotPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "largest":
		return component.SlotLargest, nil
	case "last_write", "last":
		return component.SlotLastWrite, nil
	}
	return 0, fmt.Errorf("%w: unknown collision.slot_policy %q", ErrInvalidSettings, v)
}
