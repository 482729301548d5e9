package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type BoundingBoxComponentSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type MotionComponentSpec struct {
	VelocityX float64 `yaml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y"`
}

type MarineComponentSpec struct {
	MaxSpeed      float64 `yaml:"max_speed"`
	Acceleration  float64 `yaml:"acceleration"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	ShootCooldown int     `yaml:"shoot_cooldown"`
}

type PincerComponentSpec struct {
	Speed  float64 `yaml:"speed"`
	Health int     `yaml:"health"`
}

type BulletComponentSpec struct {
	Damage int     `yaml:"damage"`
	Speed  float64 `yaml:"speed"`
}

type PhysicsBodyComponentSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
	Static   bool    `yaml:"static"`
}

type AnimationComponentSpec struct {
	Current string   `yaml:"current"`
	Types   []string `yaml:"types"`
}

type CameraComponentSpec struct {
	TargetName string  `yaml:"target_name"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Smoothness float64 `yaml:"smoothness"`
}

type TTLComponentSpec struct {
	Frames int `yaml:"frames"`
}

type NameComponentSpec struct {
	Value string `yaml:"value"`
}
