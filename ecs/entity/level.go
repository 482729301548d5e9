package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/levels"
)

// LoadLevelToWorld spawns the level boundary, its platforms and every placed
// entity into world.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level) error {
	if lvl == nil {
		return fmt.Errorf("load level: level is nil")
	}
	if _, err := NewBoundary(world, lvl.Name, lvl.Boundary); err != nil {
		return fmt.Errorf("load level %s: %w", lvl.Name, err)
	}
	for _, p := range lvl.Platforms {
		if _, err := NewPlatform(world, p); err != nil {
			return fmt.Errorf("load level %s: platform %q: %w", lvl.Name, p.Name, err)
		}
	}

	for _, ent := range lvl.Entities {
		var err error
		switch ent.Type {
		case "marine":
			_, err = NewMarineAt(world, ent.X, ent.Y)
		case "pincer":
			name := ent.StringProp("platform")
			p, ok := lvl.Platform(name)
			if !ok {
				err = fmt.Errorf("unknown platform %q", name)
				break
			}
			_, err = NewPincerAt(world, ent.X, ent.Y, p.Bounds())
		case "crate":
			_, err = NewCrateAt(world, ent.X, ent.Y)
		case "camera":
			_, err = NewCamera(world)
		default:
			log.Printf("LoadLevelToWorld: skipping unknown entity type %q", ent.Type)
		}
		if err != nil {
			return fmt.Errorf("load level %s: %s at (%v,%v): %w", lvl.Name, ent.Type, ent.X, ent.Y, err)
		}
	}
	return nil
}
