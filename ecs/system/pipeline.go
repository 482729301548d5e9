package system

import (
	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/prefabs"
)

// Pipeline holds one instance of every per-tick system so settings can be
// re-applied after a reload without rebuilding the scheduler.
type Pipeline struct {
	Input        *InputSystem
	Acceleration *AccelerationSystem
	Physics      *PhysicsSystem
	Collision    *CollisionSystem
	Bullets      *BulletCollisionSystem
	Pincers      *PincerCollisionSystem
	Motion       *MotionSystem
	Animation    *AnimationSystem
	TTL          *TTLSystem
	Camera       *CameraSystem
	Render       *RenderSystem
	Debug        *DebugSystem
}

func NewPipeline(settings prefabs.Settings) *Pipeline {
	opts := settings.CollisionOptions()
	physics := NewPhysicsSystem(settings.Gravity)
	p := &Pipeline{
		Input:        NewInputSystem(),
		Acceleration: NewAccelerationSystem(settings.Gravity),
		Physics:      physics,
		Collision:    NewCollisionSystem(opts, settings.Collision.ParallelThreshold),
		Bullets:      NewBulletCollisionSystem(),
		Pincers:      NewPincerCollisionSystem(opts.Policy),
		Motion:       NewMotionSystem(),
		Animation:    NewAnimationSystem(),
		TTL:          NewTTLSystem(),
		Camera:       NewCameraSystem(),
		Render:       NewRenderSystem(),
		Debug:        NewDebugSystem(physics, settings.Debug),
	}
	p.Collision.Debug = settings.Debug
	return p
}

// Systems returns the systems in tick order. Render systems come last so
// they draw the settled state.
func (p *Pipeline) Systems() []ecs.System {
	return []ecs.System{
		p.Input,
		p.Acceleration,
		p.Physics,
		p.Collision,
		p.Bullets,
		p.Pincers,
		p.Motion,
		p.Animation,
		p.TTL,
		p.Camera,
		renderOnly{p.Render},
		renderOnly{p.Debug},
	}
}

// Apply re-reads tuning from settings.
func (p *Pipeline) Apply(settings prefabs.Settings) {
	opts := settings.CollisionOptions()
	g := settings.Gravity
	if g == 0 {
		g = p.Physics.gravity
	}
	p.Acceleration.Gravity = g
	p.Physics.SetGravity(g)
	p.Collision.Options = opts
	p.Collision.ParallelThreshold = settings.Collision.ParallelThreshold
	p.Collision.Debug = settings.Debug
	p.Pincers.Policy = opts.Policy
	p.Debug.Enabled = settings.Debug
}

// renderOnly lets a draw-only system sit in the scheduler.
type renderOnly struct {
	ecs.Drawer
}

func (renderOnly) Update(*ecs.World) {}
