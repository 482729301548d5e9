package component

import "github.com/jakecoffman/cp"

// Motion is the kinematic intent for a mover this tick. Velocity is in world
// units per tick.
type Motion struct {
	Velocity     cp.Vector
	Acceleration cp.Vector
	// Grounded is set by the motion system when a downward correction
	// landed the mover on something this tick.
	Grounded bool
}

var MotionComponent = NewComponent[Motion]()

// PhysicsBody links an entity to a body owned by the Chipmunk space. The
// collision core only reads its velocity and body type.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Width    float64
	Height   float64
	Mass     float64
	Friction float64
	Static   bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Dynamic reports whether the body is simulated by the physics space.
func (p PhysicsBody) Dynamic() bool {
	return p.Body != nil && p.Body.GetType() == cp.BODY_DYNAMIC
}
