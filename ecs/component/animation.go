package component

// AnimationID names one animation clip.
type AnimationID string

const (
	AnimationIdle         AnimationID = "idle"
	AnimationMove         AnimationID = "move"
	AnimationJump         AnimationID = "jump"
	AnimationShoot        AnimationID = "shoot"
	AnimationDie          AnimationID = "die"
	AnimationWalk         AnimationID = "walk"
	AnimationBulletImpact AnimationID = "bullet_impact"
	AnimationExplode      AnimationID = "explode"
)

// Animation tracks which clip an entity plays. Sprite playback lives in the
// renderer; this is only the selection state.
type Animation struct {
	Current AnimationID
	Types   []AnimationID
	// Frame counts ticks since Current started.
	Frame int
}

var AnimationComponent = NewComponent[Animation]()

func (a Animation) Has(id AnimationID) bool {
	for _, t := range a.Types {
		if t == id {
			return true
		}
	}
	return false
}
