package system

import "github.com/milk9111/marinescroller/ecs/component"

// blocks reports whether a mover of kind mover is pushed out of an obstacle
// of kind obstacle. Every reaction pairing in the game goes through here.
func blocks(mover, obstacle component.Kind) bool {
	switch mover {
	case component.KindMarine:
		return obstacle == component.KindPlatform || obstacle == component.KindPincer
	case component.KindPincer:
		return obstacle == component.KindPlatform || obstacle == component.KindMarine || obstacle == component.KindPincer
	case component.KindBullet:
		return obstacle == component.KindPlatform || obstacle == component.KindPincer
	case component.KindNone:
		return obstacle.Solid()
	}
	return false
}

// react names what a populated record means for a mover of the given kind.
type reaction int

const (
	reactNone reaction = iota
	reactBlock
	reactTurn
	reactHit
)

func react(mover component.Kind, rec *component.Collidee) reaction {
	if rec == nil || rec.Empty() {
		return reactNone
	}
	switch mover {
	case component.KindBullet:
		return reactHit
	case component.KindPincer:
		if rec.Horizontal != nil {
			return reactTurn
		}
		return reactBlock
	}
	return reactBlock
}
