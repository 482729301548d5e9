package component

// Marine is the player-controlled character.
type Marine struct {
	MaxSpeed      float64
	Acceleration  float64
	JumpSpeed     float64
	ShootCooldown int
	Cooldown      int
	HasShot       bool
	Facing        float64
}

var MarineComponent = NewComponent[Marine]()

// Pincer is a patrolling crab enemy bound to the platform it spawned on.
type Pincer struct {
	Speed    float64
	Health   int
	Platform Boundary
	// Direction is -1 for left, 1 for right.
	Direction float64
}

var PincerComponent = NewComponent[Pincer]()

// Bullet is a projectile fired by the marine.
type Bullet struct {
	Damage int
	Owner  uint64
}

var BulletComponent = NewComponent[Bullet]()

// BulletImpact is the short-lived effect spawned where a bullet hit.
type BulletImpact struct{}

var BulletImpactComponent = NewComponent[BulletImpact]()

// Explosion is spawned when a pincer dies.
type Explosion struct{}

var ExplosionComponent = NewComponent[Explosion]()
