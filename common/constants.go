package common

const (
	TickRate = 60

	// Gravity is in world units per tick squared; y grows downward.
	Gravity      = 0.35
	MaxFallSpeed = 12.0

	ScreenWidth  = 640
	ScreenHeight = 480
)
