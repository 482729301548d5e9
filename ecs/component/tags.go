package component

// Collider marks an entity that takes part in collision detection.
type Collider struct{}

var ColliderComponent = NewComponent[Collider]()
