package component

// Transform is a render-space position for entities without a footprint,
// such as the camera.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
