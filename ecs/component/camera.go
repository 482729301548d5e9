package component

type Camera struct {
	TargetName string
	Width      float64
	Height     float64
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
