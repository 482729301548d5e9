package component

// Input is the sampled control state for one tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	Shoot bool
}

var InputComponent = NewComponent[Input]()
