package component

// Kind is the closed set of entity kinds that react to collisions.
type Kind int

const (
	KindNone Kind = iota
	KindMarine
	KindPincer
	KindBullet
	KindPlatform
	KindBoundary
)

var kindNames = [...]string{"none", "marine", "pincer", "bullet", "platform", "boundary"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Solid reports whether movers are pushed out of this kind.
func (k Kind) Solid() bool {
	return k == KindPlatform || k == KindBoundary || k == KindPincer
}

var KindComponent = NewComponent[Kind]()

// Name identifies an entity in collision records and logs.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
