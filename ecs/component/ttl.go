package component

// TTL destroys an effect entity after Total ticks. Remaining counts down
// once per tick.
type TTL struct {
	Remaining int
	Total     int
}

func NewTTL(ticks int) *TTL {
	return &TTL{Remaining: ticks, Total: ticks}
}

// Progress runs from 0 when the effect spawns to 1 on its last tick.
func (t TTL) Progress() float64 {
	if t.Total <= 0 {
		return 1
	}
	p := 1 - float64(t.Remaining)/float64(t.Total)
	return min(max(p, 0), 1)
}

var TTLComponent = NewComponent[TTL]()
