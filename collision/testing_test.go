package collision_test

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/marinescroller/ecs/component"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// box builds a box whose old position is (ox, oy) and current position is
// (x, y).
func box(t *testing.T, ox, oy, x, y, halfW, halfH float64) component.BoundingBox {
	t.Helper()
	bb, err := component.NewBoundingBox(ox, oy, halfW*2, halfH*2)
	require.NoError(t, err)
	bb.SetPosition(x, y)
	return bb
}

func vec(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}
