package collision_test

import (
	"testing"

	"github.com/milk9111/marinescroller/collision"
	"github.com/milk9111/marinescroller/ecs/component"
	"github.com/stretchr/testify/require"
)

func TestOverlapped(t *testing.T) {
	tests := []struct {
		name         string
		a, b         component.BoundingBox
		wantX, wantY bool
	}{
		{
			name:  "x only",
			a:     box(t, 0, 0, 0, 0, 1, 1),
			b:     box(t, 0.5, 5, 0.5, 5, 1, 1),
			wantX: true,
		},
		{
			name:  "y only",
			a:     box(t, 0, 0, 0, 0, 1, 1),
			b:     box(t, 5, 0.5, 5, 0.5, 1, 1),
			wantY: true,
		},
		{
			name:  "both",
			a:     box(t, 0, 0, 0, 0, 1, 1),
			b:     box(t, 1, 1, 1, 1, 1, 1),
			wantX: true,
			wantY: true,
		},
		{
			name: "touching edges do not overlap",
			a:    box(t, 0, 0, 0, 0, 1, 1),
			b:    box(t, 2, 2, 2, 2, 1, 1),
		},
		{
			name:  "uses old position not current",
			a:     box(t, 0, 0, 10, 10, 1, 1),
			b:     box(t, 0.5, 0.5, 0.5, 0.5, 1, 1),
			wantX: true,
			wantY: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := collision.Overlapped(tc.a, tc.b)
			require.Equal(t, tc.wantX, x, "x overlapped")
			require.Equal(t, tc.wantY, y, "y overlapped")

			// symmetric in its arguments
			x2, y2 := collision.Overlapped(tc.b, tc.a)
			require.Equal(t, x, x2)
			require.Equal(t, y, y2)
		})
	}
}

func TestPenetration(t *testing.T) {
	a := box(t, 0, 0, 0, 0, 1, 2)
	b := box(t, 0, 0, 1.5, -3, 1, 1)

	p := collision.Penetration(a, b)
	require.InDelta(t, 0.5, p.X, eps)
	require.InDelta(t, 0, p.Y, eps)
	require.False(t, collision.Intersecting(a, b), "zero depth on y is not an intersection")

	b.SetPosition(1.5, -2.5)
	require.True(t, collision.Intersecting(a, b))
	require.True(t, a.IsOverlappingWith(b))
}

func TestSelectAxis(t *testing.T) {
	tests := []struct {
		name    string
		x, y    bool
		overlap [2]float64
		want    component.Axis
	}{
		{"y only resolves horizontal", false, true, [2]float64{5, 0.1}, component.AxisHorizontal},
		{"x only resolves vertical", true, false, [2]float64{0.1, 5}, component.AxisVertical},
		{"both falls back to vertical", true, true, [2]float64{0.1, 5}, component.AxisVertical},
		{"neither picks smaller x", false, false, [2]float64{0.2, 0.5}, component.AxisHorizontal},
		{"neither picks smaller y", false, false, [2]float64{0.5, 0.2}, component.AxisVertical},
		{"neither tie goes horizontal", false, false, [2]float64{0.3, 0.3}, component.AxisHorizontal},
		{"neither compares magnitudes", false, false, [2]float64{-0.2, 0.1}, component.AxisVertical},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := collision.SelectAxis(tc.x, tc.y, vec(tc.overlap[0], tc.overlap[1]))
			require.Equal(t, tc.want, got)
		})
	}
}
