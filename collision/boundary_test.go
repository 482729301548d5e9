package collision_test

import (
	"testing"

	"github.com/milk9111/marinescroller/collision"
	"github.com/milk9111/marinescroller/ecs/component"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	bound, err := component.NewBoundary(0, 100, 0, 50)
	require.NoError(t, err)

	tests := []struct {
		name      string
		x, y      float64
		halfW     float64
		halfH     float64
		wantH     *float64
		wantV     *float64
		wantFlush func(t *testing.T, bb component.BoundingBox)
	}{
		{
			name:  "inside",
			x:     50,
			y:     25,
			halfW: 5,
			halfH: 5,
		},
		{
			name:  "flush with edges is inside",
			x:     5,
			y:     45,
			halfW: 5,
			halfH: 5,
		},
		{
			name:  "past right edge",
			x:     97.5,
			y:     25,
			halfW: 5,
			halfH: 5,
			wantH: ptr(2.5),
			wantFlush: func(t *testing.T, bb component.BoundingBox) {
				require.InDelta(t, 100, bb.Right(), eps)
			},
		},
		{
			name:  "past left edge",
			x:     1,
			y:     25,
			halfW: 5,
			halfH: 5,
			wantH: ptr(-4),
			wantFlush: func(t *testing.T, bb component.BoundingBox) {
				require.InDelta(t, 0, bb.Left(), eps)
			},
		},
		{
			name:  "past bottom edge",
			x:     50,
			y:     48,
			halfW: 5,
			halfH: 5,
			wantV: ptr(3),
			wantFlush: func(t *testing.T, bb component.BoundingBox) {
				require.InDelta(t, 50, bb.Bottom(), eps)
			},
		},
		{
			name:  "past top and right corner",
			x:     99,
			y:     2,
			halfW: 5,
			halfH: 5,
			wantH: ptr(4),
			wantV: ptr(-3),
			wantFlush: func(t *testing.T, bb component.BoundingBox) {
				require.InDelta(t, 100, bb.Right(), eps)
				require.InDelta(t, 0, bb.Top(), eps)
			},
		},
		{
			name:  "wider than boundary is centred",
			x:     55,
			y:     25,
			halfW: 60,
			halfH: 5,
			wantH: ptr(5),
			wantFlush: func(t *testing.T, bb component.BoundingBox) {
				require.InDelta(t, 50, bb.Position.X, eps)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bb := box(t, tc.x, tc.y, tc.x, tc.y, tc.halfW, tc.halfH)
			rec, ok := collision.Clamp("level", bb, bound)
			require.Equal(t, tc.wantH != nil || tc.wantV != nil, ok)

			if tc.wantH == nil {
				require.Nil(t, rec.Horizontal)
			} else {
				require.NotNil(t, rec.Horizontal)
				require.InDelta(t, *tc.wantH, rec.Horizontal.Correction, eps)
				require.Equal(t, "level", rec.Horizontal.Name)
				require.Zero(t, rec.Horizontal.Velocity)
				bb.Position.X -= rec.Horizontal.Correction
			}
			if tc.wantV == nil {
				require.Nil(t, rec.Vertical)
			} else {
				require.NotNil(t, rec.Vertical)
				require.InDelta(t, *tc.wantV, rec.Vertical.Correction, eps)
				bb.Position.Y -= rec.Vertical.Correction
			}

			if tc.wantFlush != nil {
				tc.wantFlush(t, bb)
			}
		})
	}
}

func TestClampToMergesWithPolicy(t *testing.T) {
	bound, err := component.NewBoundary(0, 100, 0, 50)
	require.NoError(t, err)
	opts := collision.DefaultOptions()

	var rec component.Collidee
	rec.Set(component.AxisHorizontal, component.CollideeDetails{Name: "pincer", Correction: 10}, opts.Policy)

	bb := box(t, 97.5, 25, 97.5, 25, 5, 5)
	require.True(t, collision.ClampTo(&rec, "level", bb, bound, opts))
	require.Equal(t, "pincer", rec.Horizontal.Name, "deeper pairwise hit survives")

	opts.Policy = component.SlotLastWrite
	require.True(t, collision.ClampTo(&rec, "level", bb, bound, opts))
	require.Equal(t, "level", rec.Horizontal.Name)

	inside := box(t, 50, 25, 50, 25, 5, 5)
	require.False(t, collision.ClampTo(&rec, "level", inside, bound, opts))
}

func TestNewBoundaryRejectsInvertedEdges(t *testing.T) {
	_, err := component.NewBoundary(10, 0, 0, 10)
	require.ErrorIs(t, err, component.ErrInvalidBoundary)

	_, err = component.NewBoundary(0, 10, 10, 10)
	require.ErrorIs(t, err, component.ErrInvalidBoundary)
}

func TestNewBoundingBoxRejectsDegenerateSize(t *testing.T) {
	for _, size := range [][2]float64{{0, 1}, {1, 0}, {-2, 1}} {
		_, err := component.NewBoundingBox(0, 0, size[0], size[1])
		require.ErrorIs(t, err, component.ErrDegenerateBoundingBox)
	}
}

func ptr(f float64) *float64 {
	return &f
}
