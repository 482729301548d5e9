package collision_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/marinescroller/collision"
	"github.com/milk9111/marinescroller/ecs/component"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     component.BoundingBox
		va, vb   cp.Vector
		wantHit  bool
		wantAxis component.Axis
		wantCorr float64
	}{
		{
			name: "apart",
			a:    box(t, 0, 0, 0, 0, 1, 1),
			b:    box(t, 5, 5, 5, 5, 1, 1),
			va:   vec(1, 1),
		},
		{
			name:     "falling onto platform resolves vertical",
			a:        box(t, 0, 0, 0, 3.5, 1, 1),
			b:        box(t, 0.5, 5, 0.5, 5, 1, 1),
			va:       vec(0, 3.5),
			wantHit:  true,
			wantAxis: component.AxisVertical,
			wantCorr: 0.5,
		},
		{
			name:     "running into wall resolves horizontal",
			a:        box(t, 0, 0, 3.5, 0, 1, 1),
			b:        box(t, 5, 0.5, 5, 0.5, 1, 1),
			va:       vec(3.5, 0),
			wantHit:  true,
			wantAxis: component.AxisHorizontal,
			wantCorr: 0.5,
		},
		{
			name:     "running left gives negative correction",
			a:        box(t, 5, 0, 1.5, 0, 1, 1),
			b:        box(t, 0, 0.5, 0, 0.5, 1, 1),
			va:       vec(-3.5, 0),
			wantHit:  true,
			wantAxis: component.AxisHorizontal,
			wantCorr: -0.5,
		},
		{
			name:     "fresh diagonal crossing picks shallower x",
			a:        box(t, -5, -5, 0, 0, 1, 1),
			b:        box(t, 1.8, 1.5, 1.8, 1.5, 1, 1),
			va:       vec(5, 5),
			wantHit:  true,
			wantAxis: component.AxisHorizontal,
			wantCorr: 0.2,
		},
		{
			name:     "fresh diagonal crossing picks shallower y",
			a:        box(t, -5, -5, 0, 0, 1, 1),
			b:        box(t, 1.5, 1.8, 1.5, 1.8, 1, 1),
			va:       vec(5, 5),
			wantHit:  true,
			wantAxis: component.AxisVertical,
			wantCorr: 0.2,
		},
		{
			name:     "head on splits overlap by closing speed",
			a:        box(t, -3, 0, -0.5, 0, 1, 1),
			b:        box(t, 3, 0, 0.5, 0, 1, 1),
			va:       vec(2.5, 0),
			vb:       vec(-2.5, 0),
			wantHit:  true,
			wantAxis: component.AxisHorizontal,
			wantCorr: 0.5,
		},
		{
			name:     "already overlapping on both axes falls back to vertical",
			a:        box(t, 0, 0, 0.2, 0.1, 1, 1),
			b:        box(t, 1, 1, 1, 1, 1, 1),
			va:       vec(0.2, 0.1),
			wantHit:  true,
			wantAxis: component.AxisVertical,
			wantCorr: 1.1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var rec component.Collidee
			hit := collision.Detect(&rec, "obstacle", tc.a, tc.b, tc.va, tc.vb, collision.DefaultOptions())
			require.Equal(t, tc.wantHit, hit)
			if !tc.wantHit {
				require.True(t, rec.Empty(), "no slot may be populated for a miss")
				return
			}

			got := rec.Slot(tc.wantAxis)
			require.NotNil(t, got, "expected %s slot", tc.wantAxis)
			other := component.AxisVertical
			if tc.wantAxis == component.AxisVertical {
				other = component.AxisHorizontal
			}
			require.Nil(t, rec.Slot(other), "only one axis per pair")

			require.Equal(t, "obstacle", got.Name)
			require.Equal(t, tc.vb, got.Velocity)
			require.Equal(t, tc.b, got.BoundingBox)
			require.InDelta(t, tc.wantCorr, got.Correction, eps)
		})
	}
}

func TestDetectCorrectionLeavesBoxesTouching(t *testing.T) {
	a := box(t, 0, 0, 0, 3.5, 1, 1)
	b := box(t, 0.5, 5, 0.5, 5, 1, 1)

	var rec component.Collidee
	require.True(t, collision.Detect(&rec, "platform", a, b, vec(0, 3.5), vec(0, 0), collision.DefaultOptions()))
	require.NotNil(t, rec.Vertical)

	a.SetPosition(a.Position.X, a.Position.Y-rec.Vertical.Correction)
	require.InDelta(t, b.Top(), a.Bottom(), eps)
	require.False(t, collision.Intersecting(a, b))
}

func TestDetectSnapshotsObstacle(t *testing.T) {
	a := box(t, 0, 0, 3.5, 0, 1, 1)
	b := box(t, 5, 0.5, 5, 0.5, 1, 1)

	var rec component.Collidee
	require.True(t, collision.Detect(&rec, "pincer", a, b, vec(3.5, 0), vec(0, 0), collision.DefaultOptions()))

	b.SetPosition(100, 100)
	require.Equal(t, 5.0, rec.Horizontal.BoundingBox.Position.X)
	require.Equal(t, 0.5, rec.Horizontal.BoundingBox.Position.Y)
}

func TestDetectIsIdempotent(t *testing.T) {
	a := box(t, -5, -5, 0, 0, 1, 1)
	b := box(t, 1.8, 1.5, 1.8, 1.5, 1, 1)
	opts := collision.DefaultOptions()

	axis1, d1 := collision.Resolve("b", a, b, vec(5, 5), vec(1, 0), opts)
	axis2, d2 := collision.Resolve("b", a, b, vec(5, 5), vec(1, 0), opts)
	require.Equal(t, axis1, axis2)
	require.Equal(t, d1, d2)

	var r1, r2 component.Collidee
	collision.Detect(&r1, "b", a, b, vec(5, 5), vec(1, 0), opts)
	collision.Detect(&r2, "b", a, b, vec(5, 5), vec(1, 0), opts)
	require.Equal(t, r1, r2)
}

func TestZeroRelativeVelocity(t *testing.T) {
	tests := []struct {
		name   string
		va, vb cp.Vector
	}{
		{"both stationary", vec(0, 0), vec(0, 0)},
		{"same velocity", vec(2, 0), vec(2, 0)},
		{"same tiny velocity", vec(1e-12, 0), vec(1e-12, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := box(t, 0, 0, 3.5, 0, 1, 1)
			b := box(t, 5, 0.5, 5, 0.5, 1, 1)

			var rec component.Collidee
			require.True(t, collision.Detect(&rec, "b", a, b, tc.va, tc.vb, collision.DefaultOptions()))
			require.NotNil(t, rec.Horizontal)

			corr := rec.Horizontal.Correction
			require.False(t, math.IsNaN(corr))
			require.False(t, math.IsInf(corr, 0))
			require.InDelta(t, 0.5, corr, eps, "mover absorbs the whole overlap by default")
		})
	}

	t.Run("pushes away from obstacle centre", func(t *testing.T) {
		a := box(t, 8, 0.5, 6.5, 0.5, 1, 1)
		b := box(t, 5, 0.5, 5, 0.5, 1, 1)

		var rec component.Collidee
		require.True(t, collision.Detect(&rec, "b", a, b, vec(0, 0), vec(0, 0), collision.DefaultOptions()))
		require.NotNil(t, rec.Horizontal)
		require.Nil(t, rec.Vertical)
		require.InDelta(t, -0.5, rec.Horizontal.Correction, eps)
	})

	t.Run("configurable share", func(t *testing.T) {
		opts := collision.DefaultOptions()
		opts.ZeroSpeedRatio = 0.5
		require.Equal(t, 0.5, collision.SpeedRatio(3, 3, opts))

		opts.ZeroSpeedRatio = 0
		a := box(t, 0, 0, 3.5, 0, 1, 1)
		b := box(t, 5, 0.5, 5, 0.5, 1, 1)
		_, d := collision.Resolve("b", a, b, vec(0, 0), vec(0, 0), opts)
		require.Equal(t, 0.0, d.Correction)
	})
}

func TestCorrectionNeverExceedsOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	opts := collision.DefaultOptions()

	for i := 0; i < 500; i++ {
		a := box(t, rng.Float64()*8-4, rng.Float64()*8-4, rng.Float64()*2-1, rng.Float64()*2-1, 0.5+rng.Float64(), 0.5+rng.Float64())
		b := box(t, rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1, 0.5+rng.Float64(), 0.5+rng.Float64())
		va := vec(rng.Float64()*10-5, rng.Float64()*10-5)
		vb := vec(rng.Float64()*10-5, rng.Float64()*10-5)

		axis, d := collision.Resolve("b", a, b, va, vb, opts)
		overlap := collision.Penetration(a, b)

		depth := overlap.Y
		if axis == component.AxisHorizontal {
			depth = overlap.X
		}
		require.False(t, math.IsNaN(d.Correction), "case %d", i)
		require.LessOrEqual(t, math.Abs(d.Correction), math.Abs(depth)+eps, "case %d", i)
	}
}

func TestNearlyEqualVelocities(t *testing.T) {
	// falling onto a crate that falls almost as fast
	a := box(t, 0, 1.5, 0, 3.5, 1, 1)
	b := box(t, 0, 5, 0, 5, 1, 1)

	tests := []struct {
		name     string
		va, vb   cp.Vector
		wantCorr float64
	}{
		{"difference far above epsilon", vec(0, 2), vec(0, 1.99999), 0.5},
		{"difference within relative epsilon", vec(0, 2000), vec(0, 2000-1e-7), 0.5},
		{"obstacle slightly faster", vec(0, 1.99999), vec(0, 2), 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var rec component.Collidee
			require.True(t, collision.Detect(&rec, "crate", a, b, tc.va, tc.vb, collision.DefaultOptions()))
			require.NotNil(t, rec.Vertical)
			require.InDelta(t, tc.wantCorr, rec.Vertical.Correction, eps, "correction stays within the overlap")
		})
	}
}

func TestSlotPolicy(t *testing.T) {
	small := component.CollideeDetails{Name: "small", Correction: 0.1}
	large := component.CollideeDetails{Name: "large", Correction: -0.7}

	t.Run("largest keeps deeper hit", func(t *testing.T) {
		var rec component.Collidee
		require.True(t, rec.Set(component.AxisHorizontal, large, component.SlotLargest))
		require.False(t, rec.Set(component.AxisHorizontal, small, component.SlotLargest))
		require.Equal(t, "large", rec.Horizontal.Name)
		require.Nil(t, rec.Vertical)
	})

	t.Run("largest replaces shallower hit", func(t *testing.T) {
		var rec component.Collidee
		rec.Set(component.AxisVertical, small, component.SlotLargest)
		require.True(t, rec.Set(component.AxisVertical, large, component.SlotLargest))
		require.Equal(t, "large", rec.Vertical.Name)
	})

	t.Run("last write wins", func(t *testing.T) {
		var rec component.Collidee
		rec.Set(component.AxisHorizontal, large, component.SlotLastWrite)
		require.True(t, rec.Set(component.AxisHorizontal, small, component.SlotLastWrite))
		require.Equal(t, "small", rec.Horizontal.Name)
	})

	t.Run("clear empties both slots", func(t *testing.T) {
		var rec component.Collidee
		rec.Set(component.AxisHorizontal, large, component.SlotLastWrite)
		rec.Set(component.AxisVertical, small, component.SlotLastWrite)
		rec.Clear()
		require.True(t, rec.Empty())
	})
}
