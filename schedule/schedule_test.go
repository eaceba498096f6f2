// nolint
package schedule

import (
	"math/rand"
	"testing"

	"github.com/sgostarter/libsigmacurve/curve"
	"github.com/stretchr/testify/assert"
)

func TestSampleLinearCurve(t *testing.T) {
	c := curve.Fit(curve.DefaultControlPoints(), nil)

	s := Sample(c, 5, 1, 0)
	assert.EqualValues(t, 5, len(s))

	for idx, v := range []float64{1, 0.75, 0.5, 0.25, 0} {
		assert.InDelta(t, v, s[idx], 1e-9)
	}

	raw := Resample(c, 5)
	for idx, v := range []float64{1, 0.75, 0.5, 0.25, 0} {
		assert.InDelta(t, v, raw[idx], 1e-9)
	}
}

func TestSampleQuadraticRescaled(t *testing.T) {
	c := curve.Fit([]curve.ControlPoint{{X: 0, Y: 0}, {X: 0.5, Y: 2}, {X: 1, Y: 0.5}}, nil)

	s := Sample(c, 3, 1, 0)
	assert.EqualValues(t, 3, len(s))
	assert.InDelta(t, 1, s[0], 1e-6)
	assert.InDelta(t, 0, s[2], 1e-6)
}

// the raw schedule starts and ends at 0, so there is nothing to anchor an affine map on
func TestSampleQuadraticMatchingEnds(t *testing.T) {
	c := curve.Fit([]curve.ControlPoint{{X: 0, Y: 0}, {X: 0.5, Y: 2}, {X: 1, Y: 0}}, nil)

	raw := Resample(c, 3)
	assert.InDelta(t, 0, raw[0], 1e-12)
	assert.InDelta(t, 2, raw[1], 1e-3)
	assert.InDelta(t, 0, raw[2], 1e-12)

	s := Sample(c, 3, 1, 0)
	assert.Equal(t, Schedule{1, 1, 1}, s)
}

func TestSampleEndpoints(t *testing.T) {
	c := curve.Fit([]curve.ControlPoint{{X: 0, Y: 14.6}, {X: 0.2, Y: 6}, {X: 0.5, Y: 1.2}, {X: 1, Y: 0.03}}, nil)

	for _, steps := range []int{2, 3, 20, 200, 4096} {
		s := Sample(c, steps, 10, 0.5)
		assert.EqualValues(t, steps, len(s))
		assert.InDelta(t, 10, s[0], 1e-6)
		assert.InDelta(t, 0.5, s[steps-1], 1e-6)
	}
}

func TestSampleFlatCurve(t *testing.T) {
	c := curve.Fit([]curve.ControlPoint{{X: 0, Y: 0.4}, {X: 1, Y: 0.4}}, nil)

	s := Sample(c, 7, 3, 1)
	assert.Equal(t, Schedule{3, 3, 3, 3, 3, 3, 3}, s)

	c = curve.Fit([]curve.ControlPoint{{X: 0, Y: 0.4}, {X: 0.5, Y: 0.9}, {X: 1, Y: 0.4}}, nil)

	s = Sample(c, 4, 2, 0)
	assert.Equal(t, Schedule{2, 2, 2, 2}, s)
}

func TestSampleShortSteps(t *testing.T) {
	c := curve.Fit(curve.DefaultControlPoints(), nil)

	s := Sample(c, 1, 5, 6)
	assert.EqualValues(t, 1, len(s))
	assert.InDelta(t, 1, s[0], 1e-12)

	assert.EqualValues(t, 0, len(Sample(c, 0, 5, 6)))
	assert.EqualValues(t, 0, len(Sample(c, -3, 5, 6)))
}

func TestResampleExternalCurve(t *testing.T) {
	external := curve.DenseCurve{{1, 0}, {0.5, 0.5}, {0.25, 1}}

	s := Resample(external, 5)
	assert.EqualValues(t, 5, len(s))
	assert.InDelta(t, 1.5, s[0], 1e-12)
	assert.InDelta(t, 1, s[1], 1e-12)
	assert.InDelta(t, 0.5, s[2], 1e-12)
	assert.InDelta(t, 0, s[4], 1e-12)

	assert.Equal(t, curve.Sample{1, 0}, external[0])

	assert.Equal(t, Schedule{0, 0, 0}, Resample(nil, 3))
	assert.Equal(t, Schedule{7, 7}, Resample(curve.DenseCurve{{0.3, 7}}, 2))
}

func TestRescale(t *testing.T) {
	s := Schedule{2, 4, 6}

	r := Rescale(s, 0, 1)
	assert.InDelta(t, 0, r[0], 1e-12)
	assert.InDelta(t, 0.5, r[1], 1e-12)
	assert.InDelta(t, 1, r[2], 1e-12)
	assert.Equal(t, Schedule{2, 4, 6}, s)

	assert.Equal(t, Schedule{9}, Rescale(Schedule{9}, 1, 0))
	assert.Equal(t, Schedule{1, 1}, Rescale(Schedule{5, 5 + 1e-9}, 1, 0))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, Schedule{3, 2, 1, 0}, Join(Schedule{3, 2, 1}, Schedule{1, 0}))
	assert.Equal(t, Schedule{3, 2, 1}, Join(Schedule{3, 2, 1}, nil))
	assert.Equal(t, Schedule{3, 2, 1}, Join(Schedule{3, 2, 1}, Schedule{9}))
	assert.Equal(t, Schedule{5, 3, 2}, Join(nil, Schedule{9, 2, 3, 5}))
	assert.Equal(t, Schedule{4, 3, 2, 1, 0.5}, Join(Schedule{1, 3}, Schedule{7, 0.5, 4, 2}))

	a := Schedule{1, 2}
	b := Schedule{3, 4}
	_ = Join(a, b)
	assert.Equal(t, Schedule{1, 2}, a)
	assert.Equal(t, Schedule{3, 4}, b)
}

func TestJoinLaws(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for round := 0; round < 200; round++ {
		a := make(Schedule, r.Intn(30))
		for idx := range a {
			a[idx] = r.Float64()*20 - 5
		}

		b := make(Schedule, 1+r.Intn(30))
		for idx := range b {
			b[idx] = r.Float64()*20 - 5
		}

		j := Join(a, b)
		assert.EqualValues(t, len(a)+len(b)-1, len(j))

		for idx := 1; idx < len(j); idx++ {
			assert.True(t, j[idx-1] >= j[idx])
		}
	}
}

func TestFloat32s(t *testing.T) {
	assert.Equal(t, []float32{1, 0.5}, Schedule{1, 0.5}.Float32s())
}
