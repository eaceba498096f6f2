package schedule

import (
	"sort"

	"github.com/sgostarter/libsigmacurve/curve"
)

// DegenerateSpan is the smallest |last-first| a raw schedule needs to be rescaled affinely.
const DegenerateSpan = 1e-8

// Schedule holds one noise level per sampling step.
type Schedule []float64

func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}

	return append(Schedule{}, s...)
}

func (s Schedule) Float32s() []float32 {
	fs := make([]float32, len(s))
	for idx, v := range s {
		fs[idx] = float32(v)
	}

	return fs
}

// Resample evaluates the curve, linearly interpolated, at steps evenly spaced positions
// over [0,1]. The curve does not need to be sorted or to cover [0,1].
func Resample(c curve.DenseCurve, steps int) Schedule {
	if steps <= 0 {
		return Schedule{}
	}

	sorted := c.Clone()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X() < sorted[j].X()
	})

	xs, ys := sorted.XY()

	return curve.NewLinearInterpolator(xs, ys).EvalAll(curve.Linspace(steps))
}

// Rescale maps s affinely so its first value becomes startY and its last endY. A flat
// schedule becomes len(s) copies of startY. Schedules shorter than two are returned as is.
func Rescale(s Schedule, startY, endY float64) Schedule {
	if len(s) < 2 {
		return s.Clone()
	}

	s0, sN := s[0], s[len(s)-1]

	out := make(Schedule, len(s))

	span := sN - s0
	if span < 0 {
		span = -span
	}

	if !(span > DegenerateSpan) {
		for idx := range out {
			out[idx] = startY
		}

		return out
	}

	scale := (endY - startY) / (sN - s0)
	shift := startY - s0*scale

	for idx, v := range s {
		out[idx] = v*scale + shift
	}

	return out
}

// Sample resamples the curve into steps values running from startY to endY. steps below
// two skips the rescale.
func Sample(c curve.DenseCurve, steps int, startY, endY float64) Schedule {
	return Rescale(Resample(c, steps), startY, endY)
}

// Join appends b without its first value to a and orders the result descending.
func Join(a, b Schedule) Schedule {
	out := make(Schedule, 0, len(a)+len(b))
	out = append(out, a...)

	if len(b) > 0 {
		out = append(out, b[1:]...)
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(out)))

	return out
}
