package curve

import (
	"errors"
	"math"
	"sort"
)

var (
	ErrTooFewPoints   = errors.New("too few points")
	ErrSingularSystem = errors.New("singular system")
)

// Linspace returns n evenly spaced values over [0,1], both ends included.
func Linspace(n int) []float64 {
	if n <= 0 {
		return nil
	}

	xs := make([]float64, n)
	if n == 1 {
		return xs
	}

	for idx := range xs {
		xs[idx] = float64(idx) / float64(n-1)
	}

	xs[n-1] = 1

	return xs
}

// segmentIndex returns i such that [xs[i], xs[i+1]] is the piece used for x. Points past
// either end map to the outermost piece. len(xs) must be at least 2.
func segmentIndex(xs []float64, x float64) int {
	seg := sort.SearchFloat64s(xs, x) - 1
	if seg < 0 {
		seg = 0
	}

	if seg > len(xs)-2 {
		seg = len(xs) - 2
	}

	return seg
}

func evalAll(interpolator Interpolator, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for idx, x := range xs {
		ys[idx] = interpolator.Eval(x)
	}

	return ys
}

// NewInterpolator builds the interpolant matching the number of knots. xs must be sorted
// ascending without duplicates.
func NewInterpolator(xs, ys []float64) (Interpolator, Kind) {
	kind := KindForCount(len(xs))

	switch kind {
	case KindCubic:
		spline, err := NewCubicSpline(xs, ys)
		if err == nil {
			return spline, kind
		}

		return NewLinearInterpolator(xs, ys), KindLinear
	case KindQuadratic:
		return NewQuadraticInterpolator(xs, ys), kind
	case KindLinear:
		return NewLinearInterpolator(xs, ys), kind
	}

	var y float64
	if len(ys) > 0 {
		y = ys[0]
	}

	return constantInterpolator(y), KindConstant
}

//
//
//

type constantInterpolator float64

func (c constantInterpolator) Eval(_ float64) float64 {
	return float64(c)
}

func (c constantInterpolator) EvalAll(xs []float64) []float64 {
	return evalAll(c, xs)
}

//
//
//

// NewLinearInterpolator interpolates piecewise linearly and extends the first and last
// segments past the data. Fewer than two knots give a constant.
func NewLinearInterpolator(xs, ys []float64) Interpolator {
	if len(xs) < 2 {
		var y float64
		if len(ys) > 0 {
			y = ys[0]
		}

		return constantInterpolator(y)
	}

	return &linearInterpolator{
		xs: xs,
		ys: ys,
	}
}

type linearInterpolator struct {
	xs []float64
	ys []float64
}

func (impl *linearInterpolator) Eval(x float64) float64 {
	seg := segmentIndex(impl.xs, x)

	x0, x1 := impl.xs[seg], impl.xs[seg+1]
	y0, y1 := impl.ys[seg], impl.ys[seg+1]

	if x1 == x0 {
		return y0
	}

	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

func (impl *linearInterpolator) EvalAll(xs []float64) []float64 {
	return evalAll(impl, xs)
}

//
//
//

// NewQuadraticInterpolator returns the parabola through the first three knots.
func NewQuadraticInterpolator(xs, ys []float64) Interpolator {
	if len(xs) < 3 {
		return NewLinearInterpolator(xs, ys)
	}

	return &quadraticInterpolator{
		xs: [3]float64{xs[0], xs[1], xs[2]},
		ys: [3]float64{ys[0], ys[1], ys[2]},
	}
}

type quadraticInterpolator struct {
	xs [3]float64
	ys [3]float64
}

func (impl *quadraticInterpolator) Eval(x float64) float64 {
	x0, x1, x2 := impl.xs[0], impl.xs[1], impl.xs[2]

	l0 := (x - x1) * (x - x2) / ((x0 - x1) * (x0 - x2))
	l1 := (x - x0) * (x - x2) / ((x1 - x0) * (x1 - x2))
	l2 := (x - x0) * (x - x1) / ((x2 - x0) * (x2 - x1))

	return impl.ys[0]*l0 + impl.ys[1]*l1 + impl.ys[2]*l2
}

func (impl *quadraticInterpolator) EvalAll(xs []float64) []float64 {
	return evalAll(impl, xs)
}

//
//
//

// NewCubicSpline builds a not-a-knot cubic spline: the third derivative is continuous at
// the second and the second to last knot. With four knots this is the single cubic
// through all of them.
func NewCubicSpline(xs, ys []float64) (Interpolator, error) {
	n := len(xs)
	if n < 4 || len(ys) != n {
		return nil, ErrTooFewPoints
	}

	h := make([]float64, n-1)
	for idx := range h {
		h[idx] = xs[idx+1] - xs[idx]
	}

	// augmented system for the second derivatives at the knots
	a := make([][]float64, n)
	for idx := range a {
		a[idx] = make([]float64, n+1)
	}

	a[0][0] = h[1]
	a[0][1] = -(h[0] + h[1])
	a[0][2] = h[0]

	for idx := 1; idx < n-1; idx++ {
		a[idx][idx-1] = h[idx-1]
		a[idx][idx] = 2 * (h[idx-1] + h[idx])
		a[idx][idx+1] = h[idx]
		a[idx][n] = 6 * ((ys[idx+1]-ys[idx])/h[idx] - (ys[idx]-ys[idx-1])/h[idx-1])
	}

	a[n-1][n-3] = h[n-2]
	a[n-1][n-2] = -(h[n-3] + h[n-2])
	a[n-1][n-1] = h[n-3]

	ms, err := solveLinear(a)
	if err != nil {
		return nil, err
	}

	return &cubicSpline{
		xs: xs,
		ys: ys,
		ms: ms,
	}, nil
}

type cubicSpline struct {
	xs []float64
	ys []float64
	ms []float64
}

func (impl *cubicSpline) Eval(x float64) float64 {
	seg := segmentIndex(impl.xs, x)

	x0, x1 := impl.xs[seg], impl.xs[seg+1]
	y0, y1 := impl.ys[seg], impl.ys[seg+1]
	m0, m1 := impl.ms[seg], impl.ms[seg+1]
	h := x1 - x0

	l, r := x1-x, x-x0

	return m0*l*l*l/(6*h) + m1*r*r*r/(6*h) + (y0/h-m0*h/6)*l + (y1/h-m1*h/6)*r
}

func (impl *cubicSpline) EvalAll(xs []float64) []float64 {
	return evalAll(impl, xs)
}

// solveLinear solves an augmented n x (n+1) system in place by Gaussian elimination with
// partial pivoting.
func solveLinear(a [][]float64) ([]float64, error) {
	n := len(a)

	for col := 0; col < n; col++ {
		pivot := col

		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}

		if !(math.Abs(a[pivot][col]) > 0) {
			return nil, ErrSingularSystem
		}

		a[col], a[pivot] = a[pivot], a[col]

		for row := col + 1; row < n; row++ {
			f := a[row][col] / a[col][col]
			if f == 0 {
				continue
			}

			for k := col; k <= n; k++ {
				a[row][k] -= f * a[col][k]
			}
		}
	}

	x := make([]float64, n)

	for row := n - 1; row >= 0; row-- {
		s := a[row][n]
		for k := row + 1; k < n; k++ {
			s -= a[row][k] * x[k]
		}

		x[row] = s / a[row][row]
	}

	return x, nil
}
