package curve

import "fmt"

// Resolution is the number of samples of a fitted DenseCurve.
const Resolution = 200

type ControlPoint struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Sample is one (x, y) pair of a dense curve. It encodes as a two element array.
type Sample [2]float64

func (s Sample) X() float64 {
	return s[0]
}

func (s Sample) Y() float64 {
	return s[1]
}

// DenseCurve is an ordered run of samples. Values produced by this package are never
// modified after they are returned.
type DenseCurve []Sample

func (c DenseCurve) Clone() DenseCurve {
	if c == nil {
		return nil
	}

	return append(DenseCurve{}, c...)
}

func (c DenseCurve) XY() (xs, ys []float64) {
	xs = make([]float64, len(c))
	ys = make([]float64, len(c))

	for idx, s := range c {
		xs[idx] = s[0]
		ys[idx] = s[1]
	}

	return
}

type Kind int

const (
	KindConstant Kind = iota
	KindLinear
	KindQuadratic
	KindCubic
	KindExternal
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindLinear:
		return "linear"
	case KindQuadratic:
		return "quadratic"
	case KindCubic:
		return "cubic"
	case KindExternal:
		return "external"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Describe returns a one line, human readable note on how the curve was built.
func (k Kind) Describe() string {
	switch k {
	case KindConstant:
		return "Constant value; not enough points to interpolate"
	case KindLinear:
		return "Linear interpolation over control points"
	case KindQuadratic:
		return "Quadratic interpolation over control points"
	case KindCubic:
		return "Cubic spline interpolation over control points"
	case KindExternal:
		return "Curve taken from externally supplied samples"
	}

	return k.String()
}

// KindForCount picks the interpolation order for n unique control point x values.
func KindForCount(n int) Kind {
	switch {
	case n >= 4:
		return KindCubic
	case n == 3:
		return KindQuadratic
	case n == 2:
		return KindLinear
	}

	return KindConstant
}

type Interpolator interface {
	// Eval evaluates the interpolant at x. Values outside the knot range continue the
	// outermost piece.
	Eval(x float64) float64
	EvalAll(xs []float64) []float64
}

func DefaultControlPoints() []ControlPoint {
	return []ControlPoint{
		{X: 0, Y: 1},
		{X: 1, Y: 0},
	}
}
