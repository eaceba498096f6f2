package curve

import "sort"

// Fit turns control points into a dense curve over [0,1]. A non trivial external curve
// takes precedence and is returned as is.
func Fit(points []ControlPoint, external DenseCurve) DenseCurve {
	c, _ := FitEx(points, external)

	return c
}

func FitEx(points []ControlPoint, external DenseCurve) (DenseCurve, Kind) {
	if len(external) > 1 {
		return external.Clone(), KindExternal
	}

	xs, ys := UniquePoints(points)

	interpolator, kind := NewInterpolator(xs, ys)

	dense := Linspace(Resolution)
	c := make(DenseCurve, len(dense))

	for idx, y := range interpolator.EvalAll(dense) {
		c[idx] = Sample{dense[idx], y}
	}

	return c, kind
}

// UniquePoints orders points by x and keeps the first y supplied for every x.
func UniquePoints(points []ControlPoint) (xs, ys []float64) {
	sorted := append([]ControlPoint{}, points...)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	xs = make([]float64, 0, len(sorted))
	ys = make([]float64, 0, len(sorted))

	for _, p := range sorted {
		if len(xs) > 0 && xs[len(xs)-1] == p.X {
			continue
		}

		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}

	return
}
