package node

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/sgostarter/libsigmacurve/curve"
	"github.com/spf13/cast"
)

// Description is the host's curve description:
//
//	{"control_points": [{"x": 0, "y": 1}, ...], "samples": [[0, 1], ...]}
//
// Both keys are optional.
type Description struct {
	ControlPoints []curve.ControlPoint

	// HasControlPoints is false when the key is absent or null, which lets the host fall
	// back to cached points. An explicit empty list is kept as is.
	HasControlPoints bool
	Samples          curve.DenseCurve
}

type rawDescription struct {
	ControlPoints []interface{} `json:"control_points"`
	Samples       interface{}   `json:"samples"`
}

// ParseDescription decodes a description. An empty string is an empty description. Any
// structural problem or non numeric coordinate is reported as ErrMalformedDescription.
func ParseDescription(s string) (d *Description, err error) {
	if strings.TrimSpace(s) == "" {
		d = &Description{}

		return
	}

	var raw rawDescription

	if e := json.Unmarshal([]byte(s), &raw); e != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedDescription, e)

		return
	}

	desc := &Description{
		HasControlPoints: raw.ControlPoints != nil,
	}

	if desc.HasControlPoints {
		desc.ControlPoints = make([]curve.ControlPoint, 0, len(raw.ControlPoints))

		for idx, item := range raw.ControlPoints {
			var p curve.ControlPoint

			p, err = parseControlPoint(item)
			if err != nil {
				err = fmt.Errorf("%w: control point %d: %v", ErrMalformedDescription, idx, err)

				return
			}

			desc.ControlPoints = append(desc.ControlPoints, p)
		}
	}

	// samples that are not a list are ignored, a list must be well formed
	if items, ok := raw.Samples.([]interface{}); ok {
		desc.Samples = make(curve.DenseCurve, 0, len(items))

		for idx, item := range items {
			var sample curve.Sample

			sample, err = parseSample(item)
			if err != nil {
				err = fmt.Errorf("%w: sample %d: %v", ErrMalformedDescription, idx, err)

				return
			}

			desc.Samples = append(desc.Samples, sample)
		}
	}

	d = desc

	return
}

func parseControlPoint(item interface{}) (p curve.ControlPoint, err error) {
	m, ok := item.(map[string]interface{})
	if !ok {
		err = fmt.Errorf("not an object: %v", item)

		return
	}

	p.X, err = coordinate(m, "x")
	if err != nil {
		return
	}

	p.Y, err = coordinate(m, "y")

	return
}

func coordinate(m map[string]interface{}, key string) (float64, error) {
	v, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("no %s", key)
	}

	return toFloat(v)
}

func parseSample(item interface{}) (s curve.Sample, err error) {
	pair, ok := item.([]interface{})
	if !ok || len(pair) < 2 {
		err = fmt.Errorf("not an [x, y] pair: %v", item)

		return
	}

	if s[0], err = toFloat(pair[0]); err != nil {
		return
	}

	s[1], err = toFloat(pair[1])

	return
}

func toFloat(v interface{}) (float64, error) {
	switch v.(type) {
	case nil, bool:
		return 0, fmt.Errorf("not a number: %v", v)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not finite: %v", v)
	}

	return f, nil
}

// Output is echoed back to the host so it can cache and redraw the curve.
type Output struct {
	ControlPoints []curve.ControlPoint `json:"control_points"`
	SplinePoints  curve.DenseCurve     `json:"spline_points"`
}

func (o Output) JSON() string {
	d, err := json.Marshal(o)
	if err != nil {
		return ""
	}

	return string(d)
}
