// nolint
package node

import (
	"encoding/json"
	"testing"

	"github.com/sgostarter/libsigmacurve/curve"
	"github.com/stretchr/testify/assert"
)

func TestParseDescription(t *testing.T) {
	d, err := ParseDescription("")
	assert.Nil(t, err)
	assert.False(t, d.HasControlPoints)
	assert.Nil(t, d.Samples)

	d, err = ParseDescription(`{"control_points":[{"x":0,"y":1},{"x":"0.5","y":0.25},{"x":1,"y":0}]}`)
	assert.Nil(t, err)
	assert.True(t, d.HasControlPoints)
	assert.Equal(t, []curve.ControlPoint{{X: 0, Y: 1}, {X: 0.5, Y: 0.25}, {X: 1, Y: 0}}, d.ControlPoints)

	d, err = ParseDescription(`{"control_points":[],"samples":[[0,1],[1,0]]}`)
	assert.Nil(t, err)
	assert.True(t, d.HasControlPoints)
	assert.EqualValues(t, 0, len(d.ControlPoints))
	assert.Equal(t, curve.DenseCurve{{0, 1}, {1, 0}}, d.Samples)

	d, err = ParseDescription(`{"control_points":null,"samples":"js"}`)
	assert.Nil(t, err)
	assert.False(t, d.HasControlPoints)
	assert.Nil(t, d.Samples)
}

func TestParseDescriptionMalformed(t *testing.T) {
	for _, s := range []string{
		`{`,
		`[1,2]`,
		`{"control_points":"abc"}`,
		`{"control_points":[{"x":0}]}`,
		`{"control_points":[{"x":"a","y":1}]}`,
		`{"control_points":[{"x":true,"y":1}]}`,
		`{"control_points":[{"x":null,"y":1}]}`,
		`{"control_points":[[0,1]]}`,
		`{"samples":[[0,1],[1]]}`,
		`{"samples":[[0,1],[1,"NaN"]]}`,
	} {
		d, err := ParseDescription(s)
		assert.ErrorIs(t, err, ErrMalformedDescription, s)
		assert.Nil(t, d)
	}
}

func TestOutputJSON(t *testing.T) {
	o := Output{
		ControlPoints: []curve.ControlPoint{{X: 0, Y: 1}},
		SplinePoints:  curve.DenseCurve{{0, 1}, {1, 0.5}},
	}

	var m map[string]interface{}

	err := json.Unmarshal([]byte(o.JSON()), &m)
	assert.Nil(t, err)
	assert.Equal(t, []interface{}{map[string]interface{}{"x": 0.0, "y": 1.0}}, m["control_points"])
	assert.Equal(t, []interface{}{[]interface{}{0.0, 1.0}, []interface{}{1.0, 0.5}}, m["spline_points"])
}
