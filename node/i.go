package node

import (
	"github.com/sgostarter/libsigmacurve/curve"
	"github.com/sgostarter/libsigmacurve/schedule"
)

type Result struct {
	Output

	Kind     curve.Kind
	Info     string
	Schedule schedule.Schedule
}

type Renderer interface {
	// RenderCurve fits the described curve and samples it into a schedule of steps values.
	// Only steps outside the configured range is an error, every other problem falls back
	// to a default curve.
	RenderCurve(nodeID, description string, steps int, options ...Option) (*Result, error)
	JoinSchedules(a, b schedule.Schedule) schedule.Schedule
}

// Store keeps the last control points seen by each node so a node can be redrawn after
// the host reloads it without a description.
type Store interface {
	Load(nodeID string) (points []curve.ControlPoint, exists bool, err error)
	Save(nodeID string, points []curve.ControlPoint) error
	Remove(nodeID string) error
}
