package node

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libsigmacurve/curve"
	"github.com/sgostarter/libsigmacurve/schedule"
)

// NewRenderer builds the host adapter. A nil store disables control point caching.
func NewRenderer(store Store, cfg *Config, logger l.Wrapper) Renderer {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg.fix()
	}

	return &rendererImpl{
		logger: logger.WithFields(l.StringField(l.ClsKey, "rendererImpl")),
		store:  store,
		cfg:    cfg,
	}
}

type rendererImpl struct {
	logger l.Wrapper
	store  Store
	cfg    *Config
}

func (impl *rendererImpl) RenderCurve(nodeID, description string, steps int, options ...Option) (*Result, error) {
	if steps < impl.cfg.MinSteps || steps > impl.cfg.MaxSteps {
		return nil, ErrOutOfRangeSteps
	}

	logger := impl.logger.WithFields(l.StringField("nodeID", nodeID))

	desc, err := ParseDescription(description)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("bad description, use default control points")

		desc = &Description{
			ControlPoints:    impl.defaultControlPoints(),
			HasControlPoints: true,
		}
	} else {
		desc.ControlPoints = impl.resolveControlPoints(nodeID, desc, logger)
	}

	dense, kind := curve.FitEx(desc.ControlPoints, desc.Samples)

	sched := schedule.Resample(dense, steps)

	if opts := optionNew(options...); opts.Rescaled() && len(sched) > 0 {
		startY, endY := opts.Endpoints(sched[0], sched[len(sched)-1])
		sched = schedule.Rescale(sched, startY, endY)
	}

	logger.WithFields(l.StringField("kind", kind.String()), l.IntField("steps", steps)).Debug("curve rendered")

	return &Result{
		Output: Output{
			ControlPoints: desc.ControlPoints,
			SplinePoints:  dense,
		},
		Kind:     kind,
		Info:     kind.Describe(),
		Schedule: sched,
	}, nil
}

func (impl *rendererImpl) JoinSchedules(a, b schedule.Schedule) schedule.Schedule {
	return schedule.Join(a, b)
}

func (impl *rendererImpl) defaultControlPoints() []curve.ControlPoint {
	return append([]curve.ControlPoint{}, impl.cfg.DefaultControlPoints...)
}

func (impl *rendererImpl) resolveControlPoints(nodeID string, desc *Description, logger l.Wrapper) []curve.ControlPoint {
	cacheable := impl.store != nil && nodeID != ""

	if desc.HasControlPoints {
		if cacheable {
			if err := impl.store.Save(nodeID, desc.ControlPoints); err != nil {
				logger.WithFields(l.ErrorField(err)).Error("save control points failed")
			}
		}

		return desc.ControlPoints
	}

	if cacheable {
		points, exists, err := impl.store.Load(nodeID)
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Error("load control points failed")
		} else if exists {
			return points
		}
	}

	return impl.defaultControlPoints()
}
