package node

type Options struct {
	startY *float64
	endY   *float64
}

// Rescaled reports whether any endpoint was requested.
func (opt *Options) Rescaled() bool {
	return opt.startY != nil || opt.endY != nil
}

// Endpoints returns the requested endpoints, taking missing ones from the raw values.
func (opt *Options) Endpoints(rawStart, rawEnd float64) (startY, endY float64) {
	startY, endY = rawStart, rawEnd

	if opt.startY != nil {
		startY = *opt.startY
	}

	if opt.endY != nil {
		endY = *opt.endY
	}

	return
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	return opts
}

func StartYOption(v float64) Option {
	return func(o *Options) {
		o.startY = &v
	}
}

func EndYOption(v float64) Option {
	return func(o *Options) {
		o.endY = &v
	}
}
