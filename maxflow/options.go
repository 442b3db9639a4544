package maxflow

import "io"

// Options configures a push-relabel or Dinic run, mirroring the teacher's
// FlowOptions shape (Epsilon/Verbose) plus a scheduler selector specific
// to push-relabel.
type Options struct {
	// Epsilon treats a residual capacity <= Epsilon as zero, guarding
	// against floating-point drift in long augmenting chains.
	Epsilon float64

	// Verbose, if true, writes one line per push/relabel/augmentation to
	// Writer (or io.Discard if Writer is nil). Off the hot path by
	// default, same as the teacher's FlowOptions.Verbose.
	Verbose bool
	Writer  io.Writer

	// HighestLabel selects highest-label active-vertex scheduling for
	// PushRelabel instead of the default FIFO scheduling. Ignored by
	// Dinic.
	HighestLabel bool
}

// Option mutates an Options value built from defaults.
type Option func(*Options)

func newOptions(opts ...Option) Options {
	o := Options{Epsilon: 1e-9, Writer: io.Discard}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Writer == nil {
		o.Writer = io.Discard
	}
	return o
}

func WithEpsilon(eps float64) Option { return func(o *Options) { o.Epsilon = eps } }

func WithVerbose(w io.Writer) Option {
	return func(o *Options) {
		o.Verbose = true
		o.Writer = w
	}
}

func WithHighestLabel() Option { return func(o *Options) { o.HighestLabel = true } }
