package skel

import "io"

// Option configures a Skeletonize call.
type Option func(*config)

type config struct {
	logOutput io.Writer
}

// WithLogging enables debug tracing for the duration of one
// Skeletonize call and restores the previous output afterward.
func WithLogging(w io.Writer) Option {
	return func(c *config) {
		c.logOutput = w
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
