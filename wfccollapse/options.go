package wfccollapse

import "github.com/katalvlaran/wfc/stateset"

// config holds Collapse's optional diagnostic hooks, assembled from
// functional options the same way builder.BuilderOption configures a
// Builder elsewhere in this module's ancestry.
type config[C any] struct {
	onObserve func(c C, cell *stateset.Set)
}

// CollapseOption configures a single call to Collapse.
type CollapseOption[C any] func(*config[C])

// WithOnObserve registers a hook invoked immediately after each cell is
// observed (collapsed to a singleton), before propagation begins. It is
// purely a diagnostic seam; Collapse never consults its return value.
func WithOnObserve[C any](fn func(c C, cell *stateset.Set)) CollapseOption[C] {
	return func(cfg *config[C]) {
		cfg.onObserve = fn
	}
}

func newConfig[C any](opts []CollapseOption[C]) *config[C] {
	cfg := &config[C]{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
