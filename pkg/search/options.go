package search

import "github.com/pkg/errors"

const (
	DefaultLimit  = 50
	DefaultOffset = 0
	DefaultFormat = "json"
)

type Options struct {
	Limit  int
	Offset int
	Format string
}

type OptionFunc func(opts *Options)

// WithLimit sets the maximum number of results to request.
func WithLimit(limit int) OptionFunc {
	return func(opts *Options) {
		opts.Limit = limit
	}
}

// WithOffset sets the index of the first result to request.
func WithOffset(offset int) OptionFunc {
	return func(opts *Options) {
		opts.Offset = offset
	}
}

// WithFormat sets the response representation. The value is passed to the
// server as is.
func WithFormat(format string) OptionFunc {
	return func(opts *Options) {
		opts.Format = format
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Limit:  DefaultLimit,
		Offset: DefaultOffset,
		Format: DefaultFormat,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// Validate checks that the options describe a page that can be requested.
func (o *Options) Validate() error {
	if o.Limit <= 0 {
		return errors.Errorf("limit must be positive, got %d", o.Limit)
	}

	if o.Offset < 0 {
		return errors.Errorf("offset must not be negative, got %d", o.Offset)
	}

	return nil
}
