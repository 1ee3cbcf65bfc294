package bing

import (
	"net/http"
	"time"
)

const (
	DefaultBaseURL           = "https://api.datamarket.azure.com/Bing/Search/Web"
	DefaultDecodeDelay       = 5 * time.Second
	DefaultMissingFieldDelay = 3 * time.Second
)

type Options struct {
	// SafeMode downgrades malformed envelopes to a logged diagnostic followed
	// by a delay instead of an immediate error.
	SafeMode          bool
	HTTPClient        *http.Client
	BaseURL           string
	DecodeDelay       time.Duration
	MissingFieldDelay time.Duration
}

type OptionFunc func(opts *Options)

func WithSafeMode(safe bool) OptionFunc {
	return func(opts *Options) {
		opts.SafeMode = safe
	}
}

func WithHTTPClient(client *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = client
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

// WithDecodeDelay sets the pause observed in safe mode when a response body
// is not valid JSON.
func WithDecodeDelay(delay time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.DecodeDelay = delay
	}
}

// WithMissingFieldDelay sets the pause observed in safe mode when the
// continuation link is missing from the envelope.
func WithMissingFieldDelay(delay time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.MissingFieldDelay = delay
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		SafeMode:          false,
		HTTPClient:        http.DefaultClient,
		BaseURL:           DefaultBaseURL,
		DecodeDelay:       DefaultDecodeDelay,
		MissingFieldDelay: DefaultMissingFieldDelay,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}
