package testrail

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Option func(*Options)

type Options struct {
	timeout        time.Duration
	requestLogger  RequestLogger
	requestHeaders map[string]string
}

func newClientOptions() *Options {
	return &Options{
		timeout:       30 * time.Second,
		requestLogger: &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// WithTimeout sets the overall per-request timeout. A timeout of zero
// disables the deadline entirely. Negative values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRequestHeader adds a default header to every request. Content-Type,
// Accept, and Authorization are managed by the client and cannot be
// overridden here.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" ||
			strings.EqualFold(header, "Content-Type") ||
			strings.EqualFold(header, "Accept") ||
			strings.EqualFold(header, "Authorization") {
			return
		}

		o.requestHeaders[header] = value
	}
}

func (o *Options) Validate() error {
	if o.timeout < 0 {
		return errors.New("timeout must be non-negative")
	}

	if o.timeout > time.Hour {
		return fmt.Errorf("timeout must not exceed %v", time.Hour)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	return nil
}
