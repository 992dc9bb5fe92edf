package swaggervalidation

import (
	"github.com/rs/zerolog"
)

// Option configures a Validator.
type Option func(*config) error

type config struct {
	logger        zerolog.Logger
	strictItems   bool
	strictRouting bool
	metrics       *Metrics
}

func defaultConfig() *config {
	return &config{
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger used for debug events. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// WithStrictItems reports MISSING_ITEMS_SPEC for array nodes that declare no items.
// Default is false.
func WithStrictItems(strict bool) Option {
	return func(c *config) error {
		c.strictItems = strict
		return nil
	}
}

// WithStrictRouting reports NO_PATH_OPERATION for requests that match no operation
// instead of letting them through. Default is false.
func WithStrictRouting(strict bool) Option {
	return func(c *config) error {
		c.strictRouting = strict
		return nil
	}
}

// WithMetrics records rejected requests and responses in m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) error {
		c.metrics = m
		return nil
	}
}
