package registry

import (
	"fmt"

	"github.com/arloliu/oid/errs"
	"github.com/arloliu/oid/internal/options"
)

// defaultCapacity is the initial number of entries a Registry reserves room for.
const defaultCapacity = 16

// Config holds the settings applied by New.
type Config struct {
	capacity  int
	wellKnown bool
}

func newConfig() *Config {
	return &Config{capacity: defaultCapacity}
}

func (c *Config) setCapacity(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCapacity, n)
	}
	c.capacity = n

	return nil
}

// Option configures a Registry.
type Option = options.Option[*Config]

// WithCapacity reserves room for n entries up front.
// It returns errs.ErrInvalidCapacity from New when n is negative.
func WithCapacity(n int) Option {
	return options.New(func(c *Config) error {
		return c.setCapacity(n)
	})
}

// WithWellKnown preloads the registry with common standard identifiers
// such as "internet" (1.3.6.1) and "id-at-commonName" (2.5.4.3).
func WithWellKnown() Option {
	return options.NoError(func(c *Config) {
		c.wellKnown = true
	})
}
