package gen

import (
	"errors"
	"maps"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Option configures code generation.
type Option func(*Config) error

// WithRoot sets the project directory.
func WithRoot(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Root", nil, "root directory cannot be empty")
		}
		c.Root = dir
		return nil
	}
}

// WithWorkers sets the number of artifacts rendered in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the batch logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithClock sets the clock used for migration timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Config) error {
		if now == nil {
			return NewConfigError("Clock", nil, "clock cannot be nil")
		}
		c.Clock = now
		return nil
	}
}

// WithDryRun makes the engine report outcomes without touching files.
func WithDryRun(dry bool) Option {
	return func(c *Config) error {
		c.DryRun = dry
		return nil
	}
}

// WithFeatures enables specific features.
func WithFeatures(features ...Feature) Option {
	return toggle(true, features)
}

// WithoutFeatures disables specific features.
func WithoutFeatures(features ...Feature) Option {
	return toggle(false, features)
}

func toggle(on bool, features []Feature) Option {
	return func(c *Config) error {
		if c.Features == nil {
			c.Features = make(map[string]bool)
		}
		for _, f := range features {
			if _, ok := FeatureByName(f.Name); !ok {
				return NewConfigError("Features", f.Name, "unknown feature")
			}
			c.Features[f.Name] = on
		}
		return nil
	}
}

// WithCustomStubs makes the renderer prefer stubs in dir over the built-in
// ones.
func WithCustomStubs(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Stubs", nil, "custom stub directory cannot be empty")
		}
		c.Stubs.UseCustom = true
		c.Stubs.CustomPath = dir
		return nil
	}
}

// WithSeederCount sets the number of records generated seeders create.
func WithSeederCount(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("SeederCount", n, "count must be positive")
		}
		c.Seeder.Count = n
		return nil
	}
}

// WithRouteMiddleware sets the middleware groups of browser and API routes.
func WithRouteMiddleware(web, api []string) Option {
	return func(c *Config) error {
		if len(web) == 0 || len(api) == 0 {
			return NewConfigError("RouteMiddleware", nil, "middleware groups cannot be empty")
		}
		c.Routes.Middleware = web
		c.Routes.APIMiddleware = api
		return nil
	}
}

// WithAPIPrefix sets the URI prefix of API routes.
func WithAPIPrefix(prefix string) Option {
	return func(c *Config) error {
		c.Routes.APIPrefix = strings.Trim(prefix, "/")
		return nil
	}
}

// WithIrregular adds irregular singular to plural pairs.
func WithIrregular(pairs map[string]string) Option {
	return func(c *Config) error {
		if c.Naming.Irregular == nil {
			c.Naming.Irregular = make(map[string]string)
		}
		for singular, plural := range pairs {
			if singular == "" || plural == "" {
				return NewConfigError("Irregular", singular, "irregular words cannot be empty")
			}
		}
		maps.Copy(c.Naming.Irregular, pairs)
		return nil
	}
}

// WithUncountable adds words without a plural form.
func WithUncountable(words ...string) Option {
	return func(c *Config) error {
		c.Naming.Uncountable = append(c.Naming.Uncountable, words...)
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config from the defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
