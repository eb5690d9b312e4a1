package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/syssam/scaffold/compiler/naming"
)

// Config holds the generation configuration of one invocation. It is built
// once and passed to the Engine; nothing reads configuration from global
// state.
type Config struct {
	// Root is the project directory every path is relative to.
	Root string `yaml:"root"`
	// Paths are the output directories per artifact kind.
	Paths Paths `yaml:"paths"`
	// Namespaces are the PHP namespaces per artifact kind.
	Namespaces Namespaces `yaml:"namespaces"`
	// Routes configures route registration.
	Routes RoutesConfig `yaml:"routes"`
	// Stubs configures the template sources.
	Stubs StubsConfig `yaml:"stubs"`
	// Seeder configures seeders and their registry.
	Seeder SeederConfig `yaml:"seeder"`
	// Naming extends the inflection exception table.
	Naming NamingConfig `yaml:"naming"`
	// Features toggles feature-flags by name. Features not listed keep
	// their default.
	Features map[string]bool `yaml:"features"`
	// Workers bounds the number of artifacts rendered in parallel.
	Workers int `yaml:"workers"`

	// DryRun reports outcomes without touching the project tree.
	DryRun bool `yaml:"-"`
	// Logger receives structured batch logs.
	Logger *zap.Logger `yaml:"-"`
	// Clock returns the time used for migration file names.
	Clock func() time.Time `yaml:"-"`
}

// Paths holds output directories, relative to the project root.
type Paths struct {
	Models        string `yaml:"models"`
	Controllers   string `yaml:"controllers"`
	Requests      string `yaml:"requests"`
	Resources     string `yaml:"resources"`
	Migrations    string `yaml:"migrations"`
	Factories     string `yaml:"factories"`
	Seeders       string `yaml:"seeders"`
	Views         string `yaml:"views"`
	Livewire      string `yaml:"livewire"`
	LivewireViews string `yaml:"livewire_views"`
	Tests         string `yaml:"tests"`
}

// Namespaces holds the PHP namespace of each artifact kind.
type Namespaces struct {
	Models      string `yaml:"models"`
	Controllers string `yaml:"controllers"`
	Requests    string `yaml:"requests"`
	Resources   string `yaml:"resources"`
	Factories   string `yaml:"factories"`
	Seeders     string `yaml:"seeders"`
	Livewire    string `yaml:"livewire"`
	Tests       string `yaml:"tests"`
}

// RoutesConfig configures route registration.
type RoutesConfig struct {
	// File is the browser routes file.
	File string `yaml:"file"`
	// APIFile is the API routes file.
	APIFile string `yaml:"api_file"`
	// Middleware groups browser routes.
	Middleware []string `yaml:"middleware"`
	// APIMiddleware groups API routes.
	APIMiddleware []string `yaml:"api_middleware"`
	// APIPrefix is the URI prefix of the API group, e.g. "v1".
	APIPrefix string `yaml:"api_prefix"`
	// Prefix wraps each browser resource in its own prefixed group.
	Prefix bool `yaml:"prefix"`
}

// StubsConfig configures template sources.
type StubsConfig struct {
	// UseCustom makes the renderer look in CustomPath before the built-in stubs.
	UseCustom bool `yaml:"use_custom"`
	// CustomPath is the override directory, relative to the project root.
	CustomPath string `yaml:"custom_path"`
}

// SeederConfig configures seeders.
type SeederConfig struct {
	// Count of records a generated seeder creates.
	Count int `yaml:"count"`
	// Registry is the seeder that calls every other seeder.
	Registry string `yaml:"registry"`
	// Method of the registry that holds the calls.
	Method string `yaml:"method"`
}

// NamingConfig extends the inflection rules.
type NamingConfig struct {
	// Irregular maps singular words to their plural.
	Irregular map[string]string `yaml:"irregular"`
	// Uncountable words have no plural form.
	Uncountable []string `yaml:"uncountable"`
}

// DefaultConfig returns the configuration of a conventional project layout.
func DefaultConfig() *Config {
	return &Config{
		Root: ".",
		Paths: Paths{
			Models:        "app/Models",
			Controllers:   "app/Http/Controllers",
			Requests:      "app/Http/Requests",
			Resources:     "app/Http/Resources",
			Migrations:    "database/migrations",
			Factories:     "database/factories",
			Seeders:       "database/seeders",
			Views:         "resources/views",
			Livewire:      "app/Livewire",
			LivewireViews: "resources/views/livewire",
			Tests:         "tests",
		},
		Namespaces: Namespaces{
			Models:      `App\Models`,
			Controllers: `App\Http\Controllers`,
			Requests:    `App\Http\Requests`,
			Resources:   `App\Http\Resources`,
			Factories:   `Database\Factories`,
			Seeders:     `Database\Seeders`,
			Livewire:    `App\Livewire`,
			Tests:       `Tests`,
		},
		Routes: RoutesConfig{
			File:          "routes/web.php",
			APIFile:       "routes/api.php",
			Middleware:    []string{"web"},
			APIMiddleware: []string{"api"},
			APIPrefix:     "v1",
		},
		Stubs: StubsConfig{
			CustomPath: "stubs/scaffold",
		},
		Seeder: SeederConfig{
			Count:    10,
			Registry: "database/seeders/DatabaseSeeder.php",
			Method:   "run",
		},
		Workers: runtime.GOMAXPROCS(0),
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults. A
// missing file yields the defaults. Unknown keys are rejected.
func LoadConfig(file string) (*Config, error) {
	b, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("scaffold: read config: %w", err)
	}
	return ParseConfig(b)
}

// ParseConfig decodes a YAML configuration on top of the defaults.
func ParseConfig(b []byte) (*Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, NewConfigError("file", nil, err.Error())
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration for values no generator can serve.
func (c *Config) Validate() error {
	var errs []error
	for name, p := range map[string]string{
		"paths.models":         c.Paths.Models,
		"paths.controllers":    c.Paths.Controllers,
		"paths.requests":       c.Paths.Requests,
		"paths.resources":      c.Paths.Resources,
		"paths.migrations":     c.Paths.Migrations,
		"paths.factories":      c.Paths.Factories,
		"paths.seeders":        c.Paths.Seeders,
		"paths.views":          c.Paths.Views,
		"paths.livewire":       c.Paths.Livewire,
		"paths.livewire_views": c.Paths.LivewireViews,
		"paths.tests":          c.Paths.Tests,
		"routes.file":          c.Routes.File,
		"routes.api_file":      c.Routes.APIFile,
		"seeder.registry":      c.Seeder.Registry,
	} {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, NewConfigError(name, nil, "path cannot be empty"))
		}
	}
	if c.Seeder.Count < 1 {
		errs = append(errs, NewConfigError("seeder.count", c.Seeder.Count, "count must be positive"))
	}
	if c.Seeder.Method == "" {
		errs = append(errs, NewConfigError("seeder.method", nil, "method cannot be empty"))
	}
	if c.Workers < 0 {
		errs = append(errs, NewConfigError("workers", c.Workers, "workers cannot be negative"))
	}
	for name := range c.Features {
		if _, ok := FeatureByName(name); !ok {
			errs = append(errs, NewConfigError("features", name, "unknown feature"))
		}
	}
	return errors.Join(errs...)
}

// FeatureEnabled reports if the given feature is enabled.
func (c *Config) FeatureEnabled(f Feature) bool {
	if on, ok := c.Features[f.Name]; ok {
		return on
	}
	return f.Default
}

// Inflector returns the inflector extended with the naming exceptions.
func (c *Config) Inflector() *naming.Inflector {
	if len(c.Naming.Irregular) == 0 && len(c.Naming.Uncountable) == 0 {
		return naming.Default()
	}
	return naming.New(c.Naming.Irregular, c.Naming.Uncountable)
}

func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *Config) now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}

func (c *Config) workers() int {
	if c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

// join builds a slash separated project path.
func join(elem ...string) string {
	return path.Join(elem...)
}

// qualify joins a namespace and a class name.
func qualify(ns, class string) string {
	ns = strings.Trim(ns, `\`)
	if ns == "" {
		return class
	}
	return ns + `\` + class
}
