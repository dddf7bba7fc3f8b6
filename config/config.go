// Package config defines this module's Config and the functional
// options used to build a Session, plus optional YAML loading for
// embedders that keep session defaults in a file rather than in code.
package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is the set of knobs a Page.Connect call accepts.
type Config struct {
	// ExecutablePath overrides automatic browser discovery.
	ExecutablePath string `yaml:"executablePath"`
	// Headless runs the browser without a visible window. Default true.
	Headless bool `yaml:"headless"`
	// DebugPort is the port of an already-running browser: the one
	// Connect attaches to when ConnectExisting is true, and the hybrid
	// fallback's headed target.
	DebugPort int `yaml:"debugPort"`
	// ConnectExisting, when true, skips Launch and goes straight to
	// Connect on DebugPort.
	ConnectExisting bool `yaml:"connectExisting"`
	// ConsentPolicy enables the best-effort consent-banner dismisser
	// after every navigation. Default true.
	ConsentPolicy bool `yaml:"consentPolicy"`
	// Viewport sets a fixed viewport size; zero values mean "let the
	// browser choose its default".
	ViewportWidth  int64 `yaml:"viewportWidth"`
	ViewportHeight int64 `yaml:"viewportHeight"`
	// StorageStatePath, if set, is loaded at connect time and saved by
	// Page.SaveState.
	StorageStatePath string `yaml:"storageStatePath"`
	// ExtraFlags are merged over the default browser flag set.
	ExtraFlags map[string]interface{} `yaml:"extraFlags"`

	Logger *zap.Logger `yaml:"-"`
}

// Option customizes a Config, following
// https://commandcenter.blogspot.com/2014/01/self-referential-functions-and-design.html
type Option = func(*Config)

// Default returns a Config with this module's defaults: headless,
// consent dismissal on, no fixed viewport.
func Default() Config {
	return Config{Headless: true, ConsentPolicy: true}
}

// WithExecutablePath overrides browser discovery.
func WithExecutablePath(path string) Option {
	return func(c *Config) { c.ExecutablePath = path }
}

// WithHeadless sets headless mode explicitly.
func WithHeadless(headless bool) Option {
	return func(c *Config) { c.Headless = headless }
}

// WithDebugPort configures the hybrid fallback's (or a caller's)
// external headed browser endpoint.
func WithDebugPort(port int) Option {
	return func(c *Config) { c.DebugPort = port }
}

// WithConnectExisting skips launching a browser and connects to
// DebugPort instead.
func WithConnectExisting(port int) Option {
	return func(c *Config) { c.ConnectExisting = true; c.DebugPort = port }
}

// WithConsentPolicy toggles the consent dismisser.
func WithConsentPolicy(enabled bool) Option {
	return func(c *Config) { c.ConsentPolicy = enabled }
}

// WithViewport sets a fixed viewport size.
func WithViewport(width, height int64) Option {
	return func(c *Config) { c.ViewportWidth, c.ViewportHeight = width, height }
}

// WithStorageStatePath sets the path Page.Connect loads from and
// Page.SaveState writes to.
func WithStorageStatePath(path string) Option {
	return func(c *Config) { c.StorageStatePath = path }
}

// WithLogger attaches a zap logger; the default is zap.NewNop().
func WithLogger(log *zap.Logger) Option {
	return func(c *Config) { c.Logger = log }
}

// Apply builds a Config from Default() plus the given options.
func Apply(opts ...Option) Config {
	c := Default()
	for _, o := range opts {
		o(&c)
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// LoadYAML reads a Config from a YAML file, leaving fields it does not
// find untouched on top of Default().
func LoadYAML(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c, nil
}
