package scatter

import (
	"go.uber.org/zap"

	"github.com/moffa90/go-mtkscatter/config"
)

// Config holds the generator configuration.
type Config struct {
	// Platform fills the general settings block
	Platform *config.Platform

	// Logger receives debug output about every generated record
	Logger *zap.Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Platform: config.Default(),
		Logger:   zap.NewNop(),
	}
}

// Option is a functional option for configuring the Generator.
type Option func(*Config)

// WithPlatform sets the platform profile used for the general settings block.
// A nil profile keeps the MT6765 default.
//
// Example:
//
//	p, _ := config.Load("k65.yaml")
//	gen := scatter.New(scatter.WithPlatform(p))
func WithPlatform(p *config.Platform) Option {
	return func(c *Config) {
		if p != nil {
			c.Platform = p
		}
	}
}

// WithLogger sets a zap logger for generator operations.
//
// Example:
//
//	gen := scatter.New(scatter.WithLogger(zap.NewExample()))
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}
