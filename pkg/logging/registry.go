package logging

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// The registry hands out one logger per name. The first call for a name
// creates the logger; every later call returns that same logger and any
// options passed are ignored.

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*zerolog.Logger)
)

// Option configures a named logger on first creation.
type Option func(*Config)

// WithLevel sets the minimum level for a named logger.
func WithLevel(level string) Option {
	return func(cfg *Config) {
		cfg.Level = level
	}
}

// WithFormat sets the output format (json, console, pretty) for a named logger.
func WithFormat(format string) Option {
	return func(cfg *Config) {
		cfg.Format = format
	}
}

// WithOutput sets the destination (stderr, stdout, discard, or a file path)
// for a named logger.
func WithOutput(output string) Option {
	return func(cfg *Config) {
		cfg.Output = output
	}
}

// WithDefaultFields sets fields included in every event of a named logger.
func WithDefaultFields(fields map[string]any) Option {
	return func(cfg *Config) {
		for k, v := range fields {
			cfg.Fields[k] = v
		}
	}
}

// Named returns the logger registered under name, creating it on first use.
// Options apply only when the logger is created; subsequent calls for the
// same name return the existing logger unchanged.
func Named(name string, opts ...Option) *zerolog.Logger {
	registryMu.RLock()
	if logger, ok := registry[name]; ok {
		registryMu.RUnlock()
		return logger
	}
	registryMu.RUnlock()

	registryMu.Lock()
	defer registryMu.Unlock()

	// Re-check under the write lock; another goroutine may have won.
	if logger, ok := registry[name]; ok {
		return logger
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := NewLoggerFromConfig(cfg).With().Str("logger", name).Logger()
	registry[name] = &logger
	return &logger
}

// Lookup returns the logger registered under name without creating one.
func Lookup(name string) (*zerolog.Logger, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	logger, ok := registry[name]
	return logger, ok
}

// Names returns the sorted names of all registered loggers.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset removes all registered loggers. Intended for tests.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry = make(map[string]*zerolog.Logger)
}
