package core

import "log/slog"

// Option configures a ModuleTree via the functional options pattern.
type Option func(*ModuleTree)

// WithStrict toggles definition validation and warnings. Strict is the default;
// disabling it skips the checks, and unresolvable handlers are silently dropped.
func WithStrict(strict bool) Option {
	return func(t *ModuleTree) {
		t.strict = strict
	}
}

// WithLogger sets the logger used for debug output and the default reporter.
func WithLogger(logger *slog.Logger) Option {
	return func(t *ModuleTree) {
		t.logger = logger
	}
}

// WithReporter routes warnings to r instead of the logger.
func WithReporter(r Reporter) Option {
	return func(t *ModuleTree) {
		t.reporter = r
	}
}

// RegisterOption configures a single Register call.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	runtime bool
}

// WithRuntime marks whether the registered subtree is a runtime module,
// i.e. eligible for Unregister. Register defaults to true.
func WithRuntime(runtime bool) RegisterOption {
	return func(c *registerConfig) {
		c.runtime = runtime
	}
}
