package seqlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option configures [Trace].
type Option func(*config)

type config struct {
	logger *zap.Logger
	name   string
	level  zapcore.Level
	values bool
}

func defaultConfig() config {
	return config{
		logger: zap.NewNop(),
		level:  zapcore.DebugLevel,
	}
}

// WithLogger sets the destination logger. A nil logger is ignored.
// Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithName appends name to the logger's name.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithLevel sets the level every trace entry is written at.
// Defaults to debug.
func WithLevel(lvl zapcore.Level) Option {
	return func(c *config) { c.level = lvl }
}

// WithValues controls whether element values are attached to advance entries
// under the "value" key. Off by default; values may be large or sensitive.
func WithValues(on bool) Option {
	return func(c *config) { c.values = on }
}
