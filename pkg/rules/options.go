package rules

import "log/slog"

// Option configures Compile.
type Option func(*compileConfig)

// WithLogger sets the logger used to report fallbacks and replaced rules.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *compileConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

type compileConfig struct {
	logger *slog.Logger
}

func defaultCompileConfig() *compileConfig {
	return &compileConfig{logger: slog.New(slog.DiscardHandler)}
}
