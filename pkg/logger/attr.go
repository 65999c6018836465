package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Rule records a derived rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Kind records a validator kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Field records a field key under the key "field".
func Field(key string) slog.Attr {
	return slog.String("field", key)
}

func File(path string) slog.Attr {
	return slog.String("file", path)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
