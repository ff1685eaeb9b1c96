package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the log record encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// config holds logger construction settings.
type config struct {
	output     io.Writer
	level      slog.Leveler
	format     Format
	extractors []ContextExtractor
}

// Option configures a logger created by New or NewWithSentry.
type Option func(*config)

// WithOutput sets the destination writer. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithLevel sets the minimum level. Default: slog.LevelInfo.
func WithLevel(l slog.Level) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithFormat sets the record encoding. Default: FormatJSON.
func WithFormat(f Format) Option {
	return func(c *config) {
		if f == FormatJSON || f == FormatText {
			c.format = f
		}
	}
}

// WithExtractors adds context extractors applied to every record.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		c.extractors = append(c.extractors, extractors...)
	}
}

func newConfig(opts ...Option) *config {
	c := &config{
		output: os.Stdout,
		level:  slog.LevelInfo,
		format: FormatJSON,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) handler() slog.Handler {
	ho := &slog.HandlerOptions{Level: c.level}
	if c.format == FormatText {
		return slog.NewTextHandler(c.output, ho)
	}
	return slog.NewJSONHandler(c.output, ho)
}

// New creates a logger writing to stdout (JSON, info level unless configured otherwise).
func New(opts ...Option) *slog.Logger {
	c := newConfig(opts...)
	return slog.New(NewLogHandlerDecorator(c.handler(), c.extractors...))
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(s)))
	return l, err
}
