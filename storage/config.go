package storage

import "github.com/sirupsen/logrus"

// DefaultTargetChunkSize is used when a Table is constructed without an
// explicit WithTargetChunkSize option.
const DefaultTargetChunkSize = 1 << 16 // 65536 rows per chunk

// Config is the single configuration surface the engine exposes (§6): how
// many rows a chunk accepts before a new tail opens, plus the logger used
// for compression diagnostics. Built with functional options, the
// way a caller of NewTable composes behavior without the library parsing
// flags itself (flag parsing belongs to cmd/colstore only).
type Config struct {
	TargetChunkSize int
	Logger          *logrus.Logger
}

type Option func(*Config)

// WithTargetChunkSize overrides DefaultTargetChunkSize. Test scenarios in
// the spec use small values like 4 to exercise chunk boundaries cheaply.
func WithTargetChunkSize(n int) Option {
	return func(c *Config) { c.TargetChunkSize = n }
}

// WithLogger overrides the default (logrus.StandardLogger()) diagnostic
// logger.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func newConfig(opts ...Option) Config {
	cfg := Config{TargetChunkSize: DefaultTargetChunkSize, Logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
