package canal

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Options holds the values a Channel's functional options assemble. Callers
// normally don't build this directly; use the With* Option constructors, or
// LoadOptionsFromEnv to seed it from the process environment.
type Options struct {
	logger       diagnosticLogger
	metricsLabel string
}

// Option configures a Channel at construction time.
type Option func(*Options)

// WithLogger attaches a logger that receives Debug-level events for
// internal bookkeeping such as segment growth. A nil logger disables
// logging, which is also the default.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *Options) {
		o.logger = diagnosticLogger{log: logger}
	}
}

// WithMetricsLabel sets the label value a Channel reports on its Prometheus
// metrics' "channel" dimension when registered as a prometheus.Collector.
// The default is "default".
func WithMetricsLabel(label string) Option {
	return func(o *Options) {
		o.metricsLabel = label
	}
}

func resolveOptions(opts []Option) Options {
	options := Options{metricsLabel: "default"}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// envConfig is the environment-variable surface for configuring a channel
// without wiring Option values through application code by hand. It is
// entirely optional: channels built with New or WithSegmentCapacity never
// consult the environment.
type envConfig struct {
	SegmentCapacity int    `env:"CANAL_SEGMENT_CAPACITY" envDefault:"1024"`
	MetricsLabel    string `env:"CANAL_METRICS_LABEL" envDefault:"default"`
}

// LoadOptionsFromEnv reads CANAL_SEGMENT_CAPACITY and CANAL_METRICS_LABEL
// from the process environment, optionally preceded by the contents of a
// .env file in the working directory, and returns the resulting segment
// capacity and Options. A missing .env file is not an error; a malformed
// one, or a malformed environment variable, is.
func LoadOptionsFromEnv() (segmentCapacity int, opts []Option, err error) {
	if loadErr := godotenv.Load(); loadErr != nil && !os.IsNotExist(loadErr) {
		return 0, nil, fmt.Errorf("canal: loading .env: %w", loadErr)
	}

	var cfg envConfig
	if parseErr := env.Parse(&cfg); parseErr != nil {
		return 0, nil, fmt.Errorf("canal: parsing environment: %w", parseErr)
	}

	return cfg.SegmentCapacity, []Option{WithMetricsLabel(cfg.MetricsLabel)}, nil
}
