// File: runner/config.go

package runner

import (
	"errors"
	"fmt"

	"github.com/notargets/emucheck/metrics"
	"go.uber.org/zap"
)

// Config controls how a registry is executed
type Config struct {
	// Parallelism is the number of cases executed at once; 1 runs them in order
	Parallelism int
	// FailFast stops scheduling cases after the first one that does not pass
	FailFast bool
}

// DefaultConfig runs every case sequentially
func DefaultConfig() Config {
	return Config{Parallelism: 1}
}

// Validate checks the configuration
func (c Config) Validate() error {
	if c.Parallelism < 1 {
		return fmt.Errorf("runner: parallelism must be at least 1, got %d", c.Parallelism)
	}
	return nil
}

// Option configures a Runner
type Option func(*Runner)

// WithConfig replaces the default configuration
func WithConfig(cfg Config) Option {
	return func(r *Runner) { r.cfg = cfg }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records outcomes into m
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

var (
	// ErrNoEmulator is returned by New without an emulator
	ErrNoEmulator = errors.New("runner: no emulator")
	// ErrFailFast is returned by Run when FailFast stopped the run
	ErrFailFast = errors.New("runner: stopped after first failing case")
	// ErrInvalidCase marks an Errored outcome for a case that failed validation
	ErrInvalidCase = errors.New("runner: invalid case")
)
