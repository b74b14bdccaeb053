// Package parallel provides options and errors for parallel trial batches.
package parallel

import (
	"errors"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNoTrials is returned by Max when there is nothing to reduce.
	ErrNoTrials = errors.New("parallel: no trials")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("parallel: workers must be at least 1")
)

// Options configures how a batch is partitioned.
type Options struct {
	Workers int
	Logger  logrus.FieldLogger
}

// Option represents a functional option for configuring a batch.
type Option func(*Options)

// WithWorkers sets the number of goroutines; the batch never uses more
// workers than it has trials.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithLogger routes Debug-level partitioning details to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

var silent = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// DefaultOptions returns one worker per available CPU and a discarded logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  silent,
	}
}
