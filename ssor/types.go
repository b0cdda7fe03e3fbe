// Package ssor defines configuration options and sentinel errors for the
// symmetric successive over-relaxation solver.
package ssor

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by the SSOR solver.
var (
	// ErrNotComputed indicates a solve was attempted before Compute.
	ErrNotComputed = errors.New("ssor: Compute must be called before solving")
	// ErrNonSquareMatrix indicates a coefficient matrix with rows != cols.
	ErrNonSquareMatrix = errors.New("ssor: coefficient matrix must be square")
	// ErrDimensionMismatch indicates right-hand-side or solution vectors whose
	// length differs from the matrix size.
	ErrDimensionMismatch = errors.New("ssor: vector length must match the matrix size")
	// ErrZeroDiagonal indicates a zero or non-finite diagonal entry, which the
	// relaxation update cannot divide by.
	ErrZeroDiagonal = errors.New("ssor: all diagonal entries must be finite and non-zero")
	// ErrDiverged indicates that the accumulated residual became non-finite
	// during iteration.
	ErrDiverged = errors.New("ssor: iteration diverged to a non-finite residual")
	// ErrBadRelaxation indicates a relaxation coefficient outside (0, 2).
	ErrBadRelaxation = errors.New("ssor: relaxation coefficient must be in (0, 2)")
	// ErrBadMaxIterations indicates a non-positive iteration limit.
	ErrBadMaxIterations = errors.New("ssor: MaxIterations must be positive")
	// ErrBadTolerance indicates a non-positive residual tolerance.
	ErrBadTolerance = errors.New("ssor: Tolerance must be positive")
	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("ssor: Workers must be positive")
)

// Default configuration values.
const (
	// DefaultMaxIterations bounds a standalone solve; the amg smoother
	// overrides this with a single sweep per V-cycle visit.
	DefaultMaxIterations = 1000
	// DefaultTolerance is the residual-rate stopping threshold.
	DefaultTolerance = 1e-10
	// DefaultRelaxation is the relaxation coefficient ω (symmetric
	// Gauss–Seidel).
	DefaultRelaxation = 1.0
	// parallelGrainSize is the minimum number of nonzeros per worker below
	// which Compute falls back to the sequential sweep.
	parallelGrainSize = 1000
)

// Options configures an SSOR solver.
//
// MaxIterations – maximum number of symmetric sweeps per solve (> 0).
// Tolerance     – stop once ‖Ax−b‖/‖b‖ falls below this value (> 0).
// Relaxation    – relaxation coefficient ω, must lie in (0, 2).
// Workers       – number of parallel blocks; 0 means GOMAXPROCS at Compute time.
// Parallel      – explicit parallelism override; nil means decide automatically
// from the nonzero count (see package documentation).
// Logger        – structured logger; a no-op logger by default.
type Options struct {
	MaxIterations int
	Tolerance     float64
	Relaxation    float64
	Workers       int
	Parallel      *bool
	Logger        zerolog.Logger
}

// Option mutates Options; invalid values panic with the matching sentinel
// error, signaling a programming error at configuration time.
type Option func(*Options)

// WithMaxIterations sets the sweep limit per solve. Must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIterations)
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the residual-rate stopping threshold. Must be positive.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance)
		}
		o.Tolerance = tol
	}
}

// WithRelaxation sets the relaxation coefficient ω. Must lie in (0, 2).
func WithRelaxation(omega float64) Option {
	return func(o *Options) {
		if omega <= 0 || omega >= 2 {
			panic(ErrBadRelaxation)
		}
		o.Relaxation = omega
	}
}

// WithWorkers fixes the number of parallel blocks. Must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadWorkers)
		}
		o.Workers = n
	}
}

// WithParallel forces parallel execution on or off, overriding the automatic
// decision made in Compute.
func WithParallel(on bool) Option {
	return func(o *Options) {
		o.Parallel = &on
	}
}

// WithLogger attaches a structured logger used for trace-level diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// DefaultOptions returns the default SSOR configuration: DefaultMaxIterations
// sweeps, DefaultTolerance, ω = DefaultRelaxation, automatic parallelism and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Relaxation:    DefaultRelaxation,
		Workers:       0,
		Parallel:      nil,
		Logger:        zerolog.Nop(),
	}
}
