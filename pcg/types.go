package pcg

import (
	"errors"

	"github.com/rs/zerolog"
)

// Package-level sentinel errors.
var (
	// ErrNotComputed indicates a solve attempted before Compute.
	ErrNotComputed = errors.New("pcg: matrix not computed; call Compute first")
	// ErrNonSquareMatrix indicates a rectangular coefficient matrix.
	ErrNonSquareMatrix = errors.New("pcg: coefficient matrix must be square")
	// ErrDimensionMismatch indicates vectors inconsistent with the matrix.
	ErrDimensionMismatch = errors.New("pcg: dimension mismatch")
	// ErrBreakdown indicates a vanishing or negative curvature step, which
	// means the matrix or the preconditioner is not positive definite.
	ErrBreakdown = errors.New("pcg: iteration breakdown; matrix or preconditioner not positive definite")
	// ErrBadMaxIterations indicates a non-positive iteration limit.
	ErrBadMaxIterations = errors.New("pcg: max iterations must be positive")
	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("pcg: tolerance must be positive")
)

// Default configuration values.
const (
	// DefaultMaxIterations bounds the conjugate gradient steps per solve.
	DefaultMaxIterations = 1000
	// DefaultTolerance is the relative-residual stopping threshold.
	DefaultTolerance = 1e-10
)

// Preconditioner approximates the inverse of the coefficient matrix: Apply
// overwrites dst with M⁻¹·rhs. Implementations must be ready before the first
// call; amg.Preconditioner satisfies this after its Compute.
type Preconditioner interface {
	Apply(dst, rhs []float64) error
}

// Identity is the no-op preconditioner; with it the solver performs plain
// conjugate gradients.
type Identity struct{}

// Apply copies rhs into dst.
func (Identity) Apply(dst, rhs []float64) error {
	copy(dst, rhs)
	return nil
}

// Options configures a Solver.
//
// MaxIterations  – conjugate gradient step limit per solve.
// Tolerance      – relative-residual stopping threshold ‖r‖/‖b‖.
// Preconditioner – residual preconditioner; Identity when nil.
// Logger         – structured logger; a no-op logger by default.
type Options struct {
	MaxIterations  int
	Tolerance      float64
	Preconditioner Preconditioner
	Logger         zerolog.Logger
}

// Option mutates Options; invalid values panic with a sentinel error.
type Option func(*Options)

// WithMaxIterations sets the step limit per solve. Must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIterations)
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the relative-residual stopping threshold. Must be
// positive.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance)
		}
		o.Tolerance = tol
	}
}

// WithPreconditioner sets the residual preconditioner.
func WithPreconditioner(p Preconditioner) Option {
	return func(o *Options) { o.Preconditioner = p }
}

// WithLogger sets the structured logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// DefaultOptions returns the default conjugate gradient configuration.
func DefaultOptions() Options {
	return Options{
		MaxIterations:  DefaultMaxIterations,
		Tolerance:      DefaultTolerance,
		Preconditioner: Identity{},
		Logger:         zerolog.Nop(),
	}
}
