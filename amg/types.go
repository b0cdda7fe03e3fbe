// Package amg defines the solver configuration, functional options and
// sentinel errors of the algebraic multigrid solver.
package amg

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by the AMG solver.
var (
	// ErrNotComputed indicates a solve was attempted before Compute.
	ErrNotComputed = errors.New("amg: Compute must be called before solving")
	// ErrNonSquareMatrix indicates a coefficient matrix with rows != cols.
	ErrNonSquareMatrix = errors.New("amg: coefficient matrix must be square")
	// ErrDimensionMismatch indicates right-hand-side or solution vectors whose
	// length differs from the matrix size.
	ErrDimensionMismatch = errors.New("amg: vector length must match the matrix size")
	// ErrNotPositiveDefinite indicates that the Cholesky factorization of the
	// coarsest-level matrix failed.
	ErrNotPositiveDefinite = errors.New("amg: coarsest-level matrix is not positive definite")
	// ErrNoInterpolationSource indicates a fine node with no coarse neighbor
	// after tuning, which violates the coarsening contract.
	ErrNoInterpolationSource = errors.New("amg: fine node has no coarse neighbor to interpolate from")
	// ErrCoarseningStalled indicates that a coarsening step failed to reduce
	// the number of unknowns, so the hierarchy cannot shrink any further.
	ErrCoarseningStalled = errors.New("amg: coarsening did not reduce the matrix size")
	// ErrBadThreshold indicates a strong-connection threshold outside (0, 1).
	ErrBadThreshold = errors.New("amg: strong-connection threshold must be in (0, 1)")
	// ErrBadDirectSize indicates a non-positive maximum directly-solved size.
	ErrBadDirectSize = errors.New("amg: MaxDirectSize must be positive")
	// ErrBadMaxIterations indicates a non-positive iteration limit.
	ErrBadMaxIterations = errors.New("amg: MaxIterations must be positive")
	// ErrBadTolerance indicates a non-positive residual tolerance.
	ErrBadTolerance = errors.New("amg: Tolerance must be positive")
	// ErrBadRelaxation indicates a relaxation coefficient outside (0, 2).
	ErrBadRelaxation = errors.New("amg: relaxation coefficient must be in (0, 2)")
)

// Default configuration values.
const (
	// DefaultStrongThreshold is the strong-connection coefficient ratio θ.
	DefaultStrongThreshold = 0.25
	// DefaultMaxDirectSize is the largest coarsest-level matrix that is
	// factorized and solved directly.
	DefaultMaxDirectSize = 500
	// DefaultMaxIterations bounds the number of V-cycles per solve.
	DefaultMaxIterations = 100
	// DefaultTolerance is the relative-residual stopping threshold.
	DefaultTolerance = 1e-10
	// smootherSweeps is the fixed iteration budget of every per-level
	// smoother: one symmetric sweep per V-cycle visit.
	smootherSweeps = 1
)

// Options configures an AMG solver.
//
// StrongThreshold – θ ∈ (0, 1); entries within θ of the row maximum are strong.
// MaxDirectSize   – hierarchy stops once a level has at most this many
// unknowns (> 0); that level is solved by dense Cholesky.
// MaxIterations   – maximum number of V-cycles per solve (> 0).
// Tolerance       – stop once ‖Ax−b‖/‖b‖ falls below this value (> 0).
// Relaxation      – smoother relaxation coefficient ω ∈ (0, 2).
// Parallel        – explicit smoother-parallelism override; nil means the
// smoother decides per level from its nonzero count.
// Logger          – structured logger; a no-op logger by default.
type Options struct {
	StrongThreshold float64
	MaxDirectSize   int
	MaxIterations   int
	Tolerance       float64
	Relaxation      float64
	Parallel        *bool
	Logger          zerolog.Logger
}

// Option mutates Options; invalid values panic with the matching sentinel
// error, signaling a programming error at configuration time.
type Option func(*Options)

// WithStrongThreshold sets the strong-connection ratio θ. Must be in (0, 1).
func WithStrongThreshold(theta float64) Option {
	return func(o *Options) {
		if theta <= 0 || theta >= 1 {
			panic(ErrBadThreshold)
		}
		o.StrongThreshold = theta
	}
}

// WithMaxDirectSize sets the largest matrix solved directly at the coarsest
// level. Must be positive.
func WithMaxDirectSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadDirectSize)
		}
		o.MaxDirectSize = n
	}
}

// WithMaxIterations sets the V-cycle limit per solve. Must be positive.
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

// WithRelaxation sets the smoother relaxation coefficient ω. Must be in
// (0, 2).
func WithRelaxation(omega float64) Option {
	return func(o *Options) {
		if omega <= 0 || omega >= 2 {
			panic(ErrBadRelaxation)
		}
		o.Relaxation = omega
	}
}

// WithParallel forces the per-level smoothers to run in parallel or
// sequentially, overriding their automatic decision.
func WithParallel(on bool) Option {
	return func(o *Options) {
		o.Parallel = &on
	}
}

// WithLogger attaches a structured logger; hierarchy assembly and solves emit
// debug-level records through it.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// DefaultOptions returns the default AMG configuration.
func DefaultOptions() Options {
	return Options{
		StrongThreshold: DefaultStrongThreshold,
		MaxDirectSize:   DefaultMaxDirectSize,
		MaxIterations:   DefaultMaxIterations,
		Tolerance:       DefaultTolerance,
		Relaxation:      1,
		Parallel:        nil,
		Logger:          zerolog.Nop(),
	}
}

// grade is the coarse/fine classification tag of one node.
type grade uint8

const (
	// gradeUnclassified marks a node the greedy selection has not reached.
	gradeUnclassified grade = iota
	// gradeCoarse marks a node that survives into the next coarser level.
	gradeCoarse
	// gradeFine marks a node reconstructed by interpolation.
	gradeFine
)
