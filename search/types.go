// Package search defines core types and configuration options for the
// generic weighted state-space search.
package search

import (
	"errors"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the search implementation.
var (
	// ErrNoPath indicates the frontier emptied before any goal state was
	// reached. It is an expected outcome: callers branch on it with errors.Is.
	ErrNoPath = errors.New("search: no path found")

	// ErrNilExpand indicates the Problem has no expansion function.
	ErrNilExpand = errors.New("search: expand function is nil")

	// ErrNilGoal indicates the Problem has no goal predicate.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrNegativeCost indicates an expansion yielded a negative step cost.
	ErrNegativeCost = errors.New("search: negative step cost encountered")

	// ErrBadK indicates KShortest was asked for fewer than one path.
	ErrBadK = errors.New("search: k must be at least 1")

	// ErrBadMaxCost indicates MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")

	// ErrBadMaxPaths indicates MaxPaths was set to a negative value.
	ErrBadMaxPaths = errors.New("search: MaxPaths must be non-negative")
)

// Edge is one legal move out of a state.
type Edge[S comparable] struct {
	To   S     // successor state
	Cost int64 // incremental cost, must be ≥ 0
}

// Problem parameterizes a search.
//
// Start    – initial state.
// Expand   – legal moves from a state with their incremental costs.
// Goal     – accepting predicate, tested when a state is popped.
// Heuristic – optional consistent lower bound on the remaining cost.
type Problem[S comparable] struct {
	Start     S
	Expand    func(S) []Edge[S]
	Goal      func(S) bool
	Heuristic func(S) int64
}

func (p Problem[S]) validate() error {
	if p.Expand == nil {
		return ErrNilExpand
	}
	if p.Goal == nil {
		return ErrNilGoal
	}
	return nil
}

// Path is a loopless sequence of states from a start to a goal.
// Costs[i] is the accumulated cost on arrival at States[i]; Costs[0] == 0.
type Path[S comparable] struct {
	States []S
	Costs  []int64
	Cost   int64
}

// Result is the outcome of ShortestPath.
type Result[S comparable] struct {
	Cost     int64    // total cost to Goal
	Goal     S        // the accepting state that was reached
	Path     *Path[S] // nil unless WithReturnPath was given
	Expanded int      // number of states expanded
}

// Options configures the search.
//
// ReturnPath – if true, reconstruct the path to the goal.
// MaxCost    – states whose accumulated cost would exceed this are pruned.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// MaxPaths   – AllShortest stops after this many paths. 0 means no cap.
// Logger     – receives Debug-level statistics; silent by default.
type Options struct {
	ReturnPath bool
	MaxCost    int64
	MaxPaths   int
	Logger     logrus.FieldLogger
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithReturnPath enables path reconstruction in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost prunes every state whose accumulated cost exceeds max.
// A goal beyond the cap is reported as ErrNoPath.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithMaxPaths caps how many optimal paths AllShortest enumerates.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxPaths.Error())
		}
		o.MaxPaths = n
	}
}

// WithLogger routes Debug-level search statistics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// silent discards everything; it is the default Logger.
var silent = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// DefaultOptions returns an Options struct initialized with:
//   - ReturnPath: false
//   - MaxCost:    math.MaxInt64 (no cap)
//   - MaxPaths:   0 (no cap)
//   - Logger:     a logger writing to io.Discard
func DefaultOptions() Options {
	return Options{
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
		MaxPaths:   0,
		Logger:     silent,
	}
}
