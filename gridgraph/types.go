// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/aocgrid.
package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aocgrid/point"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrMalformedInput is the root of every parse-time structural problem.
	ErrMalformedInput = errors.New("gridgraph: malformed input")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
	// ErrMissingMarker indicates a required marker byte was not found.
	ErrMissingMarker = fmt.Errorf("%w: required marker not found", ErrMalformedInput)
	// ErrDuplicateMarker indicates a required marker byte occurs more than once.
	ErrDuplicateMarker = fmt.Errorf("%w: required marker is not unique", ErrMalformedInput)
	// ErrOutOfBounds indicates a write outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for parsing.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity for Neighbors and Regions.
	Conn Connectivity
	// Required lists marker bytes that must appear exactly once.
	Required []byte
	// Fill, when non-zero, replaces every required marker cell after its
	// position has been recorded ('S' and 'E' usually become '.').
	Fill byte
}

// Option configures Parse.
type Option func(*GridOptions)

// DefaultGridOptions returns Conn4 with no required markers and no fill.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// WithConnectivity sets the neighbor connectivity.
func WithConnectivity(c Connectivity) Option {
	return func(o *GridOptions) {
		o.Conn = c
	}
}

// WithRequiredMarkers makes Parse fail unless each marker occurs exactly once.
func WithRequiredMarkers(markers ...byte) Option {
	return func(o *GridOptions) {
		o.Required = append(o.Required, markers...)
	}
}

// WithMarkerFill replaces required marker cells by fill once located.
func WithMarkerFill(fill byte) Option {
	return func(o *GridOptions) {
		o.Fill = fill
	}
}

// Grid is a dense rectangular character map. Terrain is immutable unless
// Set is called; per-run annotations belong in an Overlay.
type Grid struct {
	Width, Height int
	Conn          Connectivity
	cells         []byte
	markers       map[byte]point.Point
}
