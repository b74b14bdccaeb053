// Package gridgraph models a rectangular character map as a graph of
// cells addressed by point.Point.
//
// What:
//
//   - Grid stores the static terrain of a puzzle map in a flat row-major
//     []byte (index = y*Width + x) and answers O(1) lookups.
//   - Markers (start/end symbols such as 'S', 'E', '^') are located during
//     parsing and can be required, so a missing or duplicated marker fails
//     fast instead of defaulting to the origin.
//   - Overlay is a per-run flag layer (visited, energized, …) kept apart
//     from the terrain so independent trials can share one read-only Grid.
//   - Regions groups open cells into connected components.
//
// Neighbors4 and Neighbors never filter by bounds or walls: adjacency
// policy belongs to the search that walks the grid.
//
// Complexity:
//
//   - Parse:   O(W×H) time and memory.
//   - Get/Set: O(1).
//   - Regions: O(W×H×d), d = 4 or 8.
//   - Overlay.Reset: O(W×H) without reallocating.
//
// Errors (all wrap ErrMalformedInput except ErrOutOfBounds):
//
//   - ErrEmptyGrid:       the text has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrMissingMarker:   a required marker is absent.
//   - ErrDuplicateMarker: a required marker occurs more than once.
//   - ErrOutOfBounds:     Set outside the grid.
package gridgraph
