// Package point provides the integer 2D coordinate shared by every grid
// and search package of github.com/katalvlaran/aocgrid.
//
// A Point is a small immutable value type. It doubles as a grid key and as
// a directional delta (North = (0,-1), screen orientation: Y grows
// downwards), so rotation and Manhattan distance live next to the
// arithmetic.
//
// Rotation conventions:
//
//	RotateLeft:  (x, y) → ( y, -x)   East → North → West → South
//	RotateRight: (x, y) → (-y,  x)   East → South → West → North
package point
