// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvlsearch.
package gridgraph

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadTile indicates an unknown character in an ASCII map.
	ErrBadTile = errors.New("gridgraph: unknown tile")
	// ErrBadPoint indicates a malformed "x,y" line.
	ErrBadPoint = errors.New("gridgraph: malformed point")
	// ErrNoStart indicates the map has no 'S' tile.
	ErrNoStart = errors.New("gridgraph: map has no start tile")
	// ErrNoEnd indicates the map has no 'E' tile.
	ErrNoEnd = errors.New("gridgraph: map has no end tile")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrBlocked indicates a route endpoint lies on a wall.
	ErrBlocked = errors.New("gridgraph: point is a wall")
	// ErrBadCosts indicates negative movement costs.
	ErrBadCosts = errors.New("gridgraph: movement costs must be non-negative")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no route exists between the requested cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
	// ErrNeverBlocked indicates that no prefix of the drops disconnects the route.
	ErrNeverBlocked = errors.New("gridgraph: route is never blocked")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a cell coordinate. X grows to the east, Y to the south.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// String formats p as "x,y".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Manhattan returns the taxicab distance between a and b.
func Manhattan(a, b Point) int {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Chebyshev returns the king-move distance between a and b.
func Chebyshev(a, b Point) int {
	return max(Abs(a.X-b.X), Abs(a.Y-b.Y))
}

// Direction is a facing on the grid.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var deltas = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the unit step in direction d.
func (d Direction) Delta() Point { return deltas[d&3] }

// Left returns d rotated 90° counter-clockwise.
func (d Direction) Left() Direction { return (d + 3) & 3 }

// Right returns d rotated 90° clockwise.
func (d Direction) Right() Direction { return (d + 1) & 3 }

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Pose is a position plus facing. Revisiting a cell with another facing is a
// different state.
type Pose struct {
	Pos Point
	Dir Direction
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// WallThreshold specifies the minimum cell value considered a wall.
	WallThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// WallThreshold=1 (values ≥1 are walls), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WallThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// Start and End are set by Parse when the map carries 'S' and 'E' tiles.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	WallThreshold   int
	Start, End      Point
	hasStart        bool
	hasEnd          bool
	neighborOffsets [][2]int
}
