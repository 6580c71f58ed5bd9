package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Map tiles understood by Parse.
const (
	TileOpen  = '.'
	TileWall  = '#'
	TileStart = 'S'
	TileEnd   = 'E'
)

// Parse reads an ASCII map: '#' is a wall, '.' is open, 'S' and 'E' are open
// cells marking the start and the end. Blank lines are ignored.
// Walls are stored with value opts.WallThreshold, open cells with 0.
func Parse(r io.Reader, opts GridOptions) (*GridGraph, error) {
	if opts.WallThreshold < 1 {
		opts.WallThreshold = 1
	}
	var (
		rows       [][]int
		start, end Point
		hasS, hasE bool
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		y := len(rows)
		row := make([]int, len(line))
		for x, ch := range []byte(line) {
			switch ch {
			case TileOpen:
			case TileWall:
				row[x] = opts.WallThreshold
			case TileStart:
				start, hasS = Point{x, y}, true
			case TileEnd:
				end, hasE = Point{x, y}, true
			default:
				return nil, fmt.Errorf("%w %q at %d,%d", ErrBadTile, ch, x, y)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read map: %w", err)
	}

	gg, err := NewGridGraph(rows, opts)
	if err != nil {
		return nil, err
	}
	gg.Start, gg.hasStart = start, hasS
	gg.End, gg.hasEnd = end, hasE

	return gg, nil
}

// ParsePoints reads one "x,y" pair per line. Blank lines are ignored.
func ParsePoints(r io.Reader) ([]Point, error) {
	var pts []Point
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w on line %d: %q", ErrBadPoint, n, line)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w on line %d: %q", ErrBadPoint, n, line)
		}
		pts = append(pts, Point{x, y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read points: %w", err)
	}

	return pts, nil
}

// NewCorrupted builds an open width×height grid with a wall on every drop.
// Returns ErrOutOfBounds for a drop outside the grid.
func NewCorrupted(width, height int, drops []Point) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	rows := make([][]int, height)
	for y := range rows {
		rows[y] = make([]int, width)
	}
	for _, p := range drops {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
		rows[p.Y][p.X] = 1
	}

	return NewGridGraph(rows, DefaultGridOptions())
}
