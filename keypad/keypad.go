// Package keypad prices key sequences typed through a chain of robots, each
// operating the directional keypad of the next.
//
// The cost of pressing a key at layer k is the number of human key presses it
// takes. Layer 0 is the human, who presses any directional key at cost 1.
// Every further layer is derived from the one below it with the search engine:
// a robot arm moves between keys one cell at a time, each move is a press of
// an arrow on the controlling pad, and the final press is an 'A' there.
//
// Tables are cached in a Chain value; nothing is shared between chains.
package keypad

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlsearch/gridgraph"
	"github.com/katalvlaran/lvlsearch/search"
)

// Sentinel errors.
var (
	// ErrUnknownKey indicates a key that is not on the pad.
	ErrUnknownKey = errors.New("keypad: unknown key")
	// ErrBadCode indicates a code without a numeric value.
	ErrBadCode = errors.New("keypad: malformed code")
	// ErrBadRobots indicates a negative number of robot layers.
	ErrBadRobots = errors.New("keypad: robot count must be non-negative")
)

// Key is a single keypad label.
type Key byte

// Activate is the 'A' key present on both pads.
const Activate Key = 'A'

// arrows maps each movement to the key that commands it.
var arrows = map[gridgraph.Direction]Key{
	gridgraph.North: '^',
	gridgraph.East:  '>',
	gridgraph.South: 'v',
	gridgraph.West:  '<',
}

// Pad is a fixed keypad layout. Blank cells are gaps the arm must never cross.
type Pad struct {
	name string
	keys []Key
	pos  map[Key]gridgraph.Point
	at   map[gridgraph.Point]Key
}

func newPad(name string, rows ...string) *Pad {
	p := &Pad{name: name, pos: map[Key]gridgraph.Point{}, at: map[gridgraph.Point]Key{}}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == ' ' {
				continue
			}
			k, pt := Key(row[x]), gridgraph.Point{X: x, Y: y}
			p.keys = append(p.keys, k)
			p.pos[k] = pt
			p.at[pt] = k
		}
	}
	return p
}

var (
	// Numeric is the door keypad.
	Numeric = newPad("numeric", "789", "456", "123", " 0A")
	// Directional is the arrow keypad every robot is driven from.
	Directional = newPad("directional", " ^A", "<v>")
)

// Name returns the layout name.
func (p *Pad) Name() string { return p.name }

// Keys lists the keys in reading order.
func (p *Pad) Keys() []Key { return append([]Key(nil), p.keys...) }

// Has reports whether k is on the pad.
func (p *Pad) Has(k Key) bool {
	_, ok := p.pos[k]
	return ok
}

// Table holds, for every ordered key pair, the cost of moving the arm from the
// first key to the second and pressing it.
type Table map[[2]Key]int64

// Cost returns t[{from, to}].
func (t Table) Cost(from, to Key) int64 { return t[[2]Key{from, to}] }

// layerState is the arm position on the pad being priced together with the
// last key pressed on the controlling pad.
type layerState struct {
	at      Key
	last    Key
	pressed bool
}

// derive prices every key pair on pad given the table of the controlling layer.
func derive(pad *Pad, below Table) (Table, error) {
	neighbors := func(s layerState) []search.Edge[layerState, int64] {
		if s.pressed {
			return nil
		}
		out := make([]search.Edge[layerState, int64], 0, 5)
		for d := gridgraph.North; d <= gridgraph.West; d++ {
			next, ok := pad.at[pad.pos[s.at].Add(d.Delta())]
			if !ok {
				continue
			}
			arrow := arrows[d]
			out = append(out, search.Edge[layerState, int64]{
				To:   layerState{at: next, last: arrow},
				Cost: below.Cost(s.last, arrow),
			})
		}
		out = append(out, search.Edge[layerState, int64]{
			To:   layerState{at: s.at, last: Activate, pressed: true},
			Cost: below.Cost(s.last, Activate),
		})
		return out
	}

	t := make(Table, len(pad.keys)*len(pad.keys))
	for _, from := range pad.keys {
		dist, err := search.Distances(layerState{at: from, last: Activate}, neighbors)
		if err != nil {
			return nil, fmt.Errorf("keypad: %s layer from %c: %w", pad.name, from, err)
		}
		for _, to := range pad.keys {
			t[[2]Key{from, to}] = dist[layerState{at: to, last: Activate, pressed: true}]
		}
	}

	return t, nil
}

// human is the bottom layer: every directional key costs one press.
func human() Table {
	t := make(Table, len(Directional.keys)*len(Directional.keys))
	for _, a := range Directional.keys {
		for _, b := range Directional.keys {
			t[[2]Key{a, b}] = 1
		}
	}
	return t
}

// Chain caches the cost tables for a fixed number of intermediate robots on
// directional pads, between the human and the robot at the numeric pad.
type Chain struct {
	robots  int
	layers  []Table // layers[i]: pressing a directional key at depth i
	numeric Table
}

// NewChain builds the tables for the given number of directional robots.
func NewChain(robots int) (*Chain, error) {
	if robots < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRobots, robots)
	}
	c := &Chain{robots: robots, layers: make([]Table, 0, robots+1)}
	c.layers = append(c.layers, human())
	for i := 0; i < robots; i++ {
		next, err := derive(Directional, c.layers[i])
		if err != nil {
			return nil, err
		}
		c.layers = append(c.layers, next)
	}
	num, err := derive(Numeric, c.layers[robots])
	if err != nil {
		return nil, err
	}
	c.numeric = num

	return c, nil
}

// Robots returns the number of directional robots in the chain.
func (c *Chain) Robots() int { return c.robots }

// Table returns the outermost cost table for pad: the numeric robot for
// Numeric, the last directional robot for Directional.
func (c *Chain) Table(pad *Pad) Table {
	if pad == Numeric {
		return c.numeric
	}
	return c.layers[c.robots]
}

// SequenceLength returns the number of human presses needed to type code on
// the numeric pad. The arm starts on 'A'.
func (c *Chain) SequenceLength(code string) (int64, error) {
	var total int64
	prev := Activate
	for i := 0; i < len(code); i++ {
		k := Key(code[i])
		if !Numeric.Has(k) {
			return 0, fmt.Errorf("%w %q in %q", ErrUnknownKey, code[i], code)
		}
		total += c.numeric.Cost(prev, k)
		prev = k
	}

	return total, nil
}

// Value returns the numeric part of a code such as "029A".
func Value(code string) (int64, error) {
	digits := strings.TrimSuffix(code, string(Activate))
	if digits == "" || digits == code {
		return 0, fmt.Errorf("%w: %q", ErrBadCode, code)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadCode, code)
	}
	return n, nil
}

// Complexity sums sequence length times numeric value over codes.
func Complexity(codes []string, robots int) (int64, error) {
	c, err := NewChain(robots)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, code := range codes {
		n, err := c.SequenceLength(code)
		if err != nil {
			return 0, err
		}
		v, err := Value(code)
		if err != nil {
			return 0, err
		}
		sum += n * v
	}

	return sum, nil
}
