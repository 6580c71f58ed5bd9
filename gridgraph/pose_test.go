package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlsearch/gridgraph"
)

const reindeerSmall = `
###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

const reindeerLarge = `
#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

// twoBends offers a one-turn route and a two-turn route of equal length.
const twoBends = `
##########
#S.......#
##.#####.#
##......E#
##########
`

// TestDirection_Rotation checks that four turns return to the same facing.
func TestDirection_Rotation(t *testing.T) {
	for d := gridgraph.North; d <= gridgraph.West; d++ {
		if d.Left().Right() != d {
			t.Errorf("%v: Left then Right = %v", d, d.Left().Right())
		}
		if d.Right().Right().Right().Right() != d {
			t.Errorf("%v: four right turns = %v", d, d.Right().Right().Right().Right())
		}
		back := d.Right().Right().Delta()
		if d.Delta().Add(back) != (gridgraph.Point{}) {
			t.Errorf("%v: opposite delta does not cancel", d)
		}
	}
	if gridgraph.East.Right() != gridgraph.South || gridgraph.North.Left() != gridgraph.West {
		t.Errorf("rotation direction is wrong")
	}
}

// TestBestRoute_Mazes checks known turn-penalized costs and tile counts.
func TestBestRoute_Mazes(t *testing.T) {
	cases := []struct {
		name        string
		maze        string
		cost, tiles int
	}{
		{"Small", reindeerSmall, 7036, 45},
		{"Large", reindeerLarge, 11048, 64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gg := mustParse(t, tc.maze)
			cost, err := gg.BestRoute(gridgraph.DefaultTurnCosts())
			if err != nil || cost != tc.cost {
				t.Fatalf("BestRoute = %d, %v; want %d", cost, err, tc.cost)
			}
			cost, tiles, err := gg.BestRouteTiles(gridgraph.DefaultTurnCosts())
			if err != nil || cost != tc.cost || tiles != tc.tiles {
				t.Errorf("BestRouteTiles = %d, %d, %v; want %d, %d", cost, tiles, err, tc.cost, tc.tiles)
			}
		})
	}
}

// TestBestRoute_TurnPenalty shows that expensive turns single out the
// straighter route while free turns keep both.
func TestBestRoute_TurnPenalty(t *testing.T) {
	gg := mustParse(t, twoBends)
	cases := []struct {
		name        string
		tc          gridgraph.TurnCosts
		cost, tiles int
	}{
		{"ExpensiveTurns", gridgraph.TurnCosts{Step: 1, Turn: 1000}, 1009, 10},
		{"FreeTurns", gridgraph.TurnCosts{Step: 1, Turn: 0}, 9, 17},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cost, tiles, err := gg.BestRouteTiles(tc.tc)
			if err != nil || cost != tc.cost || tiles != tc.tiles {
				t.Errorf("BestRouteTiles = %d, %d, %v; want %d, %d", cost, tiles, err, tc.cost, tc.tiles)
			}
		})
	}
}

// TestBestRoute_Errors covers invalid costs, missing markers and dead ends.
func TestBestRoute_Errors(t *testing.T) {
	gg := mustParse(t, twoBends)
	if _, err := gg.BestRoute(gridgraph.TurnCosts{Step: 1, Turn: -1}); !errors.Is(err, gridgraph.ErrBadCosts) {
		t.Errorf("negative turn: error = %v; want ErrBadCosts", err)
	}
	noEnd := mustParse(t, "S..\n")
	if _, err := noEnd.BestRoute(gridgraph.DefaultTurnCosts()); !errors.Is(err, gridgraph.ErrNoEnd) {
		t.Errorf("no end: error = %v; want ErrNoEnd", err)
	}
	walled := mustParse(t, "S#E\n")
	if _, _, err := walled.BestRouteTiles(gridgraph.DefaultTurnCosts()); !errors.Is(err, gridgraph.ErrNoPath) {
		t.Errorf("walled: error = %v; want ErrNoPath", err)
	}
}
