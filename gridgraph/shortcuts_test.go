package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlsearch/gridgraph"
)

const racetrack = `
###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
`

// TestRacetrack_Honest checks the unassisted route length.
func TestRacetrack_Honest(t *testing.T) {
	gg := mustParse(t, racetrack)
	cost, _, err := gg.ShortestPath(gg.Start, gg.End)
	if err != nil || cost != 84 {
		t.Fatalf("ShortestPath = %d, %v; want 84", cost, err)
	}
}

// TestCountShortcutsExact counts jumps by exact saving.
func TestCountShortcutsExact(t *testing.T) {
	gg := mustParse(t, racetrack)
	cases := []struct {
		jump, saving, want int
	}{
		{2, 2, 14}, {2, 4, 14}, {2, 6, 2}, {2, 8, 4}, {2, 10, 2}, {2, 12, 3},
		{2, 20, 1}, {2, 36, 1}, {2, 38, 1}, {2, 40, 1}, {2, 64, 1}, {2, 66, 0},
		{20, 50, 32}, {20, 70, 12}, {20, 72, 22}, {20, 74, 4}, {20, 76, 3},
	}
	for _, tc := range cases {
		got, err := gg.CountShortcutsExact(tc.jump, tc.saving)
		if err != nil {
			t.Fatalf("CountShortcutsExact(%d,%d) error: %v", tc.jump, tc.saving, err)
		}
		if got != tc.want {
			t.Errorf("CountShortcutsExact(%d,%d) = %d; want %d", tc.jump, tc.saving, got, tc.want)
		}
	}
}

// TestCountShortcuts counts jumps saving at least a threshold.
func TestCountShortcuts(t *testing.T) {
	gg := mustParse(t, racetrack)
	cases := []struct {
		jump, min, want int
	}{
		{2, 20, 5},
		{2, 1, 44},
		{20, 76, 3},
		{20, 74, 7},
	}
	for _, tc := range cases {
		got, err := gg.CountShortcuts(tc.jump, tc.min)
		if err != nil || got != tc.want {
			t.Errorf("CountShortcuts(%d,%d) = %d, %v; want %d", tc.jump, tc.min, got, err, tc.want)
		}
	}
}

// TestShortcuts_SavingMatchesRoute checks every reported saving against the
// route it describes.
func TestShortcuts_SavingMatchesRoute(t *testing.T) {
	gg := mustParse(t, racetrack)
	cuts, err := gg.Shortcuts(2, 30)
	if err != nil {
		t.Fatalf("Shortcuts error: %v", err)
	}
	for _, c := range cuts {
		head, _, err := gg.ShortestPath(gg.Start, c.From)
		if err != nil {
			t.Fatalf("head %v: %v", c.From, err)
		}
		tail, _, err := gg.ShortestPath(c.To, gg.End)
		if err != nil {
			t.Fatalf("tail %v: %v", c.To, err)
		}
		if got := 84 - (head + gridgraph.Manhattan(c.From, c.To) + tail); got != c.Saving {
			t.Errorf("%v -> %v: saving %d; route says %d", c.From, c.To, c.Saving, got)
		}
	}
}

// TestShortcuts_Errors covers maps without markers or a route.
func TestShortcuts_Errors(t *testing.T) {
	if _, err := mustParse(t, "..E\n").Shortcuts(2, 1); !errors.Is(err, gridgraph.ErrNoStart) {
		t.Errorf("no start: error = %v; want ErrNoStart", err)
	}
	if _, err := mustParse(t, "S#E\n").Shortcuts(2, 1); !errors.Is(err, gridgraph.ErrNoPath) {
		t.Errorf("walled: error = %v; want ErrNoPath", err)
	}
}
