package gridgraph

import (
	"github.com/katalvlaran/lvlsearch/search"
)

// Shortcut is a jump between two open cells that skips the walls between them.
type Shortcut struct {
	From, To Point
	Saving   int
}

// Shortcuts lists every jump of at most maxJump Manhattan cells between two
// open cells that shortens the Start→End route by at least minSaving.
// A jump is charged its Manhattan length; the rest of the route follows
// unit moves. Distances from both ends are computed once.
func (gg *GridGraph) Shortcuts(maxJump, minSaving int) ([]Shortcut, error) {
	start, err := gg.StartPoint()
	if err != nil {
		return nil, err
	}
	end, err := gg.EndPoint()
	if err != nil {
		return nil, err
	}
	fromStart, err := search.Distances(start, gg.Moves)
	if err != nil {
		return nil, err
	}
	honest, ok := fromStart[end]
	if !ok {
		return nil, ErrNoPath
	}
	toEnd, err := search.Distances(end, gg.Moves)
	if err != nil {
		return nil, err
	}

	var out []Shortcut
	for a, da := range fromStart {
		for dy := -maxJump; dy <= maxJump; dy++ {
			span := maxJump - Abs(dy)
			for dx := -span; dx <= span; dx++ {
				b := Point{a.X + dx, a.Y + dy}
				db, ok := toEnd[b]
				if !ok {
					continue
				}
				saving := honest - (da + Abs(dx) + Abs(dy) + db)
				if saving >= minSaving && saving > 0 {
					out = append(out, Shortcut{From: a, To: b, Saving: saving})
				}
			}
		}
	}

	return out, nil
}

// CountShortcuts returns how many jumps save at least minSaving.
func (gg *GridGraph) CountShortcuts(maxJump, minSaving int) (int, error) {
	cuts, err := gg.Shortcuts(maxJump, minSaving)
	return len(cuts), err
}

// CountShortcutsExact returns how many jumps save exactly saving.
func (gg *GridGraph) CountShortcutsExact(maxJump, saving int) (int, error) {
	cuts, err := gg.Shortcuts(maxJump, saving)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range cuts {
		if c.Saving == saving {
			n++
		}
	}

	return n, nil
}
