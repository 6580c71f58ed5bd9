package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlsearch/gridgraph"
	"github.com/katalvlaran/lvlsearch/keypad"
	"github.com/katalvlaran/lvlsearch/network"
)

// answers holds the two printed results of a solver.
type answers struct {
	part1, part2 string
}

// solver runs one puzzle family over its input.
type solver func(cfg Config, in io.Reader, log *slog.Logger) (answers, error)

var solvers = map[string]solver{
	"maze":   solveMaze,
	"ram":    solveRAM,
	"race":   solveRace,
	"keypad": solveKeypad,
	"lan":    solveLAN,
}

// solverNames lists the registered solvers in sorted order.
func solverNames() []string {
	names := make([]string, 0, len(solvers))
	for name := range solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func solveMaze(cfg Config, in io.Reader, log *slog.Logger) (answers, error) {
	gg, err := gridgraph.Parse(in, gridgraph.DefaultGridOptions())
	if err != nil {
		return answers{}, err
	}
	log.Debug("maze parsed", slog.Int("width", gg.Width), slog.Int("height", gg.Height))
	cost, tiles, err := gg.BestRouteTiles(gridgraph.TurnCosts{Step: cfg.Maze.StepCost, Turn: cfg.Maze.TurnCost})
	if err != nil {
		return answers{}, err
	}

	return answers{strconv.Itoa(cost), strconv.Itoa(tiles)}, nil
}

func solveRAM(cfg Config, in io.Reader, log *slog.Logger) (answers, error) {
	drops, err := gridgraph.ParsePoints(in)
	if err != nil {
		return answers{}, err
	}
	n := min(cfg.RAM.Bytes, len(drops))
	size := cfg.RAM.Size
	log.Debug("drops parsed", slog.Int("total", len(drops)), slog.Int("fallen", n))

	gg, err := gridgraph.NewCorrupted(size, size, drops[:n])
	if err != nil {
		return answers{}, err
	}
	from, to := gridgraph.Point{}, gridgraph.Point{X: size - 1, Y: size - 1}
	steps, _, err := gg.ShortestPath(from, to)
	if err != nil {
		return answers{}, err
	}
	i, err := gridgraph.FirstBlocking(size, size, drops, from, to)
	if err != nil {
		return answers{}, err
	}

	return answers{strconv.Itoa(steps), drops[i].String()}, nil
}

func solveRace(cfg Config, in io.Reader, log *slog.Logger) (answers, error) {
	gg, err := gridgraph.Parse(in, gridgraph.DefaultGridOptions())
	if err != nil {
		return answers{}, err
	}
	short, err := gg.CountShortcuts(2, cfg.Race.MinSaving)
	if err != nil {
		return answers{}, err
	}
	long, err := gg.CountShortcuts(cfg.Race.MaxCheat, cfg.Race.MinSaving)
	if err != nil {
		return answers{}, err
	}
	log.Debug("shortcuts counted", slog.Int("max_cheat", cfg.Race.MaxCheat), slog.Int("min_saving", cfg.Race.MinSaving))

	return answers{strconv.Itoa(short), strconv.Itoa(long)}, nil
}

func solveKeypad(cfg Config, in io.Reader, log *slog.Logger) (answers, error) {
	var codes []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			codes = append(codes, line)
		}
	}
	if err := sc.Err(); err != nil {
		return answers{}, fmt.Errorf("read codes: %w", err)
	}
	log.Debug("codes read", slog.Int("count", len(codes)))

	short, err := keypad.Complexity(codes, 2)
	if err != nil {
		return answers{}, err
	}
	long, err := keypad.Complexity(codes, cfg.Keypad.Robots)
	if err != nil {
		return answers{}, err
	}

	return answers{strconv.FormatInt(short, 10), strconv.FormatInt(long, 10)}, nil
}

func solveLAN(cfg Config, in io.Reader, log *slog.Logger) (answers, error) {
	n, err := network.Parse(in)
	if err != nil {
		return answers{}, err
	}
	log.Debug("network parsed", slog.Int("nodes", len(n.Nodes())), slog.Int("links", n.LinkCount()))

	return answers{strconv.Itoa(len(n.Triangles(cfg.Network.Prefix))), n.Password()}, nil
}
