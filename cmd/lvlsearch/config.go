package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// errBadConfig marks a configuration file that parses but makes no sense.
var errBadConfig = errors.New("lvlsearch: invalid configuration")

// Config carries the per-solver parameters. Every field has a default.
type Config struct {
	Maze    MazeConfig    `yaml:"maze"`
	RAM     RAMConfig     `yaml:"ram"`
	Race    RaceConfig    `yaml:"race"`
	Keypad  KeypadConfig  `yaml:"keypad"`
	Network NetworkConfig `yaml:"network"`
}

// MazeConfig prices moves through the reindeer maze.
type MazeConfig struct {
	StepCost int `yaml:"step_cost"`
	TurnCost int `yaml:"turn_cost"`
}

// RAMConfig describes the falling-bytes grid. Coordinates run 0..Size-1.
type RAMConfig struct {
	Size  int `yaml:"size"`
	Bytes int `yaml:"bytes"`
}

// RaceConfig bounds the shortcut search. Part one always jumps 2 cells.
type RaceConfig struct {
	MaxCheat  int `yaml:"max_cheat"`
	MinSaving int `yaml:"min_saving"`
}

// KeypadConfig sets the directional robot count for part two.
type KeypadConfig struct {
	Robots int `yaml:"robots"`
}

// NetworkConfig filters triangles by node prefix.
type NetworkConfig struct {
	Prefix string `yaml:"prefix"`
}

// DefaultConfig returns the parameters of the original puzzles.
func DefaultConfig() Config {
	return Config{
		Maze:    MazeConfig{StepCost: 1, TurnCost: 1000},
		RAM:     RAMConfig{Size: 71, Bytes: 1024},
		Race:    RaceConfig{MaxCheat: 20, MinSaving: 100},
		Keypad:  KeypadConfig{Robots: 25},
		Network: NetworkConfig{Prefix: "t"},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys absent from the
// file keep their defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects values no solver can run with.
func (c Config) Validate() error {
	switch {
	case c.Maze.StepCost < 0 || c.Maze.TurnCost < 0:
		return fmt.Errorf("%w: maze costs must be non-negative", errBadConfig)
	case c.RAM.Size <= 0:
		return fmt.Errorf("%w: ram.size must be positive", errBadConfig)
	case c.RAM.Bytes < 0:
		return fmt.Errorf("%w: ram.bytes must be non-negative", errBadConfig)
	case c.Race.MaxCheat < 0:
		return fmt.Errorf("%w: race.max_cheat must be non-negative", errBadConfig)
	case c.Keypad.Robots < 0:
		return fmt.Errorf("%w: keypad.robots must be non-negative", errBadConfig)
	}
	return nil
}
