package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 71, cfg.RAM.Size)
	assert.Equal(t, 1000, cfg.Maze.TurnCost)
	assert.Equal(t, 25, cfg.Keypad.Robots)
}

// TestLoadConfig_PartialOverride keeps defaults for keys the file omits.
func TestLoadConfig_PartialOverride(t *testing.T) {
	path := writeTemp(t, "config.yaml", "race:\n  min_saving: 50\nnetwork:\n  prefix: k\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Race.MinSaving)
	assert.Equal(t, 20, cfg.Race.MaxCheat)
	assert.Equal(t, "k", cfg.Network.Prefix)
	assert.Equal(t, DefaultConfig().Maze, cfg.Maze)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeTemp(t, "bad.yaml", "ram: [1, 2\n"))
	assert.Error(t, err)

	cases := map[string]string{
		"maze":   "maze:\n  step_cost: -1\n",
		"size":   "ram:\n  size: 0\n",
		"bytes":  "ram:\n  bytes: -3\n",
		"cheat":  "race:\n  max_cheat: -1\n",
		"robots": "keypad:\n  robots: -2\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeTemp(t, "config.yaml", body))
			assert.ErrorIs(t, err, errBadConfig)
		})
	}
}
