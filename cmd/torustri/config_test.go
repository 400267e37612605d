package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/torustri/lattice"
)

const scenarioTOML = `
period = [1, 1, 1, 1]
workers = 2

[[cube]]
order = [
    [0, 0, 0, 0], [0, 0, 0, 1], [0, 0, 1, 0], [0, 0, 1, 1],
    [0, 1, 0, 0], [0, 1, 0, 1], [0, 1, 1, 0], [0, 1, 1, 1],
    [1, 0, 0, 0], [1, 0, 0, 1], [1, 0, 1, 0], [1, 0, 1, 1],
    [1, 1, 0, 0], [1, 1, 0, 1], [1, 1, 1, 0], [1, 1, 1, 1],
]
`

func loadScenario(t *testing.T, body string) {
	t.Helper()
	viper.Reset()
	path := filepath.Join(t.TempDir(), "torustri.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())
}

func TestLoadConfig_FullScenario(t *testing.T) {
	loadScenario(t, scenarioTOML)

	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1, 1}, cfg.Period)
	require.Equal(t, 2, cfg.Workers)
	require.Empty(t, cfg.Generators)
	require.Len(t, cfg.Cubes, 1)

	space, err := cfg.space()
	require.NoError(t, err)
	require.Equal(t, [lattice.Dim]int{1, 1, 1, 1}, space.Periods())

	group, err := cfg.group(space)
	require.NoError(t, err)
	require.Len(t, group.Elements(), 1)

	seeds, err := cfg.seeds()
	require.NoError(t, err)
	require.Len(t, seeds, 24)
}

func TestLoadConfig_RequiresCubes(t *testing.T) {
	loadScenario(t, "period = [1, 1, 1, 1]\n")

	_, err := loadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "cube")
}

func TestConfig_RejectsMalformedSections(t *testing.T) {
	loadScenario(t, scenarioTOML)
	cfg, err := loadConfig()
	require.NoError(t, err)

	short := cfg
	short.Period = []int{1, 1}
	_, err = short.space()
	require.Error(t, err)

	badGen := cfg
	badGen.Generators = []generatorConfig{{
		Linear: [][]int{{1, 0, 0, 0}},
		Offset: []int{0, 0, 0, 0},
	}}
	space, err := cfg.space()
	require.NoError(t, err)
	_, err = badGen.group(space)
	require.Error(t, err)

	badCube := cfg
	badCube.Cubes = []cubeConfig{{Order: [][]int{{0, 0, 0, 0}}}}
	_, err = badCube.seeds()
	require.Error(t, err)
}
