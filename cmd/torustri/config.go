package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/torustri/cells"
	"github.com/katalvlaran/torustri/cubetri"
	"github.com/katalvlaran/torustri/lattice"
	"github.com/katalvlaran/torustri/symmetry"
)

// generatorConfig is one affine symmetry in scenario form: a 4x4 integer
// matrix and a translation part.
type generatorConfig struct {
	Linear [][]int `mapstructure:"linear"`
	Offset []int   `mapstructure:"offset"`
}

// cubeConfig is one seed cube, given as its 16 corners in triangulation
// order. The first corner is the cube offset.
type cubeConfig struct {
	Order [][]int `mapstructure:"order"`
}

// Config is a full scenario: the lattice periods, the symmetry generators
// and the seed cubes. Values come from the TOML scenario file and
// TORUSTRI_* environment variables.
type Config struct {
	Period     []int             `mapstructure:"period"`
	Workers    int               `mapstructure:"workers"`
	Generators []generatorConfig `mapstructure:"generator"`
	Cubes      []cubeConfig      `mapstructure:"cube"`
}

// loadConfig unmarshals the scenario read by viper.
func loadConfig() (Config, error) {
	viper.SetDefault("workers", 1)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("torustri: parse scenario: %w", err)
	}
	if len(cfg.Cubes) == 0 {
		return Config{}, fmt.Errorf("torustri: scenario defines no [[cube]] sections")
	}
	return cfg, nil
}

func asPoint(raw []int, what string) (lattice.Point, error) {
	var p lattice.Point
	if len(raw) != lattice.Dim {
		return p, fmt.Errorf("torustri: %s needs %d entries, got %d", what, lattice.Dim, len(raw))
	}
	copy(p[:], raw)
	return p, nil
}

// space builds the periodic lattice from the scenario periods.
func (c Config) space() (*lattice.Space, error) {
	period, err := asPoint(c.Period, "period")
	if err != nil {
		return nil, err
	}
	return lattice.NewSpace(period)
}

// group assembles the symmetry group generated by the scenario generators.
// A scenario without [[generator]] sections yields the trivial group.
func (c Config) group(space *lattice.Space) (*symmetry.Group, error) {
	gens := make([]symmetry.Map, 0, len(c.Generators))
	for i, g := range c.Generators {
		m := symmetry.Identity()
		if len(g.Linear) != lattice.Dim {
			return nil, fmt.Errorf("torustri: generator %d needs %d linear rows, got %d",
				i, lattice.Dim, len(g.Linear))
		}
		for r, row := range g.Linear {
			if len(row) != lattice.Dim {
				return nil, fmt.Errorf("torustri: generator %d row %d needs %d entries, got %d",
					i, r, lattice.Dim, len(row))
			}
			copy(m.Linear[r][:], row)
		}
		off, err := asPoint(g.Offset, fmt.Sprintf("generator %d offset", i))
		if err != nil {
			return nil, err
		}
		m.Offset = off
		gens = append(gens, m)
	}
	return symmetry.NewGroup(space, gens, symmetry.DefaultGroupOptions())
}

// seeds triangulates every scenario cube and collects the top simplices to
// feed the builder.
func (c Config) seeds() ([]cells.Simplex, error) {
	var out []cells.Simplex
	for i, cube := range c.Cubes {
		corners := make([]lattice.Point, 0, cubetri.NumCorners)
		for j, raw := range cube.Order {
			p, err := asPoint(raw, fmt.Sprintf("cube %d corner %d", i, j))
			if err != nil {
				return nil, err
			}
			corners = append(corners, p)
		}
		tri, err := cubetri.New(corners)
		if err != nil {
			return nil, fmt.Errorf("torustri: cube %d: %w", i, err)
		}
		out = append(out, tri.Simplices()...)
	}
	return out, nil
}
