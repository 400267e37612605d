package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/torustri/builder"
	"github.com/katalvlaran/torustri/cells"
	"github.com/katalvlaran/torustri/delta"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build, validate and export the configured triangulation",
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	buildCmd.Flags().String("collection", "quotient", "collection to export: raw, torus or quotient")
	buildCmd.Flags().Int("workers", 0, "override the scenario worker count")
}

// runScenario assembles and fills a builder from the loaded scenario.
func runScenario(workers int) (*builder.Builder, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	space, err := cfg.space()
	if err != nil {
		return nil, err
	}
	group, err := cfg.group(space)
	if err != nil {
		return nil, err
	}
	seeds, err := cfg.seeds()
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = cfg.Workers
	}
	if workers < 1 {
		workers = 1
	}
	b, err := builder.New(space, group, builder.WithWorkers(workers))
	if err != nil {
		return nil, err
	}
	if err := b.AddAll(seeds); err != nil {
		return nil, err
	}
	return b, nil
}

func pickCollection(b *builder.Builder, name string) (*cells.Collection, error) {
	switch name {
	case "raw":
		return b.Raw(), nil
	case "torus":
		return b.Torus(), nil
	case "quotient":
		return b.Quotient(), nil
	}
	return nil, fmt.Errorf("torustri: unknown collection %q", name)
}

func runBuild(cmd *cobra.Command, args []string) error {
	workers, _ := cmd.Flags().GetInt("workers")
	b, err := runScenario(workers)
	if err != nil {
		return err
	}

	report := b.Validate()
	if !report.OK() {
		fmt.Fprintln(cmd.ErrOrStderr(), report.String())
		return fmt.Errorf("torustri: validation failed, refusing to export")
	}

	name, _ := cmd.Flags().GetString("collection")
	coll, err := pickCollection(b, name)
	if err != nil {
		return err
	}
	exported, err := delta.Export(coll, b.CanonFor(coll))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("torustri: create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(exported)
}
