package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Build the configured triangulation and print its validation report",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().Int("workers", 0, "override the scenario worker count")
}

func runValidate(cmd *cobra.Command, args []string) error {
	workers, _ := cmd.Flags().GetInt("workers")
	b, err := runScenario(workers)
	if err != nil {
		return err
	}

	report := b.Validate()
	fmt.Fprintln(cmd.OutOrStdout(), report.String())
	for _, name := range []string{"raw", "torus", "quotient"} {
		coll, _ := pickCollection(b, name)
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d vertices, %d cells\n",
			name, len(coll.Vertices()), coll.Len())
	}
	if !report.OK() {
		return fmt.Errorf("torustri: validation failed")
	}
	return nil
}
