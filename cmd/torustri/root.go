package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "torustri",
	Short: "Δ-complex builder for symmetric 4-torus triangulations",
	Long: "torustri reads a scenario file describing a periodic lattice, a set of\n" +
		"affine symmetry generators and one ordered triangulation per seed cube,\n" +
		"then builds the raw, torus and quotient cell collections, validates them\n" +
		"and exports the result as a JSON Δ-complex.",
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "scenario file (default torustri.toml)")
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("torustri")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("TORUSTRI")
	viper.AutomaticEnv()

	// A missing scenario file is reported later, when a command needs it.
	_ = viper.ReadInConfig()
}
