// Package cmd provides the CLI commands for stack-advisor.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stack-advisor/core/catalog"
	"stack-advisor/internal/config"
	"stack-advisor/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "stack-advisor",
	Short: "Audit and assemble a project technology stack",
	Long: `stack-advisor matches a project description against catalogs of tools
and cloud products, then produces ranked recommendations, a completeness
score, and compliance gap reports.

Examples:
  stack-advisor analyze --team-size 4 --expertise beginner
  stack-advisor analyze ./infrastructure --compliance soc2
  stack-advisor resolve "Database" database --platform aws
  stack-advisor platforms --architecture serverless --personas startup`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.stack-advisor.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog returns the configured dataset, falling back to the
// built-in catalog.
func loadCatalog() (*catalog.Catalog, error) {
	cfg := config.Get()
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.Catalog.Path)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("stack-advisor version 0.1.0")
	},
}
