// Package cmd - platforms command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"stack-advisor/core/platform"
)

var (
	platformsArch     string
	platformsPersonas []string
)

// platformsCmd represents the platforms command
var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List cloud platforms for an architecture and personas",
	Long: `Filter cloud platforms by architecture compatibility and rank them by
persona relevance.

Examples:
  stack-advisor platforms --architecture serverless
  stack-advisor platforms --architecture microservices --personas startup,devops`,
	Args: cobra.NoArgs,
	RunE: runPlatforms,
}

func init() {
	platformsCmd.Flags().StringVarP(&platformsArch, "architecture", "a", "", "selected architecture")
	platformsCmd.Flags().StringSliceVar(&platformsPersonas, "personas", nil, "personas to rank by")
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	ranked := platform.Select(cat.Platforms(), platformsArch, platformsPersonas)
	if len(ranked) == 0 {
		fmt.Println("No platforms match the selected architecture.")
		return nil
	}

	for _, entry := range ranked {
		if len(platformsPersonas) > 0 {
			fmt.Printf("%s (relevance %d) - %s\n", entry.Platform.Name, entry.Relevance, entry.Platform.BestFor)
		} else {
			fmt.Printf("%s - %s\n", entry.Platform.Name, entry.Platform.BestFor)
		}
	}
	return nil
}
