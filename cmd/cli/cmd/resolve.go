// Package cmd - resolve and products commands
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stack-advisor/core/matching"
	"stack-advisor/core/output"
	"stack-advisor/internal/errors"
	"stack-advisor/internal/logging"
)

var (
	resolvePlatform string
	resolveFmt      string
	productsArch    string
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <service-name> <service-category>",
	Short: "Resolve an architecture service to a cloud product",
	Long: `Look up a platform's product equivalent for an abstract architecture
service, with ranked alternatives from the same subcategory.

Examples:
  stack-advisor resolve "Database" database --platform aws
  stack-advisor resolve "Message Queue" messaging --platform gcp --format json`,
	Args: cobra.ExactArgs(2),
	RunE: runResolve,
}

// productsCmd lists a platform's products grouped for display
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List a platform's products grouped by category and subcategory",
	Args:  cobra.NoArgs,
	RunE:  runProducts,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolvePlatform, "platform", "p", "aws", "cloud platform identifier")
	resolveCmd.Flags().StringVarP(&resolveFmt, "format", "f", "", "output format (cli, json, markdown)")

	productsCmd.Flags().StringVarP(&resolvePlatform, "platform", "p", "aws", "cloud platform identifier")
	productsCmd.Flags().StringVarP(&productsArch, "architecture", "a", "", "filter products by architecture")
}

func runResolve(cmd *cobra.Command, args []string) error {
	serviceName, serviceCategory := args[0], args[1]
	log := logging.Named("resolve")

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	platform, found := cat.Platform(resolvePlatform)
	if !found {
		return errors.NotFound("platform", resolvePlatform)
	}

	resolution := matching.ResolveService(platform, serviceName, serviceCategory)

	// The two non-direct outcomes render identically but are logged
	// apart for diagnostics.
	switch resolution.Kind {
	case matching.OutcomeNoMapping:
		log.Sugar().Debugw("no mapping defined", "service", serviceName, "category", serviceCategory)
	case matching.OutcomeNoEquivalent:
		log.Sugar().Debugw("mapping declares no equivalent", "service", serviceName, "notes", resolution.Notes)
	}

	formatter, err := output.New(resolveFormat(resolveFmt))
	if err != nil {
		return err
	}
	return formatter.RenderResolution(os.Stdout, serviceName, resolution)
}

func runProducts(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	platform, found := cat.Platform(resolvePlatform)
	if !found {
		return errors.NotFound("platform", resolvePlatform)
	}

	for _, group := range matching.GroupProductsBySubcategory(platform, productsArch) {
		fmt.Printf("%s\n", group.Category)
		for _, sub := range group.Subcategories {
			fmt.Printf("  %s\n", sub.Subcategory)
			for _, product := range sub.Products {
				badge := ""
				if product.PopularityRank == 1 {
					badge = " *"
				}
				fmt.Printf("    %s%s - %s\n", product.Name, badge, product.Pricing)
			}
		}
	}
	return nil
}
