// Package cmd - catalog and sessions commands
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// catalogCmd lists the catalog's categories and tools
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List stack categories and their tool catalogs",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	for _, category := range cat.Categories() {
		fmt.Printf("%s [%s]\n", category.Name, category.Priority)
		if len(category.RequiredForCompliance) > 0 {
			fmt.Printf("  required for: %s\n", strings.Join(category.RequiredForCompliance, ", "))
		}
		tools, ok := cat.Tools(category.ID)
		if !ok {
			fmt.Println("  (no dedicated catalog)")
			continue
		}
		for _, tool := range tools {
			fmt.Printf("  - %s (%s) - %s\n", tool.Name, tool.Complexity, tool.Pricing)
		}
	}
	return nil
}

// sessionsCmd lists saved sessions
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List saved analysis sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessions,
}

func runSessions(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	sessions, err := store.List()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No saved sessions.")
		return nil
	}

	for _, session := range sessions {
		label := session.Name
		if label == "" {
			label = "(unnamed)"
		}
		score := "-"
		if session.Report != nil {
			score = fmt.Sprintf("%d%%", session.Report.CompletenessScore)
		}
		fmt.Printf("%s  %s  completeness %s  %s\n",
			session.ID, label, score, session.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
