// Package cmd - analyze command
package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"stack-advisor/adapters/storage"
	"stack-advisor/adapters/terraform"
	"stack-advisor/core/gap"
	"stack-advisor/core/output"
	"stack-advisor/core/types"
	"stack-advisor/internal/config"
	"stack-advisor/internal/errors"
	"stack-advisor/internal/logging"
)

var (
	analyzeFormat     string
	analyzeContext    string
	analyzeTeamSize   int
	analyzeIndustry   string
	analyzeExpertise  string
	analyzeCompliance []string
	analyzeSave       bool
	analyzeSession    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze a project's stack and report gaps",
	Long: `Build a project context from flags (or a context file), optionally
detect existing technologies from Terraform files in the given path,
and produce a stack gap report.

Examples:
  stack-advisor analyze --team-size 4 --expertise beginner
  stack-advisor analyze ./infrastructure --compliance soc2 --industry fintech
  stack-advisor analyze --context context.json --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "output format (cli, json, markdown)")
	analyzeCmd.Flags().StringVarP(&analyzeContext, "context", "c", "", "project context JSON file")
	analyzeCmd.Flags().IntVar(&analyzeTeamSize, "team-size", 0, "team headcount")
	analyzeCmd.Flags().StringVar(&analyzeIndustry, "industry", "", "project industry (e.g., fintech)")
	analyzeCmd.Flags().StringVar(&analyzeExpertise, "expertise", "", "team expertise (beginner, intermediate, advanced)")
	analyzeCmd.Flags().StringSliceVar(&analyzeCompliance, "compliance", nil, "required compliance frameworks")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "save the context and report as a session")
	analyzeCmd.Flags().StringVar(&analyzeSession, "session", "", "load the context from a saved session")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := logging.Named("analyze")

	ctx, err := buildContext(args)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	report := gap.New(cat).Analyze(ctx)
	log.Sugar().Debugw("analysis complete",
		"completeness", report.CompletenessScore,
		"missing", len(report.MissingCategories))

	if analyzeSave {
		if err := saveSession(ctx, &report); err != nil {
			return err
		}
	}

	formatter, err := output.New(resolveFormat(analyzeFormat))
	if err != nil {
		return err
	}
	return formatter.RenderReport(os.Stdout, &report)
}

// buildContext assembles the project context from the session, the
// context file, flags, and Terraform detection, in that order.
func buildContext(args []string) (types.ProjectContext, error) {
	var ctx types.ProjectContext

	if analyzeSession != "" {
		store, err := openStore()
		if err != nil {
			return ctx, err
		}
		defer store.Close()
		session, err := store.Get(analyzeSession)
		if err != nil {
			return ctx, err
		}
		ctx = session.Context
	}

	if analyzeContext != "" {
		data, err := os.ReadFile(analyzeContext)
		if err != nil {
			return ctx, errors.Wrapf(errors.TypeInput, err, "reading context file %s", analyzeContext)
		}
		if err := json.Unmarshal(data, &ctx); err != nil {
			return ctx, errors.Wrap(errors.TypeInput, "invalid context file", err)
		}
	}

	if analyzeTeamSize != 0 {
		ctx.TeamSize = analyzeTeamSize
	}
	if analyzeIndustry != "" {
		ctx.Industry = analyzeIndustry
	}
	if analyzeExpertise != "" {
		ctx.Expertise = types.Level(analyzeExpertise)
	}
	if len(analyzeCompliance) > 0 {
		ctx.ComplianceRequirements = analyzeCompliance
	}

	if len(args) == 1 {
		detected, err := terraform.NewDetector().Detect(args[0])
		if err != nil {
			return ctx, err
		}
		for _, warning := range detected.Warnings {
			logging.Named("terraform").Sugar().Warnw("skipping unparseable file", "warning", warning)
		}
		if ctx.ExistingStack == nil {
			ctx.ExistingStack = make(map[string][]string)
		}
		for categoryID, technologies := range detected.Stack {
			ctx.ExistingStack[categoryID] = append(ctx.ExistingStack[categoryID], technologies...)
		}
	}

	return ctx, nil
}

func openStore() (storage.Store, error) {
	cfg := config.Get()
	return storage.Open(storage.Backend(cfg.Storage.Backend), cfg.Storage.Directory)
}

func saveSession(ctx types.ProjectContext, report *types.StackGapReport) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	session := &storage.Session{ID: analyzeSession, Context: ctx, Report: report}
	if err := store.Save(session); err != nil {
		return err
	}
	logging.Named("storage").Sugar().Infow("session saved", "id", session.ID)
	return nil
}

func resolveFormat(flag string) output.Format {
	if flag != "" {
		return output.Format(flag)
	}
	return output.Format(config.Get().Output.DefaultFormat)
}
