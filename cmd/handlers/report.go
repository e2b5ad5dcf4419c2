package handlers

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"shuho/internal/config"
	"shuho/internal/core"
	"shuho/internal/ingest"
	"shuho/internal/llm"
	"shuho/internal/logger"
	"shuho/internal/report"
	"shuho/internal/summarize"
)

const dateFlagLayout = "2006-01-02"

// NewReportCmd creates the report command, the full CSV-to-weekly-report
// pipeline.
func NewReportCmd() *cobra.Command {
	var (
		startFlag  string
		endFlag    string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "report <input.csv>",
		Short: "Generate a weekly report from a community activity CSV export",
		Long: `Generate a weekly report from a community activity CSV export.

This command:
  • Parses and validates the CSV export
  • Reconstructs conversation threads and scores their engagement
  • Selects the top topics per area for the report window
  • Generates topic titles and summaries with Gemini
  • Renders the formatted weekly report text

The report window defaults to the last 7 days of data in the export.

Examples:
  # Report over the default window, printed to stdout
  shuho report activity.csv

  # Explicit window, written to a file
  shuho report activity.csv --start 2025-07-01 --end 2025-07-07 --output weekly.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0], startFlag, endFlag, outputFile)
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "report window start date (YYYY-MM-DD, default: 7 days before end)")
	cmd.Flags().StringVar(&endFlag, "end", "", "report window end date (YYYY-MM-DD, default: newest post in the export)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the report to a file instead of stdout")

	return cmd
}

func runReport(cmd *cobra.Command, inputFile, startFlag, endFlag, outputFile string) error {
	startTime := time.Now()
	log := logger.Get()
	cfg := config.Get()

	log.Info().Str("input_file", inputFile).Msg("starting weekly report generation")

	fmt.Printf("📄 Parsing %s...\n", inputFile)
	result, err := ingest.ParseFile(inputFile)
	if err != nil {
		return err
	}
	fmt.Printf("   ✓ %d posts, %d threads (%s)\n", result.Stats.PostCount, len(result.Threads), result.ServerName)

	start, end, err := resolveWindow(result, startFlag, endFlag)
	if err != nil {
		return err
	}
	fmt.Printf("🗓  Report window: %s\n", report.FormatJapaneseDateRange(start, end))

	fmt.Printf("🔧 Initializing AI client (model: %s)...\n", cfg.AI.Gemini.Model)
	client, err := llm.NewClient(cmd.Context(), cfg.AI.Gemini.APIKey, cfg.AI.Gemini.Model)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	enricher := summarize.NewEnricher(client, cfg.AI.Gemini.EnrichTimeout())
	generator := report.NewGenerator(enricher, cfg.Report.TopicLimit)

	fmt.Println("✨ Generating topic titles and summaries...")
	text, err := generator.Generate(cmd.Context(), result, start, end)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write report file %s: %w", outputFile, err)
		}
		fmt.Printf("✅ Report written to %s (%s)\n", outputFile, time.Since(startTime).Round(time.Millisecond))
		return nil
	}

	fmt.Println()
	fmt.Println(text)
	return nil
}

// resolveWindow turns the --start/--end flags into the report window,
// defaulting to the last 7 days of data in the export.
func resolveWindow(result *core.AnalysisResult, startFlag, endFlag string) (time.Time, time.Time, error) {
	start, end := report.DefaultWindow(result)

	if endFlag != "" {
		parsed, err := time.ParseInLocation(dateFlagLayout, endFlag, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --end date %q: %w", endFlag, err)
		}
		end = parsed
	}
	if startFlag != "" {
		parsed, err := time.ParseInLocation(dateFlagLayout, startFlag, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --start date %q: %w", startFlag, err)
		}
		start = parsed
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("report window end %s is before start %s", end.Format(dateFlagLayout), start.Format(dateFlagLayout))
	}

	return start, end, nil
}
