package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"shuho/internal/core"
	"shuho/internal/ingest"
	"shuho/internal/logger"
	"shuho/internal/report"
)

// NewAnalyzeCmd creates the analyze command for inspecting a CSV export
// without generating a report.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <input.csv>",
		Short: "Analyze a community activity CSV export",
		Long: `Analyze a community activity CSV export and print a data overview:
community name, post/user/channel counts, thread counts per area and the
date range the export covers.

Useful for checking an export before generating a report.

Examples:
  # Inspect an export
  shuho analyze activity.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0])
		},
	}

	return cmd
}

func runAnalyze(inputFile string) error {
	log := logger.Get()
	log.Info().Str("input_file", inputFile).Msg("analyzing CSV export")

	result, err := ingest.ParseFile(inputFile)
	if err != nil {
		return err
	}

	generalCount := 0
	paidCount := 0
	for _, t := range result.Threads {
		if t.Area == core.AreaPaid {
			paidCount++
		} else {
			generalCount++
		}
	}

	fmt.Println("📊 データ概要")
	fmt.Printf("   コミュニティ名: %s\n", result.ServerName)
	fmt.Printf("   総投稿数: %d件\n", result.Stats.PostCount)
	fmt.Printf("   投稿ユーザー数: %d人\n", result.Stats.UserCount)
	fmt.Printf("   チャンネル数: %d\n", result.Stats.ChannelCount)
	fmt.Printf("   スレッド数: %d (一般: %d / 有料: %d)\n", len(result.Threads), generalCount, paidCount)
	fmt.Printf("   データ期間: %s\n", report.FormatJapaneseDateRange(result.DateRange.Min, result.DateRange.Max))

	return nil
}
