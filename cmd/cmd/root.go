package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shuho/cmd/handlers"
	"shuho/internal/config"
	"shuho/internal/logger"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shuho",
	Short: "Shuho turns a community chat CSV export into a weekly report",
	Long: `Shuho ingests a CSV export of community chat activity, reconstructs
conversation threads, ranks them by engagement and produces a formatted
weekly report for the general and paid areas, with topic titles and
summaries generated by Gemini.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger.SetDebug(cfg.App.Debug)
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.shuho.yaml)")

	rootCmd.AddCommand(handlers.NewAnalyzeCmd())
	rootCmd.AddCommand(handlers.NewReportCmd())
}
