package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	quotefix_config "github.com/grovetools/quotefix/config"
	"github.com/grovetools/quotefix/internal/display"
	"github.com/grovetools/quotefix/internal/normalizer"
)

func newCheckCmd() *cobra.Command {
	var format string
	var showZero bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report smart quotes in the target file without changing it",
		Long:  "Count the smart quotes in " + normalizer.TargetPath + " and print what a run would replace. The file is not modified.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			jsonOutput, _ := cmd.Flags().GetBool("json")

			cfg := quotefix_config.Load(configPath)
			if format == "" && jsonOutput {
				format = quotefix_config.FormatJSON
			}
			if format != "" {
				cfg.Report.Format = format
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("show-zero") {
				cfg.Report.ShowZero = showZero
			}

			res, err := normalizer.New().Inspect(normalizer.TargetPath)
			if err != nil {
				return fmt.Errorf("failed to inspect target: %w", err)
			}

			report := display.NewReport(res, cfg.Report.ShowZero)
			return display.Render(cmd.OutOrStdout(), report, cfg.Report.Format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format ('table', 'json', 'yaml' or 'toml'). Overrides config.")
	cmd.Flags().BoolVar(&showZero, "show-zero", false, "Include quote kinds that were not found")

	return cmd
}
