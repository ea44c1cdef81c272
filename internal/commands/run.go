package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/salescan-dev/salescan/internal/catalog"
	"github.com/salescan-dev/salescan/internal/config"
	"github.com/salescan-dev/salescan/internal/pipeline"
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [directory]",
		Short: "Run the full analytics pipeline and write the report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runPipeline(cmd, absDir)
		},
	}

	return cmd
}

func runPipeline(cmd *cobra.Command, dir string) error {
	cfg, err := config.Load(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return err
	}

	client := catalog.NewClient(cfg.Catalog.BaseURL,
		time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second)

	runner := pipeline.NewRunner(dir, cfg, client)
	result, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Read %d raw records\n", color.CyanString("•"), result.RawLines)
	fmt.Fprintf(out, "%s Parsed %d transactions (%d dropped)\n", color.CyanString("•"),
		result.ParseStats.Kept(), result.ParseStats.BadFieldCount+result.ParseStats.BadNumber)
	fmt.Fprintf(out, "%s Validated %d transactions (%d invalid, %d filtered)\n",
		color.CyanString("•"), result.Summary.FinalCount, result.Summary.Invalid,
		result.Summary.FilteredByRegion+result.Summary.FilteredByAmount)
	fmt.Fprintf(out, "%s Enriched %d of %d from the catalog\n", color.CyanString("•"),
		result.Matched, result.Matched+result.Unmatched)
	fmt.Fprintf(out, "%s Report written to %s\n", color.GreenString("✓"), result.ReportPath)
	return nil
}
