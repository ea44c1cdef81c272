package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/salescan-dev/salescan/internal/analytics"
	"github.com/salescan-dev/salescan/internal/config"
	"github.com/salescan-dev/salescan/internal/ingest"
	"github.com/salescan-dev/salescan/internal/parser"
	"github.com/salescan-dev/salescan/internal/pipeline"
	"github.com/salescan-dev/salescan/internal/validate"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [directory]",
		Short: "Parse and validate the sales feed without fetching or reporting",
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

			return runCheck(cmd, absDir)
		},
	}

	return cmd
}

func runCheck(cmd *cobra.Command, dir string) error {
	cfg, err := config.Load(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return err
	}

	filter, err := pipeline.FilterFromConfig(cfg.Filters)
	if err != nil {
		return fmt.Errorf("filters: %w", err)
	}

	lines, err := ingest.ReadSalesFile(filepath.Join(dir, cfg.Data.SalesFile))
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}

	txns, parseStats := parser.Parse(lines)
	valid, summary, diag := validate.Apply(txns, filter)

	out := cmd.OutOrStdout()

	counters := table.NewWriter()
	counters.SetOutputMirror(out)
	counters.SetStyle(table.StyleLight)
	counters.SetTitle("Validation Summary")
	counters.AppendHeader(table.Row{"Counter", "Value"})
	counters.AppendRows([]table.Row{
		{"Raw lines", len(lines)},
		{"Dropped (field count)", parseStats.BadFieldCount},
		{"Dropped (bad number)", parseStats.BadNumber},
		{"Invalid", summary.Invalid},
		{"Filtered by region", summary.FilteredByRegion},
		{"Filtered by amount", summary.FilteredByAmount},
		{"Valid", summary.FinalCount},
	})
	counters.Render()

	if len(diag.Regions) > 0 {
		fmt.Fprintf(out, "Regions seen: %v\n", diag.Regions)
		fmt.Fprintf(out, "Amount range: %s to %s\n",
			diag.MinAmount.StringFixed(2), diag.MaxAmount.StringFixed(2))
	}

	writePerformerTable(out, "Low Performers", analytics.LowPerformers(valid, cfg.Thresholds.LowQuantity))
	writePerformerTable(out, "High Performers", analytics.HighPerformers(valid, cfg.Thresholds.HighQuantity))

	return nil
}

func writePerformerTable(out io.Writer, title string, stats []analytics.ProductStat) {
	if len(stats) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Product", "Quantity", "Revenue"})
	for _, s := range stats {
		t.AppendRow(table.Row{s.Name, s.TotalQuantity, s.TotalRevenue.StringFixed(2)})
	}
	t.Render()
}
