// Package pipeline wires the stages of a full analytics run together:
// ingest, parse, validate/filter, catalog enrichment, aggregation, report
// and enriched-data output. Per-record problems are counted, never fatal;
// any stage-level failure aborts the run with an error naming the stage.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salescan-dev/salescan/internal/catalog"
	"github.com/salescan-dev/salescan/internal/config"
	"github.com/salescan-dev/salescan/internal/enriched"
	"github.com/salescan-dev/salescan/internal/ingest"
	"github.com/salescan-dev/salescan/internal/model"
	"github.com/salescan-dev/salescan/internal/parser"
	"github.com/salescan-dev/salescan/internal/report"
	"github.com/salescan-dev/salescan/internal/runlog"
	"github.com/salescan-dev/salescan/internal/validate"
)

// ProductFetcher supplies the product catalog. Satisfied by catalog.Client.
type ProductFetcher interface {
	FetchAllProducts(ctx context.Context) ([]model.Product, error)
}

// Result summarizes a completed run.
type Result struct {
	RawLines    int
	ParseStats  parser.Stats
	Summary     validate.Summary
	Diagnostics validate.Diagnostics
	Matched     int
	Unmatched   int
	ReportPath  string
}

// Runner executes pipeline runs rooted at a project directory.
type Runner struct {
	root     string
	cfg      *config.Config
	products ProductFetcher

	// Now is the clock used for the report timestamp and the run log.
	// Overridable for deterministic output in tests.
	Now func() time.Time
}

// NewRunner creates a Runner for a project root.
func NewRunner(root string, cfg *config.Config, products ProductFetcher) *Runner {
	return &Runner{root: root, cfg: cfg, products: products, Now: time.Now}
}

// Run executes the full pipeline and returns its Result.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	filter, err := FilterFromConfig(r.cfg.Filters)
	if err != nil {
		return nil, fmt.Errorf("filters: %w", err)
	}

	lines, err := ingest.ReadSalesFile(filepath.Join(r.root, r.cfg.Data.SalesFile))
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	txns, parseStats := parser.Parse(lines)
	valid, summary, diag := validate.Apply(txns, filter)

	products, err := r.products.FetchAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	enrichedTxns := catalog.Enrich(valid, catalog.BuildMapping(products))

	matched := 0
	for _, e := range enrichedTxns {
		if e.APIMatch {
			matched++
		}
	}

	doc := report.Generate(valid, enrichedTxns, report.Options{
		Now:          r.Now,
		TopProducts:  r.cfg.Thresholds.TopProducts,
		TopCustomers: r.cfg.Thresholds.TopCustomers,
	})
	reportPath := filepath.Join(r.root, r.cfg.Report.OutputFile)
	if err := os.MkdirAll(filepath.Dir(reportPath), 0o755); err != nil {
		return nil, fmt.Errorf("report: creating output dir: %w", err)
	}
	if err := report.WriteFile(reportPath, doc); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	enrichedPath := filepath.Join(r.root, r.cfg.Data.EnrichedFile)
	if err := os.MkdirAll(filepath.Dir(enrichedPath), 0o755); err != nil {
		return nil, fmt.Errorf("enriched output: creating output dir: %w", err)
	}
	if err := enriched.SaveFile(enrichedPath, enrichedTxns); err != nil {
		return nil, fmt.Errorf("enriched output: %w", err)
	}

	entry := runlog.Entry{
		Timestamp:  r.Now(),
		InputFile:  r.cfg.Data.SalesFile,
		RawLines:   len(lines),
		Parsed:     len(txns),
		Valid:      summary.FinalCount,
		Matched:    matched,
		ReportPath: r.cfg.Report.OutputFile,
	}
	if err := runlog.Append(r.root, []runlog.Entry{entry}); err != nil {
		return nil, fmt.Errorf("run log: %w", err)
	}

	return &Result{
		RawLines:    len(lines),
		ParseStats:  parseStats,
		Summary:     summary,
		Diagnostics: diag,
		Matched:     matched,
		Unmatched:   len(enrichedTxns) - matched,
		ReportPath:  reportPath,
	}, nil
}

// FilterFromConfig converts the YAML filter settings to a validate.Filter.
// Missing amount strings stay unset bounds.
func FilterFromConfig(fc config.FiltersConfig) (validate.Filter, error) {
	f := validate.Filter{Region: fc.Region}

	if fc.MinAmount != "" {
		d, err := decimal.NewFromString(fc.MinAmount)
		if err != nil {
			return validate.Filter{}, fmt.Errorf("invalid min_amount %q: %w", fc.MinAmount, err)
		}
		f.MinAmount = decimal.NullDecimal{Decimal: d, Valid: true}
	}
	if fc.MaxAmount != "" {
		d, err := decimal.NewFromString(fc.MaxAmount)
		if err != nil {
			return validate.Filter{}, fmt.Errorf("invalid max_amount %q: %w", fc.MaxAmount, err)
		}
		f.MaxAmount = decimal.NullDecimal{Decimal: d, Valid: true}
	}

	return f, nil
}
