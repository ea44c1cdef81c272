// Package report renders the analytics views as a fixed-section text
// document. Section order and formatting are part of the contract: the same
// transactions and clock always produce byte-identical output.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/salescan-dev/salescan/internal/analytics"
	"github.com/salescan-dev/salescan/internal/model"
)

const ruleWidth = 80

// Options controls rendering. The zero value uses time.Now and the default
// top-5 lists.
type Options struct {
	Now          func() time.Time
	TopProducts  int
	TopCustomers int
}

const timestampFormat = "2006-01-02 15:04:05"

// Generate renders the full report for the valid and enriched transaction
// sets.
func Generate(valid []model.Transaction, enriched []model.EnrichedTransaction, opts Options) string {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	topProducts := opts.TopProducts
	if topProducts <= 0 {
		topProducts = 5
	}
	topCustomers := opts.TopCustomers
	if topCustomers <= 0 {
		topCustomers = 5
	}

	var b strings.Builder

	writeTitle(&b, now())
	fmt.Fprintf(&b, "Records analyzed: %d\n", len(valid))

	writeOverallSummary(&b, valid)
	writeRegionPerformance(&b, valid)
	writeTopProducts(&b, valid, topProducts)
	writeTopCustomers(&b, valid, topCustomers)
	writeDailyTrend(&b, valid)
	writeEnrichmentSummary(&b, enriched)

	return b.String()
}

func writeTitle(b *strings.Builder, generated time.Time) {
	rule := strings.Repeat("=", ruleWidth)
	title := "SALES ANALYTICS REPORT"
	pad := (ruleWidth - len(title)) / 2

	fmt.Fprintln(b, rule)
	fmt.Fprintln(b, strings.Repeat(" ", pad)+title)
	fmt.Fprintln(b, rule)
	fmt.Fprintf(b, "Generated:        %s\n", generated.Format(timestampFormat))
}

func writeSectionHeader(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s\n%s\n", title, strings.Repeat("-", ruleWidth))
}

func writeOverallSummary(b *strings.Builder, valid []model.Transaction) {
	writeSectionHeader(b, "OVERALL SUMMARY")

	total := analytics.TotalRevenue(valid)
	avg := decimal.Zero
	if len(valid) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(valid)))).Round(2)
	}

	fmt.Fprintf(b, "Total Revenue:       %s\n", money(total))
	fmt.Fprintf(b, "Transaction Count:   %d\n", len(valid))
	fmt.Fprintf(b, "Average Order Value: %s\n", money(avg))
	fmt.Fprintf(b, "Date Range:          %s\n", dateRange(valid))
}

func writeRegionPerformance(b *strings.Builder, valid []model.Transaction) {
	writeSectionHeader(b, "REGION-WISE PERFORMANCE")

	stats := analytics.RegionSales(valid)
	if len(stats) == 0 {
		fmt.Fprintln(b, "No transactions.")
		return
	}
	for _, s := range stats {
		fmt.Fprintf(b, "%-16s %14s  %6s%%  %4d transactions\n",
			s.Region, money(s.TotalSales), s.Percentage.StringFixed(2), s.TransactionCount)
	}
}

func writeTopProducts(b *strings.Builder, valid []model.Transaction, n int) {
	writeSectionHeader(b, "TOP PRODUCTS")

	stats := analytics.TopProducts(valid, n)
	if len(stats) == 0 {
		fmt.Fprintln(b, "No transactions.")
		return
	}
	for i, s := range stats {
		fmt.Fprintf(b, "%2d. %-28s %6d units %14s\n",
			i+1, s.Name, s.TotalQuantity, money(s.TotalRevenue))
	}
}

func writeTopCustomers(b *strings.Builder, valid []model.Transaction, n int) {
	writeSectionHeader(b, "TOP CUSTOMERS")

	stats := analytics.CustomerAnalysis(valid)
	if len(stats) == 0 {
		fmt.Fprintln(b, "No transactions.")
		return
	}
	if n > len(stats) {
		n = len(stats)
	}
	for i, s := range stats[:n] {
		fmt.Fprintf(b, "%2d. %-12s %14s spent  %4d orders  avg %s\n",
			i+1, s.CustomerID, money(s.TotalSpent), s.PurchaseCount, money(s.AvgOrderValue))
	}
}

func writeDailyTrend(b *strings.Builder, valid []model.Transaction) {
	writeSectionHeader(b, "DAILY SALES TREND")

	stats := analytics.DailyTrend(valid)
	if len(stats) == 0 {
		fmt.Fprintln(b, "No transactions.")
		return
	}
	for _, s := range stats {
		fmt.Fprintf(b, "%s %14s  %4d transactions  %4d customers\n",
			s.Date, money(s.Revenue), s.TransactionCount, s.UniqueCustomers)
	}

	if peak, ok := analytics.PeakDay(valid); ok {
		fmt.Fprintf(b, "Peak day: %s with %s across %d transactions\n",
			peak.Date, money(peak.Revenue), peak.TransactionCount)
	}
}

func writeEnrichmentSummary(b *strings.Builder, enriched []model.EnrichedTransaction) {
	writeSectionHeader(b, "API ENRICHMENT SUMMARY")

	matched := 0
	var unmatchedIDs []string
	for _, e := range enriched {
		if e.APIMatch {
			matched++
		} else {
			unmatchedIDs = append(unmatchedIDs, e.TransactionID)
		}
	}

	fmt.Fprintf(b, "Matched:   %d\n", matched)
	fmt.Fprintf(b, "Unmatched: %d\n", len(unmatchedIDs))
	if len(unmatchedIDs) > 0 {
		fmt.Fprintf(b, "Unmatched transaction IDs: %s\n", strings.Join(unmatchedIDs, ", "))
	}
}

// money renders a currency figure with thousands separators and exactly two
// decimal places, e.g. $1,234.50.
func money(d decimal.Decimal) string {
	return "$" + humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// dateRange returns the lexicographic min/max dates, which for ISO dates is
// the chronological range.
func dateRange(valid []model.Transaction) string {
	if len(valid) == 0 {
		return "n/a"
	}
	min, max := valid[0].Date, valid[0].Date
	for _, t := range valid[1:] {
		if t.Date < min {
			min = t.Date
		}
		if t.Date > max {
			max = t.Date
		}
	}
	return min + " to " + max
}
