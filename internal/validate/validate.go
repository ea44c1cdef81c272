package validate

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/salescan-dev/salescan/internal/model"
)

// Filter selects transactions after validation. The zero value filters
// nothing. NullDecimal distinguishes an unset bound from a legitimate
// zero bound.
type Filter struct {
	Region    string
	MinAmount decimal.NullDecimal
	MaxAmount decimal.NullDecimal
}

// Summary accounts for every input transaction exactly once, apart from
// the ones that survive into FinalCount.
type Summary struct {
	TotalInput       int
	Invalid          int
	FilteredByRegion int
	FilteredByAmount int
	FinalCount       int
}

// Diagnostics describes the raw input before any rule runs: the distinct
// regions in first-seen order and the amount range across all rows.
type Diagnostics struct {
	Regions   []string
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
}

// Apply validates transactions against the business rules and then applies
// the optional filters. Rule failures count as Invalid; filter exclusions
// are counted separately and only ever apply to rows that passed validation.
func Apply(txns []model.Transaction, f Filter) ([]model.Transaction, Summary, Diagnostics) {
	summary := Summary{TotalInput: len(txns)}
	diag := observe(txns)

	valid := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if !isValid(t) {
			summary.Invalid++
			continue
		}

		if f.Region != "" && t.Region != f.Region {
			summary.FilteredByRegion++
			continue
		}

		amount := t.Amount()
		if f.MinAmount.Valid && amount.LessThan(f.MinAmount.Decimal) {
			summary.FilteredByAmount++
			continue
		}
		if f.MaxAmount.Valid && amount.GreaterThan(f.MaxAmount.Decimal) {
			summary.FilteredByAmount++
			continue
		}

		valid = append(valid, t)
	}

	summary.FinalCount = len(valid)
	return valid, summary, diag
}

func isValid(t model.Transaction) bool {
	if t.Quantity <= 0 || !t.UnitPrice.IsPositive() {
		return false
	}
	if !strings.HasPrefix(t.TransactionID, "T") {
		return false
	}
	if !strings.HasPrefix(t.ProductID, "P") {
		return false
	}
	if !strings.HasPrefix(t.CustomerID, "C") {
		return false
	}
	return t.Region != ""
}

func observe(txns []model.Transaction) Diagnostics {
	var diag Diagnostics
	seen := make(map[string]bool)

	for i, t := range txns {
		if t.Region != "" && !seen[t.Region] {
			seen[t.Region] = true
			diag.Regions = append(diag.Regions, t.Region)
		}

		amount := t.Amount()
		if i == 0 {
			diag.MinAmount = amount
			diag.MaxAmount = amount
			continue
		}
		if amount.LessThan(diag.MinAmount) {
			diag.MinAmount = amount
		}
		if amount.GreaterThan(diag.MaxAmount) {
			diag.MaxAmount = amount
		}
	}

	return diag
}
