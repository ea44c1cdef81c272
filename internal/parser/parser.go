package parser

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/salescan-dev/salescan/internal/model"
)

// Field layout of a raw sales line.
const (
	numFields      = 8
	colTxnID       = 0
	colDate        = 1
	colProductID   = 2
	colProductName = 3
	colQuantity    = 4
	colUnitPrice   = 5
	colCustomerID  = 6
	colRegion      = 7
)

// Stats counts rows dropped during structural parsing. A dropped row is not
// an error: the source feed is known to contain garbage and the policy is to
// skip it and keep a tally.
type Stats struct {
	Total         int
	BadFieldCount int
	BadNumber     int
}

// Kept returns the number of rows that survived parsing.
func (s Stats) Kept() int {
	return s.Total - s.BadFieldCount - s.BadNumber
}

// Parse converts raw pipe-delimited sales lines into transactions.
// Structural checks only: exact field count and numeric quantity/price.
// Business validation happens downstream. Output order matches input order.
func Parse(lines []string) ([]model.Transaction, Stats) {
	var stats Stats
	txns := make([]model.Transaction, 0, len(lines))

	for _, line := range lines {
		stats.Total++

		parts := strings.Split(line, "|")
		if len(parts) != numFields {
			stats.BadFieldCount++
			continue
		}

		qty, err := strconv.Atoi(strings.TrimSpace(parts[colQuantity]))
		if err != nil {
			stats.BadNumber++
			continue
		}

		// Thousands separators appear in the feed ("45,000").
		rawPrice := strings.ReplaceAll(strings.TrimSpace(parts[colUnitPrice]), ",", "")
		price, err := decimal.NewFromString(rawPrice)
		if err != nil {
			stats.BadNumber++
			continue
		}

		txns = append(txns, model.Transaction{
			TransactionID: parts[colTxnID],
			Date:          parts[colDate],
			ProductID:     parts[colProductID],
			// Commas are the delimiter-escaping convention of the feed.
			ProductName: strings.ReplaceAll(parts[colProductName], ",", ""),
			Quantity:    qty,
			UnitPrice:   price,
			CustomerID:  parts[colCustomerID],
			Region:      parts[colRegion],
		})
	}

	return txns, stats
}
