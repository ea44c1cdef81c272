// Package enriched persists enriched transactions back to disk in the pipe
// format of the input feed, extended with the enrichment columns.
package enriched

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/salescan-dev/salescan/internal/model"
)

// Header is the first line of an enriched sales file.
const Header = "transaction_id|date|product_id|product_name|quantity|unit_price|customer_id|region|api_match|category"

// MarshalLine renders one enriched transaction as a pipe-delimited line.
func MarshalLine(e model.EnrichedTransaction) string {
	fields := []string{
		e.TransactionID,
		e.Date,
		e.ProductID,
		e.ProductName,
		strconv.Itoa(e.Quantity),
		e.UnitPrice.StringFixed(2),
		e.CustomerID,
		e.Region,
		strconv.FormatBool(e.APIMatch),
		e.Product.Category,
	}
	return strings.Join(fields, "|")
}

// Render builds the full enriched file content, header included.
func Render(txns []model.EnrichedTransaction) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, e := range txns {
		b.WriteString(MarshalLine(e))
		b.WriteByte('\n')
	}
	return b.String()
}

// SaveFile writes the enriched file atomically: temp file in the target
// directory, renamed into place once complete, removed on failure.
func SaveFile(path string, txns []model.EnrichedTransaction) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".enriched-*")
	if err != nil {
		return fmt.Errorf("creating enriched temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(Render(txns)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing enriched data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing enriched data: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publishing enriched data: %w", err)
	}
	return nil
}
