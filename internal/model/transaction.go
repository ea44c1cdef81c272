package model

import (
	"github.com/shopspring/decimal"
)

// Transaction represents one structurally parsed sales line item.
// Date stays a string: the source format is ISO YYYY-MM-DD and every
// downstream ordering is lexicographic, which matches chronological order.
type Transaction struct {
	TransactionID string
	Date          string
	ProductID     string
	ProductName   string
	Quantity      int
	UnitPrice     decimal.Decimal
	CustomerID    string
	Region        string
}

// Amount returns quantity * unit price for this transaction.
func (t Transaction) Amount() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// EnrichedTransaction is a Transaction with catalog attributes attached.
// Product holds a copy of the catalog entry and is the zero value when
// APIMatch is false.
type EnrichedTransaction struct {
	Transaction
	APIMatch bool
	Product  Product
}
