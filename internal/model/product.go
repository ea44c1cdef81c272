package model

import (
	"github.com/shopspring/decimal"
)

// Product carries the catalog attributes for one product ID.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Brand    string          `json:"brand"`
	Price    decimal.Decimal `json:"price"`
}
