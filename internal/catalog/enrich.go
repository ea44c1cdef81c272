package catalog

import (
	"github.com/salescan-dev/salescan/internal/model"
)

// BuildMapping indexes products by ID. Products without an ID are skipped;
// on duplicate IDs the later entry wins.
func BuildMapping(products []model.Product) map[string]model.Product {
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		if p.ID == "" {
			continue
		}
		byID[p.ID] = p
	}
	return byID
}

// Enrich attaches catalog attributes to each transaction. APIMatch is true
// iff the product ID is present in the mapping. Each result holds its own
// copy of the product; the mapping is never mutated or aliased.
func Enrich(txns []model.Transaction, byID map[string]model.Product) []model.EnrichedTransaction {
	enriched := make([]model.EnrichedTransaction, 0, len(txns))
	for _, t := range txns {
		e := model.EnrichedTransaction{Transaction: t}
		if p, ok := byID[t.ProductID]; ok {
			e.APIMatch = true
			e.Product = p
		}
		enriched = append(enriched, e)
	}
	return enriched
}
