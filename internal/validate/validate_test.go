package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salescan-dev/salescan/internal/model"
)

func txn(id, date, productID, name string, qty int, price, customerID, region string) model.Transaction {
	p, _ := decimal.NewFromString(price)
	return model.Transaction{
		TransactionID: id,
		Date:          date,
		ProductID:     productID,
		ProductName:   name,
		Quantity:      qty,
		UnitPrice:     p,
		CustomerID:    customerID,
		Region:        region,
	}
}

func nd(s string) decimal.NullDecimal {
	d, _ := decimal.NewFromString(s)
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func TestApply_AllValidNoFilter(t *testing.T) {
	txns := []model.Transaction{
		txn("T001", "2024-01-01", "P001", "Pen", 10, "2.00", "C001", "North"),
		txn("T002", "2024-01-01", "P002", "Mug", 5, "10.00", "C002", "South"),
	}

	valid, summary, _ := Apply(txns, Filter{})
	assert.Len(t, valid, 2)
	assert.Equal(t, Summary{TotalInput: 2, FinalCount: 2}, summary)
}

func TestApply_RejectionRules(t *testing.T) {
	tests := []struct {
		name string
		txn  model.Transaction
	}{
		{"zero quantity", txn("T001", "2024-01-01", "P001", "Pen", 0, "2.00", "C001", "North")},
		{"negative quantity", txn("T001", "2024-01-01", "P001", "Pen", -3, "2.00", "C001", "North")},
		{"zero price", txn("T001", "2024-01-01", "P001", "Pen", 1, "0", "C001", "North")},
		{"negative price", txn("T001", "2024-01-01", "P001", "Pen", 1, "-2.00", "C001", "North")},
		{"bad transaction prefix", txn("X001", "2024-01-01", "P001", "Pen", 1, "2.00", "C001", "North")},
		{"bad product prefix", txn("T001", "2024-01-01", "Q001", "Pen", 1, "2.00", "C001", "North")},
		{"bad customer prefix", txn("T001", "2024-01-01", "P001", "Pen", 1, "2.00", "K001", "North")},
		{"empty region", txn("T001", "2024-01-01", "P001", "Pen", 1, "2.00", "C001", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, summary, _ := Apply([]model.Transaction{tt.txn}, Filter{})
			assert.Empty(t, valid)
			assert.Equal(t, 1, summary.Invalid)
			assert.Equal(t, 0, summary.FinalCount)
		})
	}
}

func TestApply_RegionFilter(t *testing.T) {
	txns := []model.Transaction{
		txn("T001", "2024-01-01", "P001", "Pen", 10, "2.00", "C001", "North"),
		txn("T002", "2024-01-01", "P002", "Mug", 5, "10.00", "C002", "South"),
		txn("T003", "2024-01-02", "P003", "Cup", 2, "3.00", "C003", "North"),
	}

	valid, summary, _ := Apply(txns, Filter{Region: "North"})
	require.Len(t, valid, 2)
	assert.Equal(t, "T001", valid[0].TransactionID)
	assert.Equal(t, "T003", valid[1].TransactionID)
	assert.Equal(t, 1, summary.FilteredByRegion)
	assert.Equal(t, 2, summary.FinalCount)
}

func TestApply_AmountBoundsInclusive(t *testing.T) {
	txns := []model.Transaction{
		txn("T001", "2024-01-01", "P001", "Pen", 10, "2.00", "C001", "North"),  // 20
		txn("T002", "2024-01-01", "P002", "Mug", 5, "10.00", "C002", "South"), // 50
		txn("T003", "2024-01-02", "P003", "Cup", 1, "70.00", "C003", "East"),  // 70
	}

	valid, summary, _ := Apply(txns, Filter{MinAmount: nd("20"), MaxAmount: nd("50")})
	require.Len(t, valid, 2)
	assert.Equal(t, "T001", valid[0].TransactionID)
	assert.Equal(t, "T002", valid[1].TransactionID)
	assert.Equal(t, 1, summary.FilteredByAmount)
}

func TestApply_UnsetBoundIsNotZero(t *testing.T) {
	txns := []model.Transaction{
		txn("T001", "2024-01-01", "P001", "Pen", 1, "0.01", "C001", "North"),
	}

	// Unset: everything passes.
	valid, summary, _ := Apply(txns, Filter{})
	assert.Len(t, valid, 1)
	assert.Equal(t, 0, summary.FilteredByAmount)

	// An explicit min of zero is a real bound that the row satisfies.
	valid, _, _ = Apply(txns, Filter{MinAmount: nd("0")})
	assert.Len(t, valid, 1)

	// An explicit min above the amount drops the row.
	valid, summary, _ = Apply(txns, Filter{MinAmount: nd("1")})
	assert.Empty(t, valid)
	assert.Equal(t, 1, summary.FilteredByAmount)
}

func TestApply_FiltersOnlyAfterValidation(t *testing.T) {
	txns := []model.Transaction{
		txn("X001", "2024-01-01", "P001", "Pen", 10, "2.00", "C001", "West"),
	}

	// The row fails validation, so the region filter never sees it.
	_, summary, _ := Apply(txns, Filter{Region: "North"})
	assert.Equal(t, 1, summary.Invalid)
	assert.Equal(t, 0, summary.FilteredByRegion)
}

func TestApply_Diagnostics(t *testing.T) {
	txns := []model.Transaction{
		txn("T001", "2024-01-01", "P001", "Pen", 10, "2.00", "C001", "North"), // 20
		txn("X002", "2024-01-01", "P002", "Mug", 5, "10.00", "C002", "South"), // 50, invalid
		txn("T003", "2024-01-02", "P003", "Cup", 1, "5.00", "C003", "North"),  // 5
	}

	_, _, diag := Apply(txns, Filter{Region: "North"})

	// Diagnostics cover all input rows, including invalid and filtered ones.
	assert.Equal(t, []string{"North", "South"}, diag.Regions)
	assert.Equal(t, "5.00", diag.MinAmount.StringFixed(2))
	assert.Equal(t, "50.00", diag.MaxAmount.StringFixed(2))
}

func TestApply_Empty(t *testing.T) {
	valid, summary, diag := Apply(nil, Filter{})
	assert.Empty(t, valid)
	assert.Equal(t, Summary{}, summary)
	assert.Empty(t, diag.Regions)
	assert.True(t, diag.MinAmount.IsZero())
}
