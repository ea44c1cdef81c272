// Package analytics computes the aggregate views over a set of valid
// transactions. Every function is pure: it takes the transaction slice,
// builds fresh accumulators, and returns a new value. Accumulation maps are
// paired with a first-seen order slice so that ties in the sorted output
// break deterministically on input order.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/salescan-dev/salescan/internal/model"
)

var hundred = decimal.NewFromInt(100)

// RegionStat summarizes one region's share of sales.
type RegionStat struct {
	Region           string
	TotalSales       decimal.Decimal
	TransactionCount int
	Percentage       decimal.Decimal
}

// ProductStat summarizes one product across all its transactions.
type ProductStat struct {
	Name          string
	TotalQuantity int
	TotalRevenue  decimal.Decimal
}

// CustomerStat summarizes one customer's purchasing.
type CustomerStat struct {
	CustomerID     string
	TotalSpent     decimal.Decimal
	PurchaseCount  int
	AvgOrderValue  decimal.Decimal
	ProductsBought []string
}

// DailyStat summarizes one calendar date.
type DailyStat struct {
	Date             string
	Revenue          decimal.Decimal
	TransactionCount int
	UniqueCustomers  int
}

// Peak is the single best sales day.
type Peak struct {
	Date             string
	Revenue          decimal.Decimal
	TransactionCount int
}

// TotalRevenue sums amount over all transactions. Empty input yields zero.
func TotalRevenue(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount())
	}
	return total
}

// RegionSales breaks sales down per region, ordered by total descending.
// Percentage is the region's share of the grand total, rounded to 2 decimal
// places, and zero for every region when the grand total is zero.
func RegionSales(txns []model.Transaction) []RegionStat {
	totals := make(map[string]*RegionStat)
	var order []string

	for _, t := range txns {
		s, ok := totals[t.Region]
		if !ok {
			s = &RegionStat{Region: t.Region, TotalSales: decimal.Zero, Percentage: decimal.Zero}
			totals[t.Region] = s
			order = append(order, t.Region)
		}
		s.TotalSales = s.TotalSales.Add(t.Amount())
		s.TransactionCount++
	}

	grand := TotalRevenue(txns)
	stats := make([]RegionStat, 0, len(order))
	for _, region := range order {
		s := totals[region]
		if grand.IsPositive() {
			s.Percentage = s.TotalSales.Mul(hundred).Div(grand).Round(2)
		}
		stats = append(stats, *s)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSales.GreaterThan(stats[j].TotalSales)
	})
	return stats
}

// TopProducts returns the n best sellers by quantity, descending, ties
// broken by first-seen order. Revenue is rounded to 2 decimal places.
func TopProducts(txns []model.Transaction, n int) []ProductStat {
	stats := aggregateProducts(txns)
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalQuantity > stats[j].TotalQuantity
	})
	if n < 0 {
		n = 0
	}
	if n > len(stats) {
		n = len(stats)
	}
	return stats[:n]
}

// LowPerformers returns products with quantity strictly below threshold,
// ascending by quantity.
func LowPerformers(txns []model.Transaction, threshold int) []ProductStat {
	var low []ProductStat
	for _, s := range aggregateProducts(txns) {
		if s.TotalQuantity < threshold {
			low = append(low, s)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].TotalQuantity < low[j].TotalQuantity
	})
	return low
}

// HighPerformers returns products with quantity at or above threshold,
// descending by quantity.
func HighPerformers(txns []model.Transaction, threshold int) []ProductStat {
	var high []ProductStat
	for _, s := range aggregateProducts(txns) {
		if s.TotalQuantity >= threshold {
			high = append(high, s)
		}
	}
	sort.SliceStable(high, func(i, j int) bool {
		return high[i].TotalQuantity > high[j].TotalQuantity
	})
	return high
}

// aggregateProducts rolls transactions up per product name in first-seen
// order, revenue rounded to 2 decimal places.
func aggregateProducts(txns []model.Transaction) []ProductStat {
	totals := make(map[string]*ProductStat)
	var order []string

	for _, t := range txns {
		s, ok := totals[t.ProductName]
		if !ok {
			s = &ProductStat{Name: t.ProductName, TotalRevenue: decimal.Zero}
			totals[t.ProductName] = s
			order = append(order, t.ProductName)
		}
		s.TotalQuantity += t.Quantity
		s.TotalRevenue = s.TotalRevenue.Add(t.Amount())
	}

	stats := make([]ProductStat, 0, len(order))
	for _, name := range order {
		s := totals[name]
		s.TotalRevenue = s.TotalRevenue.Round(2)
		stats = append(stats, *s)
	}
	return stats
}

// CustomerAnalysis summarizes spending per customer, ordered by total spent
// descending. ProductsBought lists the distinct product names a customer
// bought, sorted lexicographically for deterministic output.
func CustomerAnalysis(txns []model.Transaction) []CustomerStat {
	type acc struct {
		stat     CustomerStat
		products map[string]bool
	}
	totals := make(map[string]*acc)
	var order []string

	for _, t := range txns {
		a, ok := totals[t.CustomerID]
		if !ok {
			a = &acc{
				stat:     CustomerStat{CustomerID: t.CustomerID, TotalSpent: decimal.Zero},
				products: make(map[string]bool),
			}
			totals[t.CustomerID] = a
			order = append(order, t.CustomerID)
		}
		a.stat.TotalSpent = a.stat.TotalSpent.Add(t.Amount())
		a.stat.PurchaseCount++
		a.products[t.ProductName] = true
	}

	stats := make([]CustomerStat, 0, len(order))
	for _, id := range order {
		a := totals[id]
		if a.stat.PurchaseCount > 0 {
			count := decimal.NewFromInt(int64(a.stat.PurchaseCount))
			a.stat.AvgOrderValue = a.stat.TotalSpent.Div(count).Round(2)
		}
		for name := range a.products {
			a.stat.ProductsBought = append(a.stat.ProductsBought, name)
		}
		sort.Strings(a.stat.ProductsBought)
		stats = append(stats, a.stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSpent.GreaterThan(stats[j].TotalSpent)
	})
	return stats
}

// DailyTrend summarizes revenue per date in ascending date order. Dates are
// ISO YYYY-MM-DD strings, so lexicographic order is chronological.
func DailyTrend(txns []model.Transaction) []DailyStat {
	type acc struct {
		stat      DailyStat
		customers map[string]bool
	}
	days := make(map[string]*acc)

	for _, t := range txns {
		a, ok := days[t.Date]
		if !ok {
			a = &acc{
				stat:      DailyStat{Date: t.Date, Revenue: decimal.Zero},
				customers: make(map[string]bool),
			}
			days[t.Date] = a
		}
		a.stat.Revenue = a.stat.Revenue.Add(t.Amount())
		a.stat.TransactionCount++
		a.customers[t.CustomerID] = true
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	stats := make([]DailyStat, 0, len(dates))
	for _, date := range dates {
		a := days[date]
		a.stat.UniqueCustomers = len(a.customers)
		stats = append(stats, a.stat)
	}
	return stats
}

// PeakDay returns the date with the strictly greatest revenue. The baseline
// is zero, so ok is false when no day has positive revenue. On a revenue
// tie the earlier date wins: a later day only takes over with a strictly
// greater total.
func PeakDay(txns []model.Transaction) (Peak, bool) {
	peak := Peak{Revenue: decimal.Zero}
	found := false

	for _, d := range DailyTrend(txns) {
		if d.Revenue.GreaterThan(peak.Revenue) {
			peak = Peak{Date: d.Date, Revenue: d.Revenue, TransactionCount: d.TransactionCount}
			found = true
		}
	}
	return peak, found
}
