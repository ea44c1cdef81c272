package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Filters.Region = "North"
	cfg.Filters.MinAmount = "10.00"

	path := filepath.Join(t.TempDir(), "salescan.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Data.SalesFile, got.Data.SalesFile)
	assert.Equal(t, cfg.Data.EnrichedFile, got.Data.EnrichedFile)
	assert.Equal(t, cfg.Catalog.BaseURL, got.Catalog.BaseURL)
	assert.Equal(t, cfg.Catalog.TimeoutSeconds, got.Catalog.TimeoutSeconds)
	assert.Equal(t, "North", got.Filters.Region)
	assert.Equal(t, "10.00", got.Filters.MinAmount)
	assert.Empty(t, got.Filters.MaxAmount)
	assert.Equal(t, cfg.Thresholds, got.Thresholds)
	assert.Equal(t, cfg.Report.OutputFile, got.Report.OutputFile)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data/sales_data.txt", cfg.Data.SalesFile)
	assert.Equal(t, "data/enriched_sales_data.txt", cfg.Data.EnrichedFile)
	assert.Equal(t, "reports/sales_report.txt", cfg.Report.OutputFile)
	assert.Equal(t, 10, cfg.Catalog.TimeoutSeconds)
	assert.Equal(t, 5, cfg.Thresholds.TopProducts)
	assert.Equal(t, 5, cfg.Thresholds.TopCustomers)
	assert.Equal(t, 10, cfg.Thresholds.LowQuantity)
	assert.Equal(t, 50, cfg.Thresholds.HighQuantity)
	assert.Empty(t, cfg.Filters.Region)
	assert.Empty(t, cfg.Filters.MinAmount)
	assert.Empty(t, cfg.Filters.MaxAmount)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default()
	path := filepath.Join(t.TempDir(), "salescan.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "sales_file: data/sales_data.txt")
	assert.Contains(t, contents, "base_url: https://dummyjson.com")
	assert.Contains(t, contents, "top_products: 5")
	assert.Contains(t, contents, "low_quantity: 10")
	assert.NotContains(t, contents, "min_amount")
}
