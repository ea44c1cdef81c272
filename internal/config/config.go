package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level salescan.yaml configuration.
type Config struct {
	Data       DataConfig       `yaml:"data"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Filters    FiltersConfig    `yaml:"filters"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Report     ReportConfig     `yaml:"report"`
}

// DataConfig locates the input and output data files, relative to the
// project root.
type DataConfig struct {
	SalesFile    string `yaml:"sales_file"`
	EnrichedFile string `yaml:"enriched_file"`
}

// CatalogConfig points at the product catalog service.
type CatalogConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// FiltersConfig holds the optional query filters. Empty string means unset;
// amounts are kept as strings so that an unset bound stays distinguishable
// from an explicit zero.
type FiltersConfig struct {
	Region    string `yaml:"region,omitempty"`
	MinAmount string `yaml:"min_amount,omitempty"`
	MaxAmount string `yaml:"max_amount,omitempty"`
}

// ThresholdsConfig controls ranking sizes and performer classification.
type ThresholdsConfig struct {
	TopProducts  int `yaml:"top_products"`
	TopCustomers int `yaml:"top_customers"`
	LowQuantity  int `yaml:"low_quantity"`
	HighQuantity int `yaml:"high_quantity"`
}

// ReportConfig locates the rendered report.
type ReportConfig struct {
	OutputFile string `yaml:"output_file"`
}

// Load reads a salescan.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			SalesFile:    "data/sales_data.txt",
			EnrichedFile: "data/enriched_sales_data.txt",
		},
		Catalog: CatalogConfig{
			BaseURL:        "https://dummyjson.com",
			TimeoutSeconds: 10,
		},
		Thresholds: ThresholdsConfig{
			TopProducts:  5,
			TopCustomers: 5,
			LowQuantity:  10,
			HighQuantity: 50,
		},
		Report: ReportConfig{
			OutputFile: "reports/sales_report.txt",
		},
	}
}
