package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	pricingdomain "github.com/dmehra2102/Retail-POS-System/internal/pricing/domain"
)

type Config struct {
	StoreName        string     `yaml:"store_name"`
	CatalogPath      string     `yaml:"catalog_path"`
	RestockThreshold int        `yaml:"restock_threshold"`
	JournalSize      int        `yaml:"journal_size"`
	OpsAddr          string     `yaml:"ops_addr"`
	Rates            RateConfig `yaml:"rates"`
}

type RateConfig struct {
	DiscountThreshold string `yaml:"discount_threshold"`
	DiscountRate      string `yaml:"discount_rate"`
	TaxRate           string `yaml:"tax_rate"`
}

func Default() Config {
	return Config{
		StoreName:        "Ultra WalMart",
		CatalogPath:      "catalog.yaml",
		RestockThreshold: 5,
		JournalSize:      256,
		OpsAddr:          "127.0.0.1:9464",
		Rates: RateConfig{
			DiscountThreshold: "5000",
			DiscountRate:      "0.05",
			TaxRate:           "0.10",
		},
	}
}

// Load reads the config file at path, filling unset fields with defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.RestockThreshold < 0 {
		return fmt.Errorf("restock_threshold must not be negative, got %d", c.RestockThreshold)
	}
	if _, err := c.PricingRates(); err != nil {
		return err
	}
	return nil
}

// PricingRates parses the rate strings into the pricing configuration.
func (c Config) PricingRates() (pricingdomain.Rates, error) {
	threshold, err := decimal.NewFromString(c.Rates.DiscountThreshold)
	if err != nil {
		return pricingdomain.Rates{}, fmt.Errorf("rates.discount_threshold %q: %w", c.Rates.DiscountThreshold, err)
	}
	rate, err := decimal.NewFromString(c.Rates.DiscountRate)
	if err != nil {
		return pricingdomain.Rates{}, fmt.Errorf("rates.discount_rate %q: %w", c.Rates.DiscountRate, err)
	}
	tax, err := decimal.NewFromString(c.Rates.TaxRate)
	if err != nil {
		return pricingdomain.Rates{}, fmt.Errorf("rates.tax_rate %q: %w", c.Rates.TaxRate, err)
	}
	if rate.IsNegative() || tax.IsNegative() || threshold.IsNegative() {
		return pricingdomain.Rates{}, fmt.Errorf("rates must not be negative")
	}
	return pricingdomain.Rates{DiscountThreshold: threshold, DiscountRate: rate, TaxRate: tax}, nil
}
