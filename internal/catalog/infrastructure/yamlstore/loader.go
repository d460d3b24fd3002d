package yamlstore

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/dmehra2102/Retail-POS-System/internal/catalog/domain"
)

type productRecord struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
	Stock int    `yaml:"stock"`
}

type catalogFile struct {
	Products []productRecord `yaml:"products"`
}

// Load reads the catalog seed file: a keyed record set of
// {id, name, price, stock}. File order is the display order.
func Load(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]domain.Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("catalog file lists no products")
	}

	products := make([]domain.Product, 0, len(f.Products))
	for i, rec := range f.Products {
		price, err := decimal.NewFromString(rec.Price)
		if err != nil {
			return nil, fmt.Errorf("catalog record %d (%s): bad price %q: %w", i, rec.ID, rec.Price, err)
		}
		p, err := domain.NewProduct(domain.ProductID(rec.ID), rec.Name, price, rec.Stock)
		if err != nil {
			return nil, fmt.Errorf("catalog record %d: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}
