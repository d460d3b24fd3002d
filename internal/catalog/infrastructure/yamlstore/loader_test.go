package yamlstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

const sampleCatalog = `
products:
  - { id: rice, name: Rice, price: "250.00", stock: 12 }
  - { id: bread, name: Bread, price: "550.00", stock: 20 }
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	products, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("products = %d, want 2", len(products))
	}
	if products[0].ID != "rice" || products[1].ID != "bread" {
		t.Errorf("file order not preserved: %v", products)
	}
	if !products[0].UnitPrice.Equal(decimal.RequireFromString("250.00")) {
		t.Errorf("price = %s, want 250.00", products[0].UnitPrice)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty list":     `products: []`,
		"bad price":      `{products: [{id: a, name: A, price: "abc", stock: 1}]}`,
		"negative stock": `{products: [{id: a, name: A, price: "1.00", stock: -1}]}`,
		"missing name":   `{products: [{id: a, price: "1.00", stock: 1}]}`,
		"not yaml":       `{{{{`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := parse([]byte(doc)); err == nil {
				t.Errorf("expected error for %s", name)
			}
		})
	}
}
