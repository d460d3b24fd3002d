package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type ProductID string

type Product struct {
	ID        ProductID
	Name      string
	UnitPrice decimal.Decimal
	Stock     int
}

var (
	ErrEmptyID       = errors.New("product id is empty")
	ErrEmptyName     = errors.New("product name is empty")
	ErrNegativePrice = errors.New("unit price is negative")
	ErrNegativeStock = errors.New("stock is negative")
)

func NewProduct(id ProductID, name string, unitPrice decimal.Decimal, stock int) (Product, error) {
	if id == "" {
		return Product{}, ErrEmptyID
	}
	if name == "" {
		return Product{}, fmt.Errorf("product %s: %w", id, ErrEmptyName)
	}
	if unitPrice.IsNegative() {
		return Product{}, fmt.Errorf("product %s: %w", id, ErrNegativePrice)
	}
	if stock < 0 {
		return Product{}, fmt.Errorf("product %s: %w", id, ErrNegativeStock)
	}
	return Product{ID: id, Name: name, UnitPrice: unitPrice, Stock: stock}, nil
}
