package domain

import (
	"github.com/shopspring/decimal"

	catalog "github.com/dmehra2102/Retail-POS-System/internal/catalog/domain"
)

// Rates is the pricing configuration for a store session.
type Rates struct {
	DiscountThreshold decimal.Decimal
	DiscountRate      decimal.Decimal
	TaxRate           decimal.Decimal
}

func DefaultRates() Rates {
	return Rates{
		DiscountThreshold: decimal.NewFromInt(5000),
		DiscountRate:      decimal.RequireFromString("0.05"),
		TaxRate:           decimal.RequireFromString("0.10"),
	}
}

// Line is a cart line joined with its catalog product, the unit the pricing
// engine computes over.
type Line struct {
	Product  catalog.Product
	Quantity int
}

func (l Line) Total() decimal.Decimal {
	return l.Product.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals is derived from a cart snapshot and is never cached across a
// mutation. Values stay unrounded; rounding happens at presentation.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Taxable  decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}
