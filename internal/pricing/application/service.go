package application

import (
	"github.com/shopspring/decimal"

	"github.com/dmehra2102/Retail-POS-System/internal/pricing/domain"
)

type Service struct {
	rates domain.Rates
}

func NewService(rates domain.Rates) *Service {
	return &Service{rates: rates}
}

func (s *Service) Rates() domain.Rates {
	return s.rates
}

// Compute derives totals in a fixed order: subtotal, then discount (applied
// from the threshold inclusive), then tax on the discounted amount. Decimal
// arithmetic is exact, so line order cannot change the result.
func (s *Service) Compute(lines []domain.Line) domain.Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total())
	}

	discount := decimal.Zero
	if subtotal.GreaterThanOrEqual(s.rates.DiscountThreshold) {
		discount = subtotal.Mul(s.rates.DiscountRate)
	}

	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(s.rates.TaxRate)

	return domain.Totals{
		Subtotal: subtotal,
		Discount: discount,
		Taxable:  taxable,
		Tax:      tax,
		Total:    taxable.Add(tax),
	}
}
