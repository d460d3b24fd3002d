package domain

import (
	"time"

	"github.com/shopspring/decimal"

	catalog "github.com/dmehra2102/Retail-POS-System/internal/catalog/domain"
	pricing "github.com/dmehra2102/Retail-POS-System/internal/pricing/domain"
)

type ReceiptLine struct {
	ProductID catalog.ProductID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

// Receipt is the snapshot taken at the moment payment is accepted. It is
// never mutated after creation.
type Receipt struct {
	ID         string
	Sequence   int64
	IssuedAt   time.Time
	Lines      []ReceiptLine
	Totals     pricing.Totals
	AmountPaid decimal.Decimal
	Change     decimal.Decimal
}
