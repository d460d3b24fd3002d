package application

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmehra2102/Retail-POS-System/internal/checkout/domain"
	pricingdomain "github.com/dmehra2102/Retail-POS-System/internal/pricing/domain"
)

// ReceiptIssuer builds the immutable receipt record for a committed sale.
type ReceiptIssuer struct {
	seq atomic.Int64
	now func() time.Time
}

func NewReceiptIssuer() *ReceiptIssuer {
	return &ReceiptIssuer{now: func() time.Time { return time.Now().UTC() }}
}

func (ri *ReceiptIssuer) Issue(lines []pricingdomain.Line, totals pricingdomain.Totals, amountPaid decimal.Decimal) domain.Receipt {
	receiptLines := make([]domain.ReceiptLine, 0, len(lines))
	for _, l := range lines {
		receiptLines = append(receiptLines, domain.ReceiptLine{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			UnitPrice: l.Product.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.Total(),
		})
	}
	return domain.Receipt{
		ID:         uuid.NewString(),
		Sequence:   ri.seq.Add(1),
		IssuedAt:   ri.now(),
		Lines:      receiptLines,
		Totals:     totals,
		AmountPaid: amountPaid,
		Change:     amountPaid.Sub(totals.Total),
	}
}
