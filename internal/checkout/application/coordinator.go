package application

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	catalogapp "github.com/dmehra2102/Retail-POS-System/internal/catalog/application"
	catalogdomain "github.com/dmehra2102/Retail-POS-System/internal/catalog/domain"
	cartdomain "github.com/dmehra2102/Retail-POS-System/internal/cart/domain"
	"github.com/dmehra2102/Retail-POS-System/internal/checkout/domain"
	pricingapp "github.com/dmehra2102/Retail-POS-System/internal/pricing/application"
	pricingdomain "github.com/dmehra2102/Retail-POS-System/internal/pricing/domain"
	"github.com/dmehra2102/Retail-POS-System/pkg/journal"
	"github.com/dmehra2102/Retail-POS-System/pkg/metrics"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientPayment = errors.New("insufficient payment")
)

// Coordinator drives one store session: it is the single writer of catalog
// stock and the cart, and pairs every cart mutation with the matching
// reserve or release so that stock + reserved always equals the
// session-start stock.
type Coordinator struct {
	log      *slog.Logger
	catalog  CatalogService
	cart     *cartdomain.Cart
	pricing  *pricingapp.Service
	receipts *ReceiptIssuer
	recorder EventRecorder
	stats    *metrics.TerminalMetrics
	state    domain.SessionState
}

func NewCoordinator(log *slog.Logger, catalog CatalogService, pricing *pricingapp.Service, receipts *ReceiptIssuer, recorder EventRecorder, stats *metrics.TerminalMetrics) *Coordinator {
	return &Coordinator{
		log:      log,
		catalog:  catalog,
		cart:     cartdomain.NewCart(),
		pricing:  pricing,
		receipts: receipts,
		recorder: recorder,
		stats:    stats,
		state:    domain.StateShopping,
	}
}

func (c *Coordinator) State() domain.SessionState {
	return c.state
}

// AddItem reserves qty from the catalog and, only then, merges it into the
// cart. A failed reserve leaves both untouched.
func (c *Coordinator) AddItem(id catalogdomain.ProductID, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: got %d", catalogapp.ErrInvalidQuantity, qty)
	}
	p, err := c.catalog.Get(id)
	if err != nil {
		return err
	}
	if err := c.catalog.Reserve(id, qty); err != nil {
		return err
	}
	c.cart.AddLine(id, qty)

	c.record(journal.Event{
		Type:      journal.TypeItemAdded,
		ProductID: string(id),
		Quantity:  qty,
		Amount:    p.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
	})
	if c.stats != nil {
		c.stats.ItemsReserved.WithLabelValues(string(id)).Add(float64(qty))
	}
	c.log.Info("item added", "product_id", string(id), "qty", qty)
	return nil
}

// RemoveItem removes up to qty of the product from the cart and releases the
// actually-removed amount back to stock.
func (c *Coordinator) RemoveItem(id catalogdomain.ProductID, qty int) (int, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("%w: got %d", catalogapp.ErrInvalidQuantity, qty)
	}
	return c.remove(id, qty)
}

// RemoveAllItem drops the whole line for the product.
func (c *Coordinator) RemoveAllItem(id catalogdomain.ProductID) (int, error) {
	current := c.cart.Quantity(id)
	if current == 0 {
		return 0, fmt.Errorf("%w: %s not in cart", catalogapp.ErrNotFound, id)
	}
	return c.remove(id, current)
}

func (c *Coordinator) remove(id catalogdomain.ProductID, qty int) (int, error) {
	if c.cart.Quantity(id) == 0 {
		return 0, fmt.Errorf("%w: %s not in cart", catalogapp.ErrNotFound, id)
	}
	p, err := c.catalog.Get(id)
	if err != nil {
		return 0, err
	}

	removed := c.cart.RemoveLine(id, qty)
	if err := c.catalog.Release(id, removed); err != nil {
		// Release only fails for an unknown id, which Get above rules out.
		c.cart.AddLine(id, removed)
		return 0, err
	}

	c.record(journal.Event{
		Type:      journal.TypeItemRemoved,
		ProductID: string(id),
		Quantity:  removed,
		Amount:    p.UnitPrice.Mul(decimal.NewFromInt(int64(removed))),
	})
	if c.stats != nil {
		c.stats.ItemsReleased.WithLabelValues(string(id)).Add(float64(removed))
	}
	c.log.Info("item removed", "product_id", string(id), "qty", removed)
	return removed, nil
}

// Summary joins the cart lines with their catalog products, in insertion
// order, and computes fresh totals. An empty cart yields zero totals.
func (c *Coordinator) Summary() ([]pricingdomain.Line, pricingdomain.Totals, error) {
	cartLines := c.cart.Lines()
	lines := make([]pricingdomain.Line, 0, len(cartLines))
	for _, cl := range cartLines {
		p, err := c.catalog.Get(cl.ProductID)
		if err != nil {
			return nil, pricingdomain.Totals{}, err
		}
		lines = append(lines, pricingdomain.Line{Product: p, Quantity: cl.Quantity})
	}
	return lines, c.pricing.Compute(lines), nil
}

// Checkout validates payment against the current cart snapshot. On
// sufficient payment the sale commits: a receipt is issued, the cart is
// cleared and the add-time stock decrements become permanent. On
// insufficient payment nothing changes and the same cart stays open for
// retry.
func (c *Coordinator) Checkout(amountTendered decimal.Decimal) (domain.Receipt, error) {
	if c.cart.IsEmpty() {
		return domain.Receipt{}, ErrEmptyCart
	}
	c.state = domain.StateChecking

	lines, totals, err := c.Summary()
	if err != nil {
		c.state = domain.StateShopping
		return domain.Receipt{}, err
	}

	if amountTendered.LessThan(totals.Total) {
		c.state = domain.StateAborted
		c.record(journal.Event{
			Type:   journal.TypeCheckoutAborted,
			Amount: amountTendered,
			Detail: fmt.Sprintf("total due %s", totals.Total.StringFixed(2)),
		})
		if c.stats != nil {
			c.stats.Transactions.WithLabelValues("aborted").Inc()
		}
		c.log.Info("checkout aborted", "tendered", amountTendered.StringFixed(2), "total", totals.Total.StringFixed(2))
		c.state = domain.StateShopping
		return domain.Receipt{}, fmt.Errorf("%w: tendered %s, total %s",
			ErrInsufficientPayment, amountTendered.StringFixed(2), totals.Total.StringFixed(2))
	}

	receipt := c.receipts.Issue(lines, totals, amountTendered)
	c.cart.Clear()
	c.state = domain.StateCommitted

	c.record(journal.Event{
		Type:   journal.TypeCheckoutCommitted,
		Amount: totals.Total,
		Detail: fmt.Sprintf("receipt #%d", receipt.Sequence),
	})
	if c.stats != nil {
		c.stats.Transactions.WithLabelValues("committed").Inc()
		total, _ := totals.Total.Float64()
		c.stats.SaleAmount.Observe(total)
	}
	c.log.Info("checkout committed",
		"receipt_id", receipt.ID,
		"sequence", receipt.Sequence,
		"total", totals.Total.StringFixed(2),
		"change", receipt.Change.StringFixed(2))

	c.state = domain.StateShopping
	return receipt, nil
}

// AbandonSession releases every reserved line back to stock and empties the
// cart. Besides a committed checkout this is the only path that clears it.
func (c *Coordinator) AbandonSession() error {
	for _, line := range c.cart.Lines() {
		if err := c.catalog.Release(line.ProductID, line.Quantity); err != nil {
			return err
		}
		if c.stats != nil {
			c.stats.ItemsReleased.WithLabelValues(string(line.ProductID)).Add(float64(line.Quantity))
		}
	}
	if !c.cart.IsEmpty() {
		c.record(journal.Event{Type: journal.TypeSessionAbandoned})
		c.log.Info("session abandoned", "lines", len(c.cart.Lines()))
	}
	c.cart.Clear()
	c.state = domain.StateShopping
	return nil
}

func (c *Coordinator) record(e journal.Event) {
	if c.recorder != nil {
		c.recorder.Append(e)
	}
}
