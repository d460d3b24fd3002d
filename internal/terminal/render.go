package terminal

import (
	"fmt"
	"strings"

	catalogdomain "github.com/dmehra2102/Retail-POS-System/internal/catalog/domain"
	checkoutdomain "github.com/dmehra2102/Retail-POS-System/internal/checkout/domain"
	pricingdomain "github.com/dmehra2102/Retail-POS-System/internal/pricing/domain"
)

func renderCatalog(storeName string, products []catalogdomain.Product, isLow func(catalogdomain.Product) bool) string {
	b := &strings.Builder{}
	fmt.Fprintln(b, strings.Repeat("=", 50))
	fmt.Fprintf(b, "%s - AVAILABLE ITEMS\n", storeName)
	fmt.Fprintln(b, strings.Repeat("=", 50))
	fmt.Fprintf(b, "%-14s%-22s%10s%8s\n", "ID", "Item", "Price", "Stock")
	fmt.Fprintln(b, strings.Repeat("-", 50))
	for _, p := range products {
		flag := ""
		if isLow(p) {
			flag = "  [LOW]"
		}
		fmt.Fprintf(b, "%-14s%-22s%10s%8d%s\n", string(p.ID), p.Name, p.UnitPrice.StringFixed(2), p.Stock, flag)
	}
	fmt.Fprintln(b, strings.Repeat("=", 50))
	return b.String()
}

func renderCart(storeName string, lines []pricingdomain.Line, totals pricingdomain.Totals) string {
	b := &strings.Builder{}
	fmt.Fprintln(b, strings.Repeat("=", 60))
	fmt.Fprintf(b, "%s - CURRENT CART\n", storeName)
	fmt.Fprintln(b, strings.Repeat("=", 60))
	if len(lines) == 0 {
		fmt.Fprintln(b, "Cart is empty.")
		fmt.Fprintln(b, strings.Repeat("=", 60))
		return b.String()
	}
	fmt.Fprintf(b, "%-14s%-22s%10s%5s%9s\n", "ID", "Item", "Price", "Qty", "Total")
	fmt.Fprintln(b, strings.Repeat("-", 60))
	for _, l := range lines {
		fmt.Fprintf(b, "%-14s%-22s%10s%5d%9s\n",
			string(l.Product.ID), l.Product.Name, l.Product.UnitPrice.StringFixed(2), l.Quantity, l.Total().StringFixed(2))
	}
	fmt.Fprintln(b, strings.Repeat("-", 60))
	fmt.Fprintf(b, "%-43s%s\n", "Subtotal:", totals.Subtotal.StringFixed(2))
	if totals.Discount.IsPositive() {
		fmt.Fprintf(b, "%-43s-%s\n", "Discount:", totals.Discount.StringFixed(2))
	}
	fmt.Fprintf(b, "%-43s+%s\n", "Tax:", totals.Tax.StringFixed(2))
	fmt.Fprintf(b, "%-43s%s\n", "TOTAL:", totals.Total.StringFixed(2))
	fmt.Fprintln(b, strings.Repeat("=", 60))
	return b.String()
}

// RenderReceipt formats a committed receipt for display or printing. The
// receipt record itself is the contract; this is presentation only.
func RenderReceipt(storeName string, r checkoutdomain.Receipt) string {
	b := &strings.Builder{}
	fmt.Fprintln(b, strings.Repeat("=", 50))
	fmt.Fprintf(b, "%s - RECEIPT\n", storeName)
	fmt.Fprintln(b, strings.Repeat("=", 50))
	fmt.Fprintf(b, "Receipt #: %d (%s)\n", r.Sequence, r.ID)
	fmt.Fprintf(b, "Date: %s\n", r.IssuedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(b, strings.Repeat("-", 50))
	fmt.Fprintf(b, "%-25s%8s%5s%10s\n", "Item", "Price", "Qty", "Total")
	fmt.Fprintln(b, strings.Repeat("-", 50))
	for _, line := range r.Lines {
		name := line.Name
		if len(name) > 24 {
			name = name[:24]
		}
		fmt.Fprintf(b, "%-25s%8s%5d%10s\n", name, line.UnitPrice.StringFixed(2), line.Quantity, line.LineTotal.StringFixed(2))
	}
	fmt.Fprintln(b, strings.Repeat("-", 50))
	fmt.Fprintf(b, "%-30s%s\n", "Subtotal:", r.Totals.Subtotal.StringFixed(2))
	if r.Totals.Discount.IsPositive() {
		fmt.Fprintf(b, "%-30s-%s\n", "Discount:", r.Totals.Discount.StringFixed(2))
	}
	fmt.Fprintf(b, "%-30s+%s\n", "Tax:", r.Totals.Tax.StringFixed(2))
	fmt.Fprintf(b, "%-30s%s\n", "TOTAL:", r.Totals.Total.StringFixed(2))
	fmt.Fprintln(b, strings.Repeat("-", 50))
	fmt.Fprintf(b, "%-30s%s\n", "Paid:", r.AmountPaid.StringFixed(2))
	fmt.Fprintf(b, "%-30s%s\n", "Change:", r.Change.StringFixed(2))
	fmt.Fprintln(b, strings.Repeat("=", 50))
	fmt.Fprintf(b, "Thank you for shopping at %s!\n", storeName)
	return b.String()
}
