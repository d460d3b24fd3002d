package terminal

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	catalogapp "github.com/dmehra2102/Retail-POS-System/internal/catalog/application"
	catalogdomain "github.com/dmehra2102/Retail-POS-System/internal/catalog/domain"
	checkoutapp "github.com/dmehra2102/Retail-POS-System/internal/checkout/application"
	pricingapp "github.com/dmehra2102/Retail-POS-System/internal/pricing/application"
	pricingdomain "github.com/dmehra2102/Retail-POS-System/internal/pricing/domain"
)

func newTestModel(t *testing.T) (Model, *checkoutapp.Coordinator, *catalogapp.Service) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	products := []catalogdomain.Product{
		{ID: "rice", Name: "Rice", UnitPrice: decimal.RequireFromString("250.00"), Stock: 12},
	}
	catalog, err := catalogapp.NewService(log, products, 5)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	coord := checkoutapp.NewCoordinator(log, catalog, pricingapp.NewService(pricingdomain.DefaultRates()), checkoutapp.NewReceiptIssuer(), nil, nil)
	return NewModel("Test Store", coord, catalog), coord, catalog
}

func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) tea.Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func runes(s string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestAddFlow(t *testing.T) {
	m, coord, catalog := newTestModel(t)

	var cur tea.Model = m
	cur = press(t, cur, runes("2")...)       // menu: add item
	cur = press(t, cur, runes("rice")...)    // product id
	cur = press(t, cur, enter)
	cur = press(t, cur, runes("5")...)       // quantity
	cur = press(t, cur, enter)

	p, _ := catalog.Get("rice")
	if p.Stock != 7 {
		t.Errorf("stock = %d, want 7", p.Stock)
	}
	lines, _, _ := coord.Summary()
	if len(lines) != 1 || lines[0].Quantity != 5 {
		t.Errorf("cart = %v, want 5 rice", lines)
	}
	got := cur.(Model)
	if got.screen != screenMenu {
		t.Errorf("screen = %d, want menu", got.screen)
	}
	if !strings.Contains(got.status, "Added 5 x rice") {
		t.Errorf("status = %q", got.status)
	}
}

func TestInvalidQuantityReprompts(t *testing.T) {
	m, coord, catalog := newTestModel(t)

	var cur tea.Model = m
	cur = press(t, cur, runes("2")...)
	cur = press(t, cur, runes("rice")...)
	cur = press(t, cur, enter)
	cur = press(t, cur, runes("abc")...)
	cur = press(t, cur, enter)

	got := cur.(Model)
	if got.screen != screenPromptQuantity {
		t.Errorf("screen = %d, want quantity re-prompt", got.screen)
	}
	if !strings.Contains(got.status, "Invalid quantity") {
		t.Errorf("status = %q", got.status)
	}
	p, _ := catalog.Get("rice")
	if p.Stock != 12 {
		t.Errorf("stock = %d, want 12 untouched", p.Stock)
	}
	if lines, _, _ := coord.Summary(); len(lines) != 0 {
		t.Errorf("cart mutated on invalid input: %v", lines)
	}
}

func TestUnknownProductReprompts(t *testing.T) {
	m, _, _ := newTestModel(t)

	var cur tea.Model = m
	cur = press(t, cur, runes("2")...)
	cur = press(t, cur, runes("ghost")...)
	cur = press(t, cur, enter)

	got := cur.(Model)
	if got.screen != screenPromptProduct {
		t.Errorf("screen = %d, want product re-prompt", got.screen)
	}
	if !strings.Contains(got.status, "not found") {
		t.Errorf("status = %q", got.status)
	}
}

func TestCheckoutFlow(t *testing.T) {
	m, coord, catalog := newTestModel(t)

	var cur tea.Model = m
	cur = press(t, cur, runes("2")...)
	cur = press(t, cur, runes("rice")...)
	cur = press(t, cur, enter)
	cur = press(t, cur, runes("5")...)
	cur = press(t, cur, enter)

	// insufficient payment keeps the cart
	cur = press(t, cur, runes("5")...)
	cur = press(t, cur, append(runes("100"), enter)...)
	got := cur.(Model)
	if got.screen != screenPromptPayment {
		t.Errorf("screen = %d, want payment re-prompt", got.screen)
	}
	if lines, _, _ := coord.Summary(); len(lines) != 1 {
		t.Errorf("cart lost on abort: %v", lines)
	}

	// pay enough
	cur = press(t, cur, append(runes("1500.00"), enter)...)
	got = cur.(Model)
	if got.screen != screenReceipt {
		t.Fatalf("screen = %d, want receipt", got.screen)
	}
	view := got.View()
	if !strings.Contains(view, "RECEIPT") || !strings.Contains(view, "1375.00") || !strings.Contains(view, "125.00") {
		t.Errorf("receipt view missing totals:\n%s", view)
	}

	p, _ := catalog.Get("rice")
	if p.Stock != 7 {
		t.Errorf("stock = %d, want 7 after commit", p.Stock)
	}
	if lines, _, _ := coord.Summary(); len(lines) != 0 {
		t.Errorf("cart not cleared: %v", lines)
	}
}

func TestEmptyCartCheckoutBlocked(t *testing.T) {
	m, _, _ := newTestModel(t)

	cur := press(t, m, runes("5")...)
	got := cur.(Model)
	if got.screen != screenMenu {
		t.Errorf("screen = %d, want menu", got.screen)
	}
	if !strings.Contains(got.status, "empty") {
		t.Errorf("status = %q", got.status)
	}
}
