package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	catalogapp "github.com/dmehra2102/Retail-POS-System/internal/catalog/application"
	"github.com/dmehra2102/Retail-POS-System/internal/catalog/domain"
	"github.com/dmehra2102/Retail-POS-System/pkg/journal"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	products := []domain.Product{
		{ID: "rice", Name: "Rice", UnitPrice: decimal.RequireFromString("250.00"), Stock: 12},
		{ID: "ketchup", Name: "Ketchup", UnitPrice: decimal.RequireFromString("300.00"), Stock: 2},
	}
	catalog, err := catalogapp.NewService(log, products, 5)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	events := journal.NewStore(log, 16)
	events.Append(journal.Event{Type: journal.TypeItemAdded, ProductID: "rice", Quantity: 2})
	return NewHandler(log, catalog, events)
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t).Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestListCatalog(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t).Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/catalog")
	if err != nil {
		t.Fatalf("GET /catalog: %v", err)
	}
	defer resp.Body.Close()

	var entries []catalogEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].ID != "rice" || entries[0].Price != "250.00" || entries[0].LowStock {
		t.Errorf("rice entry = %+v", entries[0])
	}
	if entries[1].ID != "ketchup" || !entries[1].LowStock {
		t.Errorf("ketchup entry = %+v, want low stock flag", entries[1])
	}
}

func TestListEvents(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t).Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/events")
	if err != nil {
		t.Fatalf("GET /events: %v", err)
	}
	defer resp.Body.Close()

	var events []journal.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(events) != 1 || events[0].Type != journal.TypeItemAdded {
		t.Errorf("events = %+v", events)
	}
}
