package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	catalogapp "github.com/dmehra2102/Retail-POS-System/internal/catalog/application"
	"github.com/dmehra2102/Retail-POS-System/pkg/journal"
)

// Handler exposes a read-only view of the terminal for operators. It never
// mutates session state; the terminal loop stays the single writer.
type Handler struct {
	log     *slog.Logger
	catalog *catalogapp.Service
	events  *journal.Store
}

func NewHandler(log *slog.Logger, catalog *catalogapp.Service, events *journal.Store) *Handler {
	return &Handler{log: log, catalog: catalog, events: events}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", h.healthz)
	r.Get("/catalog", h.listCatalog)
	r.Get("/events", h.listEvents)
	return r
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

type catalogEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Stock    int    `json:"stock"`
	LowStock bool   `json:"low_stock"`
}

func (h *Handler) listCatalog(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.List()
	entries := make([]catalogEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, catalogEntry{
			ID:       string(p.ID),
			Name:     p.Name,
			Price:    p.UnitPrice.StringFixed(2),
			Stock:    p.Stock,
			LowStock: h.catalog.IsLow(p),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		h.log.Error("encode catalog response", "err", err)
	}
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.events.Recent(50)); err != nil {
		h.log.Error("encode events response", "err", err)
	}
}
