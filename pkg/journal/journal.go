package journal

import (
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	TypeItemAdded         EventType = "ItemAdded"
	TypeItemRemoved       EventType = "ItemRemoved"
	TypeCheckoutCommitted EventType = "CheckoutCommitted"
	TypeCheckoutAborted   EventType = "CheckoutAborted"
	TypeSessionAbandoned  EventType = "SessionAbandoned"
)

type Event struct {
	ID        int64           `json:"id"`
	Type      EventType       `json:"type"`
	ProductID string          `json:"product_id,omitempty"`
	Quantity  int             `json:"quantity,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Detail    string          `json:"detail,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store keeps the most recent session events in memory. Oldest entries are
// dropped once capacity is reached.
type Store struct {
	log *slog.Logger

	mu     sync.Mutex
	nextID int64
	events []Event
	cap    int
}

func NewStore(log *slog.Logger, capacity int) *Store {
	if capacity <= 0 {
		capacity = 256
	}
	return &Store{log: log, cap: capacity}
}

func (s *Store) Append(e Event) Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	e.ID = s.nextID
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	s.events = append(s.events, e)
	if len(s.events) > s.cap {
		s.events = s.events[len(s.events)-s.cap:]
	}
	s.log.Debug("journal event", "event_id", e.ID, "type", string(e.Type), "product_id", e.ProductID)
	return e
}

func (s *Store) Recent(n int) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || n > len(s.events) {
		n = len(s.events)
	}
	out := make([]Event, n)
	copy(out, s.events[len(s.events)-n:])
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
