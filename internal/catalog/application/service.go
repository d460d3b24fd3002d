package application

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmehra2102/Retail-POS-System/internal/catalog/domain"
)

var (
	ErrNotFound          = errors.New("product not found")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Service owns all product stock. Reserve and Release are the only two
// mutation points; everything else is read-only.
type Service struct {
	log              *slog.Logger
	restockThreshold int

	mu       sync.RWMutex
	products map[domain.ProductID]*domain.Product
	order    []domain.ProductID
}

func NewService(log *slog.Logger, products []domain.Product, restockThreshold int) (*Service, error) {
	s := &Service{
		log:              log,
		restockThreshold: restockThreshold,
		products:         make(map[domain.ProductID]*domain.Product, len(products)),
		order:            make([]domain.ProductID, 0, len(products)),
	}
	for _, p := range products {
		if _, dup := s.products[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		cp := p
		s.products[p.ID] = &cp
		s.order = append(s.order, p.ID)
	}
	return s, nil
}

func (s *Service) Get(id domain.ProductID) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return *p, nil
}

func (s *Service) Reserve(id domain.ProductID, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, qty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if qty > p.Stock {
		return fmt.Errorf("%w: %s has %d, requested %d", ErrInsufficientStock, id, p.Stock, qty)
	}
	p.Stock -= qty
	s.log.Debug("stock reserved", "product_id", string(id), "qty", qty, "remaining", p.Stock)
	return nil
}

func (s *Service) Release(id domain.ProductID, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, qty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	p.Stock += qty
	s.log.Debug("stock released", "product_id", string(id), "qty", qty, "remaining", p.Stock)
	return nil
}

// IsLow is advisory only; it never blocks an operation.
func (s *Service) IsLow(p domain.Product) bool {
	return p.Stock < s.restockThreshold
}

func (s *Service) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.products[id])
	}
	return out
}
