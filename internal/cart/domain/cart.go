package domain

import (
	catalog "github.com/dmehra2102/Retail-POS-System/internal/catalog/domain"
)

type Line struct {
	ProductID catalog.ProductID
	Quantity  int
}

// Cart holds the reserved selection for the current session. One line per
// product; added quantities merge. Iteration order is insertion order.
// The cart never touches catalog stock itself; the caller pairs every
// mutation with the matching reserve or release.
type Cart struct {
	lines map[catalog.ProductID]*Line
	order []catalog.ProductID
}

func NewCart() *Cart {
	return &Cart{lines: make(map[catalog.ProductID]*Line)}
}

// AddLine assumes the caller already reserved qty from the catalog.
func (c *Cart) AddLine(id catalog.ProductID, qty int) {
	if line, ok := c.lines[id]; ok {
		line.Quantity += qty
		return
	}
	c.lines[id] = &Line{ProductID: id, Quantity: qty}
	c.order = append(c.order, id)
}

// RemoveLine decrements the line by qty, capped at the current quantity, and
// deletes the line when fully drained. It returns the amount actually
// removed, which is what the caller must release back to the catalog.
func (c *Cart) RemoveLine(id catalog.ProductID, qty int) int {
	line, ok := c.lines[id]
	if !ok || qty <= 0 {
		return 0
	}
	if qty >= line.Quantity {
		removed := line.Quantity
		delete(c.lines, id)
		for i, oid := range c.order {
			if oid == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
		return removed
	}
	line.Quantity -= qty
	return qty
}

func (c *Cart) Quantity(id catalog.ProductID) int {
	if line, ok := c.lines[id]; ok {
		return line.Quantity
	}
	return 0
}

func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear drops every line. Stock changes happen only through explicit
// reserve/release, never here.
func (c *Cart) Clear() {
	c.lines = make(map[catalog.ProductID]*Line)
	c.order = nil
}
