// Package budget accumulates quote line items and keeps their totals exact.
package budget

import (
	"errors"
	"fmt"

	"github.com/alnah/go-quotepdf/internal/catalog"
	"github.com/shopspring/decimal"
)

// Sentinel errors for budget operations.
var (
	ErrNotInBudget     = errors.New("item not in budget")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Line is one budgeted item. Total is always Quantity times the unit price,
// recomputed on every mutation; it is never set directly.
type Line struct {
	Item     catalog.Item
	Quantity int
	Total    decimal.Decimal
}

// Budget is an ordered set of lines keyed by item id. Adding an item already
// present replaces its quantity instead of duplicating the line.
type Budget struct {
	lines []Line
	byID  map[int64]int
}

// New returns an empty budget.
func New() *Budget {
	return &Budget{byID: make(map[int64]int)}
}

// Add puts item in the budget with the given quantity. An item already
// present has its quantity and total replaced.
func (b *Budget) Add(item catalog.Item, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	line := Line{Item: item, Quantity: quantity, Total: lineTotal(item.UnitPrice, quantity)}
	if idx, ok := b.byID[item.ID]; ok {
		b.lines[idx] = line
		return nil
	}
	b.byID[item.ID] = len(b.lines)
	b.lines = append(b.lines, line)
	return nil
}

// SetQuantity updates the quantity of an item already in the budget.
func (b *Budget) SetQuantity(id int64, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	idx, ok := b.byID[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotInBudget, id)
	}
	b.lines[idx].Quantity = quantity
	b.lines[idx].Total = lineTotal(b.lines[idx].Item.UnitPrice, quantity)
	return nil
}

// Remove drops the line for the given item id.
func (b *Budget) Remove(id int64) error {
	idx, ok := b.byID[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotInBudget, id)
	}
	b.lines = append(b.lines[:idx], b.lines[idx+1:]...)
	delete(b.byID, id)
	for i := idx; i < len(b.lines); i++ {
		b.byID[b.lines[i].Item.ID] = i
	}
	return nil
}

// Lines returns a copy of the budget contents in insertion order.
func (b *Budget) Lines() []Line {
	lines := make([]Line, len(b.lines))
	copy(lines, b.lines)
	return lines
}

// Total sums every line total with decimal arithmetic.
func (b *Budget) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range b.lines {
		total = total.Add(line.Total)
	}
	return total
}

// Len reports the number of lines.
func (b *Budget) Len() int {
	return len(b.lines)
}

func lineTotal(unit decimal.Decimal, quantity int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}
