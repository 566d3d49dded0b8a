// Package catalog stores the reusable product list backing quote line items.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel errors for catalog operations.
var (
	ErrItemNotFound = errors.New("item not found in catalog")
	ErrDuplicateID  = errors.New("duplicate item id")
	ErrCatalogParse = errors.New("failed to parse catalog")
)

const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// Item is a sellable product: identity, display fields, and an exact unit
// price. Prices use decimal arithmetic end to end; they are never floats.
type Item struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Size      string          `json:"size,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	ImageURL  string          `json:"imageUrl,omitempty"`
}

// Catalog is an ordered product collection with lookup by id. It is not safe
// for concurrent mutation; callers load it once and read.
type Catalog struct {
	items []Item
	byID  map[int64]int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{byID: make(map[int64]int)}
}

// Load reads a JSON catalog file: a top-level array of items. Unit prices may
// be JSON numbers or strings; both parse exactly.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- catalog path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogParse, err)
	}
	c := New()
	for _, item := range items {
		if err := c.Add(item); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Save writes the catalog as indented JSON, preserving insertion order.
func (c *Catalog) Save(path string) error {
	data, err := json.MarshalIndent(c.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	data = append(data, '\n')
	// #nosec G306 -- catalog files are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

// Add appends an item. Ids must be unique within the catalog.
func (c *Catalog) Add(item Item) error {
	if _, exists := c.byID[item.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, item.ID)
	}
	c.byID[item.ID] = len(c.items)
	c.items = append(c.items, item)
	return nil
}

// Remove deletes the item with the given id.
func (c *Catalog) Remove(id int64) error {
	idx, ok := c.byID[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	delete(c.byID, id)
	for i := idx; i < len(c.items); i++ {
		c.byID[c.items[i].ID] = i
	}
	return nil
}

// Get returns the item with the given id.
func (c *Catalog) Get(id int64) (Item, error) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}
	return c.items[idx], nil
}

// Filter returns the items whose name contains query, case-insensitively.
// An empty query returns every item.
func (c *Catalog) Filter(query string) []Item {
	if query == "" {
		return c.Items()
	}
	q := strings.ToLower(query)
	var matches []Item
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			matches = append(matches, item)
		}
	}
	return matches
}

// Items returns a copy of the catalog contents in insertion order.
func (c *Catalog) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Len reports the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}
