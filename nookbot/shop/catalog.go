package shop

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Catalog is the shop's sellable stock: an ordered list of items, unique by
// case-insensitive name. Order carries no meaning but stays stable for
// display. Callers synchronize through the owning Ledger.
type Catalog struct {
	items []*Item
}

// Stock merges an item into the catalog. Restocking an existing name adds
// quantity (and refreshes price and descriptions when the incoming
// descriptor carries them) rather than creating a duplicate listing. An item
// with no quantity is no item at all; stocking it changes nothing.
func (c *Catalog) Stock(item Item) {
	if item.Quantity <= 0 {
		return
	}
	if existing := c.Find(item.Name); existing != nil {
		existing.Quantity += item.Quantity
		if item.Price > 0 {
			existing.Price = item.Price
		}
		if item.Description != "" {
			existing.Description = item.Description
		}
		if item.DescriptionOnUse != "" {
			existing.DescriptionOnUse = item.DescriptionOnUse
		}
		return
	}
	copied := item
	c.items = append(c.items, &copied)
}

// Find returns the stocked item matching name case-insensitively, or nil.
func (c *Catalog) Find(name string) *Item {
	for _, item := range c.items {
		if strings.EqualFold(item.Name, name) {
			return item
		}
	}
	return nil
}

// RemoveOne decrements the named item's quantity by one and delists it when
// the quantity hits zero. Reports whether the item was stocked.
func (c *Catalog) RemoveOne(name string) bool {
	for i, item := range c.items {
		if !strings.EqualFold(item.Name, name) {
			continue
		}
		item.Quantity--
		if item.Quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		return true
	}
	return false
}

// RemoveAll delists the named item regardless of remaining quantity.
func (c *Catalog) RemoveAll(name string) bool {
	for i, item := range c.items {
		if strings.EqualFold(item.Name, name) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// SetQuantity is the administrative override. Zero delists the item.
func (c *Catalog) SetQuantity(name string, quantity int64) error {
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative, got %d", quantity)
	}
	item := c.Find(name)
	if item == nil {
		return ErrUnknownItem
	}
	if quantity == 0 {
		c.RemoveAll(name)
		return nil
	}
	item.Quantity = quantity
	return nil
}

// Items returns a copy of the current stock for display and snapshotting.
func (c *Catalog) Items() []Item {
	items := make([]Item, len(c.items))
	for i, item := range c.items {
		items[i] = *item
	}
	return items
}

// Len returns the number of distinct stocked items.
func (c *Catalog) Len() int {
	return len(c.items)
}

func (c *Catalog) replaceAll(items []Item) {
	c.items = c.items[:0]
	for _, item := range items {
		if item.Name == "" || item.Quantity <= 0 {
			continue
		}
		copied := item
		c.items = append(c.items, &copied)
	}
}

// catalogNames implements fuzzy.Source over the stocked item names.
type catalogNames []*Item

func (n catalogNames) Len() int            { return len(n) }
func (n catalogNames) String(i int) string { return n[i].Name }

// Suggest returns up to max stocked item names closest to the query, best
// match first. Used for "did you misspell it?" replies.
func (c *Catalog) Suggest(query string, max int) []string {
	matches := fuzzy.FindFrom(strings.ToLower(query), catalogNames(c.items))
	names := make([]string, 0, max)
	for _, match := range matches {
		names = append(names, c.items[match.Index].Name)
		if len(names) == max {
			break
		}
	}
	return names
}
