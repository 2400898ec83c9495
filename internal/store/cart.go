package store

import (
	"sync"

	"github.com/AdwaitMishr/vitmart/internal/domain"
)

// Cart holds the transient shopping cart. It is session-scoped and never
// persisted; a process restart starts from an empty cart. Entries keep
// insertion order, which is also display order.
type Cart struct {
	mu    sync.RWMutex
	items []domain.CartItem

	notifier notifier
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem merges quantity into an existing entry with the same product
// id, otherwise appends a new entry at the end. Quantity is trusted to
// be at least 1.
func (c *Cart) AddItem(item domain.CartItem) {
	c.mu.Lock()
	merged := false
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.items = append(c.items, item)
	}
	c.mu.Unlock()

	c.notifier.notify()
}

// RemoveItem deletes the entry with the given product id. Absent ids are
// a no-op, not an error.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	removed := c.removeLocked(productID)
	c.mu.Unlock()

	if removed {
		c.notifier.notify()
	}
}

// UpdateQuantity sets the quantity for the matching entry. A quantity of
// zero or below removes the entry instead. Absent ids are a no-op.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	c.mu.Lock()
	updated := false
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			updated = true
			break
		}
	}
	c.mu.Unlock()

	if updated {
		c.notifier.notify()
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()

	c.notifier.notify()
}

func (c *Cart) Items() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.Cart{Items: c.items}.TotalItems()
}

func (c *Cart) TotalPrice() domain.Money {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.Cart{Items: c.items}.TotalPrice()
}

// Subscribe registers fn to run after every mutation. The returned func
// unsubscribes.
func (c *Cart) Subscribe(fn func()) func() {
	return c.notifier.subscribe(fn)
}

func (c *Cart) removeLocked(productID string) bool {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}
