// Package cart maintains the active order's line items and derives totals.
package cart

import (
	"math"
	"sync"

	"backend_hatid/pkg/models"
)

// TaxRate is the fixed VAT-style rate applied to the subtotal.
const TaxRate = 0.05

// Totals is the derived money summary for a cart.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Cart is one user's active order. Quantity never drops below 1 through
// increment/decrement; RemoveItem is the only way a line reaches zero.
type Cart struct {
	StoreID string            `json:"storeId"`
	Items   []models.CartItem `json:"items"`
}

// AddItem increments the existing line for the product, or appends a new
// line with quantity 1.
func (c *Cart) AddItem(p models.Product) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, models.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
	})
}

// RemoveItem deletes the line entirely regardless of quantity.
func (c *Cart) RemoveItem(productID string) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity adds delta to the line's quantity, clamped at 1.
func (c *Cart) UpdateQuantity(productID string, delta int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			q := c.Items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.Items[i].Quantity = q
			return true
		}
	}
	return false
}

// SwitchContext replaces the cart contents with a reconstruction of the
// store's most recent order, or empties the cart when the store has none.
func (c *Cart) SwitchContext(storeID string, lastOrder *models.Order) {
	c.StoreID = storeID
	if lastOrder == nil {
		c.Items = nil
		return
	}
	c.Items = append([]models.CartItem(nil), lastOrder.Items...)
}

// Clear empties the cart, keeping the active store context.
func (c *Cart) Clear() { c.Items = nil }

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.Price * float64(item.Quantity)
	}
	return round2(sum)
}

// Summary derives subtotal, tax and total. The discount is always zero;
// there is no promotional-code logic.
func (c *Cart) Summary() Totals {
	subtotal := c.Subtotal()
	tax := round2(subtotal * TaxRate)
	discount := 0.0
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    round2(subtotal - discount + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Manager hands out one cart per dashboard user.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// Get returns the user's cart, creating it on first use.
func (m *Manager) Get(userID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[userID]
	if !ok {
		c = &Cart{}
		m.carts[userID] = c
	}
	return c
}
