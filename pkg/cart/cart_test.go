package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend_hatid/pkg/models"
)

var lechonRoll = models.Product{ID: "7", StoreID: "store-1", Name: "Lechon Belly Roll 1kg", Price: 560.00}

func TestAddItemTwiceIncrementsOneLine(t *testing.T) {
	c := &Cart{StoreID: "store-1"}

	c.AddItem(lechonRoll)
	c.AddItem(lechonRoll)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, "7", c.Items[0].ProductID)
}

func TestTotals(t *testing.T) {
	c := &Cart{StoreID: "store-1"}
	c.AddItem(lechonRoll)
	c.AddItem(lechonRoll)

	totals := c.Summary()
	assert.Equal(t, 1120.00, totals.Subtotal)
	assert.Equal(t, 56.00, totals.Tax)
	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 1176.00, totals.Total)
}

func TestTotalsRounding(t *testing.T) {
	c := &Cart{}
	c.AddItem(models.Product{ID: "p1", Price: 33.33})

	totals := c.Summary()
	assert.Equal(t, 33.33, totals.Subtotal)
	assert.Equal(t, 1.67, totals.Tax)
	assert.Equal(t, 35.00, totals.Total)
}

func TestUpdateQuantityClampsAtOne(t *testing.T) {
	c := &Cart{}
	c.AddItem(lechonRoll)

	require.True(t, c.UpdateQuantity("7", 3))
	assert.Equal(t, 4, c.Items[0].Quantity)

	require.True(t, c.UpdateQuantity("7", -10))
	assert.Equal(t, 1, c.Items[0].Quantity)

	// Decrement at the floor stays at the floor, the line never vanishes
	require.True(t, c.UpdateQuantity("7", -1))
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Len(t, c.Items, 1)
}

func TestUpdateQuantityUnknownProduct(t *testing.T) {
	c := &Cart{}
	assert.False(t, c.UpdateQuantity("ghost", 1))
}

func TestRemoveItemDeletesWholeLine(t *testing.T) {
	c := &Cart{}
	c.AddItem(lechonRoll)
	c.AddItem(lechonRoll)
	c.AddItem(models.Product{ID: "8", Name: "Taho Cup", Price: 25})

	require.True(t, c.RemoveItem("7"))
	require.Len(t, c.Items, 1)
	assert.Equal(t, "8", c.Items[0].ProductID)

	assert.False(t, c.RemoveItem("7"))
}

func TestSwitchContextRebuildsFromLastOrder(t *testing.T) {
	c := &Cart{StoreID: "store-1"}
	c.AddItem(lechonRoll)

	last := &models.Order{
		ID:      "order-9",
		StoreID: "store-2",
		Items: []models.CartItem{
			{ProductID: "9", Name: "Pandesal Dozen", Price: 60, Quantity: 2},
		},
		PlacedAt: time.Now(),
	}
	c.SwitchContext("store-2", last)

	assert.Equal(t, "store-2", c.StoreID)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "9", c.Items[0].ProductID)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestSwitchContextWithoutHistoryEmptiesCart(t *testing.T) {
	c := &Cart{StoreID: "store-1"}
	c.AddItem(lechonRoll)

	c.SwitchContext("store-4", nil)

	assert.Equal(t, "store-4", c.StoreID)
	assert.Empty(t, c.Items)
	assert.Equal(t, Totals{}, c.Summary())
}

func TestClearKeepsStoreContext(t *testing.T) {
	c := &Cart{StoreID: "store-1"}
	c.AddItem(lechonRoll)

	c.Clear()
	assert.Equal(t, "store-1", c.StoreID)
	assert.Empty(t, c.Items)
}

func TestManagerHandsOutOneCartPerUser(t *testing.T) {
	m := NewManager()

	a := m.Get("user-1")
	b := m.Get("user-2")
	assert.NotSame(t, a, b)

	a.AddItem(lechonRoll)
	assert.Empty(t, b.Items)
	assert.Same(t, a, m.Get("user-1"))
}
