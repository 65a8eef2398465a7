package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_AddItem(t *testing.T) {
	var c Cart
	p := Product{ID: "1", Price: 2500000}

	c.AddItem(p)
	assert.Equal(t, 1, c.TotalItems())
	assert.Equal(t, int64(2500000), c.TotalAmount())

	p.Price = 1
	c.AddItem(p)
	assert.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, int64(5000000), c.TotalAmount())
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		quantity  int
		wantItems int
		wantTotal int64
	}{
		{name: "set exact quantity", productID: "1", quantity: 5, wantItems: 6, wantTotal: 550},
		{name: "zero removes", productID: "1", quantity: 0, wantItems: 1, wantTotal: 50},
		{name: "negative removes", productID: "1", quantity: -3, wantItems: 1, wantTotal: 50},
		{name: "unknown id is a no-op", productID: "9", quantity: 4, wantItems: 2, wantTotal: 150},
		{name: "at the cap", productID: "1", quantity: MaxItemQuantity, wantItems: MaxItemQuantity + 1, wantTotal: 99950},
		{name: "above the cap is clamped", productID: "1", quantity: math.MaxInt, wantItems: MaxItemQuantity + 1, wantTotal: 99950},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			c.AddItem(Product{ID: "1", Price: 100})
			c.AddItem(Product{ID: "2", Price: 50})

			c.UpdateQuantity(tt.productID, tt.quantity)
			assert.Equal(t, tt.wantItems, c.TotalItems())
			assert.Equal(t, tt.wantTotal, c.TotalAmount())
		})
	}
}

func TestCart_AddItemStopsAtCap(t *testing.T) {
	var c Cart
	c.AddItem(Product{ID: "1", Price: 100})
	c.UpdateQuantity("1", MaxItemQuantity)

	c.AddItem(Product{ID: "1", Price: 100})
	assert.Equal(t, MaxItemQuantity, c.Items[0].Quantity)
	assert.Equal(t, int64(100*MaxItemQuantity), c.TotalAmount())
}

func TestCart_ViewIsDetached(t *testing.T) {
	var c Cart
	c.AddItem(Product{ID: "1", Price: 100})
	c.Toggle()

	view := c.View()
	view.Items[0].Quantity = 99
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.True(t, view.IsOpen)
	assert.Equal(t, int64(100), view.TotalAmount)
}
