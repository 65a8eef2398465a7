package model

// MaxItemQuantity caps a single cart line. Keep the UpdateCartItemRequest tag in sync.
const MaxItemQuantity = 999

// CartItem is a product snapshot taken when it was added, plus a quantity.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (i CartItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// Cart maps product ids to line items in insertion order. Totals are always
// derived from the lines.
type Cart struct {
	Items  []CartItem `json:"items"`
	IsOpen bool       `json:"is_open"`
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			return i
		}
	}
	return -1
}

// AddItem increments an existing line or appends a new one with quantity 1.
// The price of an existing line is not refreshed. A line already at
// MaxItemQuantity stays there.
func (c *Cart) AddItem(p Product) {
	if idx := c.indexOf(p.ID); idx >= 0 {
		if c.Items[idx].Quantity < MaxItemQuantity {
			c.Items[idx].Quantity++
		}
		return
	}
	c.Items = append(c.Items, CartItem{Product: p.Normalize(), Quantity: 1})
}

// UpdateQuantity sets the quantity exactly, clamped to MaxItemQuantity; zero
// or less removes the line.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return
	}
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	c.Items[idx].Quantity = min(quantity, MaxItemQuantity)
}

func (c *Cart) RemoveItem(productID string) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

func (c *Cart) Toggle() {
	c.IsOpen = !c.IsOpen
}

func (c Cart) TotalItems() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) TotalAmount() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.Subtotal()
	}
	return total
}

// View renders the cart with its derived totals.
func (c Cart) View() *CartResponse {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return &CartResponse{
		Items:       items,
		IsOpen:      c.IsOpen,
		TotalItems:  c.TotalItems(),
		TotalAmount: c.TotalAmount(),
	}
}

type CartResponse struct {
	Items       []CartItem `json:"items"`
	IsOpen      bool       `json:"is_open"`
	TotalItems  int        `json:"total_items"`
	TotalAmount int64      `json:"total_amount"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,max=999"`
}

type QuoteResponse struct {
	Message   string `json:"message"`
	ZaloLink  string `json:"zalo_link"`
	PhoneLink string `json:"phone_link"`
	Total     int64  `json:"total"`
}
