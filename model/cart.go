package model

import (
	"github.com/shopspring/decimal"

	"github.com/dimasprsty/storefront/constant"
)

// CartLine is a single cart entry. Name, price and stock are snapshots taken
// from the product at read time.
type CartLine struct {
	CartItemID    uint64          `json:"cartItemId"`
	ProductID     uint64          `json:"productId"`
	ProductName   string          `json:"productName"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Quantity      int             `json:"quantity"`
	StockQuantity int             `json:"stock"`
}

// LineTotal is the unit price multiplied by the quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered collection of lines. Ordering is irrelevant for totals.
type Cart struct {
	Items []CartLine `json:"items"`
}

// HasItems reports whether the cart holds at least one line.
func (c Cart) HasItems() bool {
	return len(c.Items) > 0
}

// CartTotals is derived from the lines on every read, never stored.
type CartTotals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	ShippingAmount decimal.Decimal `json:"shippingAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	ItemCount      int             `json:"cartCount"`
}

// Totals recomputes the derived amounts from scratch: subtotal is the sum of
// line totals, tax is a flat 8% of the subtotal rounded to cents, shipping is
// waived once the subtotal exceeds the free-shipping threshold, and the grand
// total is the sum of the three.
func (c Cart) Totals() CartTotals {
	subtotal := decimal.Zero
	count := 0
	for _, line := range c.Items {
		subtotal = subtotal.Add(line.LineTotal())
		count += line.Quantity
	}

	tax := subtotal.Mul(constant.TaxRate).Round(2)

	shipping := constant.ShippingFee
	if subtotal.GreaterThan(constant.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return CartTotals{
		Subtotal:       subtotal,
		TaxAmount:      tax,
		ShippingAmount: shipping,
		TotalAmount:    subtotal.Add(tax).Add(shipping),
		ItemCount:      count,
	}
}

// CartView is the cart read response: the lines plus their derived totals.
type CartView struct {
	Items []CartLine `json:"items"`
	CartTotals
}

// NewCartView assembles a view with freshly computed totals.
func NewCartView(cart *Cart) *CartView {
	if cart == nil {
		cart = &Cart{}
	}
	return &CartView{
		Items:      cart.Items,
		CartTotals: cart.Totals(),
	}
}

// AddCartItemRequest adds a product to the cart.
type AddCartItemRequest struct {
	ProductID uint64 `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// UpdateCartItemRequest sets a line quantity. Zero removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// CartMutationResponse is returned by every cart write so the storefront can
// refresh its totals in place.
type CartMutationResponse struct {
	Success bool `json:"success"`
	CartTotals
}
