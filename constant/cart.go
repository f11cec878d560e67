package constant

import "github.com/shopspring/decimal"

// Cart pricing rules. Totals are derived from these every time a cart is
// read back, never stored.
var (
	// TaxRate is the flat 8% applied to the subtotal.
	TaxRate = decimal.NewFromFloat(0.08)

	// FreeShippingThreshold waives the shipping fee once the subtotal
	// strictly exceeds it.
	FreeShippingThreshold = decimal.NewFromInt(50)

	// ShippingFee is the flat fee below the free-shipping threshold.
	ShippingFee = decimal.NewFromFloat(5.99)
)
