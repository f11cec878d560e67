package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dimasprsty/storefront/constant"
)

// OrderEntity represents the order table entity. The order number carries a
// unique constraint; the user id is the storefront account email.
type OrderEntity struct {
	ID             uint64               `db:"id" json:"id"`
	UserID         string               `db:"user_id" json:"user_id"`
	OrderNumber    string               `db:"order_number" json:"order_number"`
	Status         constant.OrderStatus `db:"status" json:"status"`
	Subtotal       decimal.Decimal      `db:"subtotal" json:"subtotal"`
	TaxAmount      decimal.Decimal      `db:"tax_amount" json:"tax_amount"`
	ShippingAmount decimal.Decimal      `db:"shipping_amount" json:"shipping_amount"`
	TotalAmount    decimal.Decimal      `db:"total_amount" json:"total_amount"`
	ShippingName   string               `db:"shipping_name" json:"shipping_name"`
	ShippingPhone  string               `db:"shipping_phone" json:"shipping_phone"`
	ShippingEmail  string               `db:"shipping_email" json:"shipping_email"`
	ShippingLine   string               `db:"shipping_line" json:"shipping_line"`
	ShippingCity   string               `db:"shipping_city" json:"shipping_city"`
	ShippingZip    string               `db:"shipping_zip" json:"shipping_zip"`
	Notes          string               `db:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time           `db:"updated_at" json:"updated_at,omitempty"`
}

// OrderItemEntity is an order line snapshot.
type OrderItemEntity struct {
	ID          uint64          `db:"id" json:"id"`
	OrderID     uint64          `db:"order_id" json:"order_id"`
	ProductID   uint64          `db:"product_id" json:"product_id"`
	ProductName string          `db:"product_name" json:"product_name"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	Quantity    int             `db:"quantity" json:"quantity"`
}

// OrderSummary is the order-history list shape from the store api.
type OrderSummary struct {
	ID          uint64          `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// OrderDetail is a single remote order with its lines.
type OrderDetail struct {
	OrderSummary
	Items []OrderLineView `json:"items"`
}

// OrderLineView is a remote order line.
type OrderLineView struct {
	ProductID   uint64          `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

// CheckoutRequest collects the shipping details for order creation.
type CheckoutRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,max=20"`
	Address   string `json:"address" validate:"required,max=200"`
	City      string `json:"city" validate:"required,max=100"`
	ZipCode   string `json:"zipCode" validate:"required,max=20"`
	Notes     string `json:"notes" validate:"max=1000"`
}

// CheckoutResponse reports the created order back to the storefront.
type CheckoutResponse struct {
	OrderNumber string `json:"orderNumber"`
	CartTotals
}
