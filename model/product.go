package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dimasprsty/storefront/constant"
)

// ProductEntity represents the product table entity.
type ProductEntity struct {
	ID            uint64           `db:"id" json:"id"`
	Name          string           `db:"name" json:"name"`
	Description   string           `db:"description" json:"description,omitempty"`
	Price         decimal.Decimal  `db:"price" json:"price"`
	SalePrice     *decimal.Decimal `db:"sale_price" json:"sale_price,omitempty"`
	StockQuantity int              `db:"stock_quantity" json:"stock_quantity"`
	ImageURL      string           `db:"image_url" json:"image_url,omitempty"`
	SKU           string           `db:"sku" json:"sku"`
	IsActive      bool             `db:"is_active" json:"is_active"`
	IsFeatured    bool             `db:"is_featured" json:"is_featured"`
	CategoryID    uint64           `db:"category_id" json:"category_id"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time       `db:"updated_at" json:"updated_at,omitempty"`
}

// ProductView is the product shape returned to the storefront, both from the
// local catalog and from the store api.
type ProductView struct {
	ID            uint64           `db:"id" json:"id"`
	Name          string           `db:"name" json:"name"`
	Description   string           `db:"description" json:"description,omitempty"`
	Price         decimal.Decimal  `db:"price" json:"price"`
	SalePrice     *decimal.Decimal `db:"sale_price" json:"salePrice,omitempty"`
	Stock         int              `db:"stock_quantity" json:"stock"`
	ImageURL      string           `db:"image_url" json:"imageUrl,omitempty"`
	SKU           string           `db:"sku" json:"sku,omitempty"`
	IsActive      bool             `db:"is_active" json:"isActive"`
	IsFeatured    bool             `db:"is_featured" json:"isFeatured"`
	CreatedAt     time.Time        `db:"created_at" json:"createdAt"`
	CategoryID    uint64           `db:"category_id" json:"categoryId"`
	CategoryName  string           `db:"category_name" json:"categoryName,omitempty"`
}

// EffectivePrice returns the sale price when it is set and lower than the
// list price, otherwise the list price.
func (p ProductView) EffectivePrice() decimal.Decimal {
	if p.SalePrice != nil && p.SalePrice.LessThan(p.Price) {
		return *p.SalePrice
	}
	return p.Price
}

// IsOnSale reports whether the effective price differs from the list price.
func (p ProductView) IsOnSale() bool {
	return p.SalePrice != nil && p.SalePrice.LessThan(p.Price)
}

// SearchRequest collects the optional product filters. Zero values mean
// "no constraint" except Page and PageSize, which are normalized to their
// defaults by the catalog application.
type SearchRequest struct {
	SearchTerm string             `json:"searchTerm,omitempty"`
	CategoryID uint64             `json:"categoryId,omitempty"`
	MinPrice   *decimal.Decimal   `json:"minPrice,omitempty"`
	MaxPrice   *decimal.Decimal   `json:"maxPrice,omitempty"`
	Sort       constant.SortOrder `json:"-"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
}

// SearchResult echoes the request together with the page window and the
// active categories for the filter UI.
type SearchResult struct {
	SearchRequest
	TotalCount int64          `json:"totalCount"`
	TotalPages int            `json:"totalPages"`
	Products   []ProductView  `json:"products"`
	Categories []CategoryView `json:"categories"`
}

// ProductRequest is the admin create/update payload.
type ProductRequest struct {
	Name          string           `json:"name" validate:"required,max=200"`
	Description   string           `json:"description" validate:"max=2000"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	SalePrice     *decimal.Decimal `json:"salePrice,omitempty"`
	StockQuantity int              `json:"stockQuantity" validate:"gte=0"`
	ImageURL      string           `json:"imageUrl"`
	SKU           string           `json:"sku" validate:"required,max=50"`
	IsActive      bool             `json:"isActive"`
	IsFeatured    bool             `json:"isFeatured"`
	CategoryID    uint64           `json:"categoryId" validate:"required"`
}
