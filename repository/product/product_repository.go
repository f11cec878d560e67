package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/dimasprsty/storefront/constant"
	"github.com/dimasprsty/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	Search(ctx context.Context, req *model.SearchRequest) ([]model.ProductView, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductView, error)
	GetFeatured(ctx context.Context, limit int) ([]model.ProductView, error)
	Create(ctx context.Context, data *model.ProductEntity) (uint64, error)
	Update(ctx context.Context, data *model.ProductEntity) error
	Delete(ctx context.Context, id uint64) error
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

// effectivePriceExpr is the sale price when present and lower than the list
// price, else the list price. LEAST returns NULL when sale_price is NULL,
// which COALESCE resolves back to price.
const effectivePriceExpr = `COALESCE(LEAST(p.sale_price, p.price), p.price)`

const (
	selectProductBase = `SELECT p.id, p.name, p.description, p.price, p.sale_price, p.stock_quantity, p.image_url, p.sku, p.is_active, p.is_featured, p.created_at, p.category_id, c.name AS category_name
FROM product p
JOIN category c ON p.category_id = c.id`

	countProductBase = `SELECT COUNT(*) FROM product p`

	insertProductQuery = `INSERT INTO product (name, description, price, sale_price, stock_quantity, image_url, sku, is_active, is_featured, category_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	updateProductQuery = `UPDATE product SET name = ?, description = ?, price = ?, sale_price = ?, stock_quantity = ?, image_url = ?, sku = ?, is_active = ?, is_featured = ?, category_id = ?, updated_at = NOW()
WHERE id = ?`

	deleteProductQuery = `DELETE FROM product WHERE id = ?`

	existsSKUQuery = `SELECT COUNT(*) FROM product WHERE sku = ?`
)

// buildSearchWhere composes the conjunctive filter set. Absent filters add no
// condition; the active flag is always enforced.
func buildSearchWhere(req *model.SearchRequest) (string, []any) {
	conditions := []string{"p.is_active = true"}
	args := []any{}

	if term := strings.TrimSpace(req.SearchTerm); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		conditions = append(conditions, "(LOWER(p.name) LIKE ? OR LOWER(p.description) LIKE ?)")
		args = append(args, pattern, pattern)
	}
	if req.CategoryID != 0 {
		conditions = append(conditions, "p.category_id = ?")
		args = append(args, req.CategoryID)
	}
	if req.MinPrice != nil {
		conditions = append(conditions, effectivePriceExpr+" >= ?")
		args = append(args, *req.MinPrice)
	}
	if req.MaxPrice != nil {
		conditions = append(conditions, effectivePriceExpr+" <= ?")
		args = append(args, *req.MaxPrice)
	}

	return strings.Join(conditions, " AND "), args
}

// buildOrderClause maps the sort key to an ORDER BY. Price orderings use the
// effective price, and every ordering tie-breaks on id to stay stable.
func buildOrderClause(sort constant.SortOrder) string {
	switch sort {
	case constant.SortNameDesc:
		return "ORDER BY p.name DESC, p.id ASC"
	case constant.SortPriceAsc:
		return "ORDER BY " + effectivePriceExpr + " ASC, p.id ASC"
	case constant.SortPriceDesc:
		return "ORDER BY " + effectivePriceExpr + " DESC, p.id ASC"
	case constant.SortNewest:
		return "ORDER BY p.created_at DESC, p.id ASC"
	default:
		return "ORDER BY p.name ASC, p.id ASC"
	}
}

// Search returns one page of matching products plus the total match count.
// The count is taken over the filtered set before the page window is applied,
// so a page past the end still reports the true total.
func (s *SQL) Search(ctx context.Context, req *model.SearchRequest) ([]model.ProductView, int64, error) {
	where, args := buildSearchWhere(req)

	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductBase+" WHERE "+where, args...); err != nil {
		return nil, 0, err
	}

	offset := (req.Page - 1) * req.PageSize
	query := fmt.Sprintf("%s WHERE %s %s LIMIT ? OFFSET ?", selectProductBase, where, buildOrderClause(req.Sort))
	pageArgs := append(args, req.PageSize, offset)

	rows, err := s.conn.QueryxContext(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductView, 0, req.PageSize)
	for rows.Next() {
		var it productRow
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it.view())
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductView, error) {
	var row productRow
	err := s.conn.QueryRowxContext(ctx, selectProductBase+" WHERE p.id = ?", id).StructScan(&row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	view := row.view()
	return &view, nil
}

func (s *SQL) GetFeatured(ctx context.Context, limit int) ([]model.ProductView, error) {
	query := selectProductBase + " WHERE p.is_active = true AND p.is_featured = true ORDER BY p.created_at DESC, p.id ASC LIMIT ?"
	rows, err := s.conn.QueryxContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductView, 0, limit)
	for rows.Next() {
		var it productRow
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it.view())
	}
	return items, nil
}

func (s *SQL) Create(ctx context.Context, data *model.ProductEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, insertProductQuery,
		data.Name, data.Description, data.Price, data.SalePrice, data.StockQuantity,
		data.ImageURL, data.SKU, data.IsActive, data.IsFeatured, data.CategoryID)
	if err != nil {
		return 0, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) Update(ctx context.Context, data *model.ProductEntity) error {
	result, err := s.conn.ExecContext(ctx, updateProductQuery,
		data.Name, data.Description, data.Price, data.SalePrice, data.StockQuantity,
		data.ImageURL, data.SKU, data.IsActive, data.IsFeatured, data.CategoryID, data.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	result, err := s.conn.ExecContext(ctx, deleteProductQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *SQL) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var count int64
	if err := s.conn.GetContext(ctx, &count, existsSKUQuery, sku); err != nil {
		return false, err
	}
	return count > 0, nil
}

// productRow scans nullable columns before shaping the view.
type productRow struct {
	ID            uint64           `db:"id"`
	Name          string           `db:"name"`
	Description   sql.NullString   `db:"description"`
	Price         decimal.Decimal  `db:"price"`
	SalePrice     *decimal.Decimal `db:"sale_price"`
	StockQuantity int              `db:"stock_quantity"`
	ImageURL      sql.NullString   `db:"image_url"`
	SKU           sql.NullString   `db:"sku"`
	IsActive      bool             `db:"is_active"`
	IsFeatured    bool             `db:"is_featured"`
	CreatedAt     sql.NullTime     `db:"created_at"`
	CategoryID    uint64           `db:"category_id"`
	CategoryName  string           `db:"category_name"`
}

func (r productRow) view() model.ProductView {
	return model.ProductView{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description.String,
		Price:        r.Price,
		SalePrice:    r.SalePrice,
		Stock:        r.StockQuantity,
		ImageURL:     r.ImageURL.String,
		SKU:          r.SKU.String,
		IsActive:     r.IsActive,
		IsFeatured:   r.IsFeatured,
		CreatedAt:    r.CreatedAt.Time,
		CategoryID:   r.CategoryID,
		CategoryName: r.CategoryName,
	}
}
