package category

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/dimasprsty/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]model.CategoryView, error)
	GetByID(ctx context.Context, id uint64) (*model.CategoryView, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, data *model.CategoryEntity) (uint64, error)
	Update(ctx context.Context, data *model.CategoryEntity) error
	Delete(ctx context.Context, id uint64) error
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

const (
	listActiveQuery = `SELECT id, name, COALESCE(description, '') AS description, COALESCE(image_url, '') AS image_url, is_active FROM category WHERE is_active = true ORDER BY name ASC`

	getCategoryQuery = `SELECT id, name, COALESCE(description, '') AS description, COALESCE(image_url, '') AS image_url, is_active FROM category WHERE id = ?`

	existsNameQuery = `SELECT COUNT(*) FROM category WHERE name = ?`

	insertCategoryQuery = `INSERT INTO category (name, description, image_url, is_active, created_at) VALUES (?, ?, ?, ?, NOW())`

	updateCategoryQuery = `UPDATE category SET name = ?, description = ?, image_url = ?, is_active = ?, updated_at = NOW() WHERE id = ?`

	deleteCategoryQuery = `DELETE FROM category WHERE id = ?`
)

func (s *SQL) ListActive(ctx context.Context) ([]model.CategoryView, error) {
	items := make([]model.CategoryView, 0)
	if err := s.conn.SelectContext(ctx, &items, listActiveQuery); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.CategoryView, error) {
	var item model.CategoryView
	if err := s.conn.QueryRowxContext(ctx, getCategoryQuery, id).StructScan(&item); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *SQL) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := s.conn.GetContext(ctx, &count, existsNameQuery, name); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SQL) Create(ctx context.Context, data *model.CategoryEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, insertCategoryQuery, data.Name, data.Description, data.ImageURL, data.IsActive)
	if err != nil {
		return 0, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) Update(ctx context.Context, data *model.CategoryEntity) error {
	result, err := s.conn.ExecContext(ctx, updateCategoryQuery, data.Name, data.Description, data.ImageURL, data.IsActive, data.ID)
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
	result, err := s.conn.ExecContext(ctx, deleteCategoryQuery, id)
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
