package order

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/dimasprsty/storefront/constant"
	"github.com/dimasprsty/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, data *model.OrderEntity) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemEntity) error
	UpdateStatusByNumber(ctx context.Context, orderNumber string, status constant.OrderStatus) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery = `INSERT INTO ` + "`order`" + ` (user_id, order_number, status, subtotal, tax_amount, shipping_amount, total_amount, shipping_name, shipping_phone, shipping_email, shipping_line, shipping_city, shipping_zip, notes, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	insertOrderItemQuery = `INSERT INTO order_item (order_id, product_id, product_name, unit_price, quantity) VALUES (?, ?, ?, ?, ?)`

	updateStatusQuery = `UPDATE ` + "`order`" + ` SET status = ?, updated_at = NOW() WHERE order_number = ?`
)

func (s *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, data *model.OrderEntity) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertOrderQuery,
		data.UserID, data.OrderNumber, data.Status,
		data.Subtotal, data.TaxAmount, data.ShippingAmount, data.TotalAmount,
		data.ShippingName, data.ShippingPhone, data.ShippingEmail,
		data.ShippingLine, data.ShippingCity, data.ShippingZip, data.Notes)
	if err != nil {
		return 0, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemEntity) error {
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, insertOrderItemQuery, orderID, item.ProductID, item.ProductName, item.UnitPrice, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQL) UpdateStatusByNumber(ctx context.Context, orderNumber string, status constant.OrderStatus) error {
	_, err := s.conn.ExecContext(ctx, updateStatusQuery, status, orderNumber)
	return err
}
