package order

import (
	"context"
	goerrors "errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dimasprsty/storefront/constant"
	"github.com/dimasprsty/storefront/model"
	orderrepo "github.com/dimasprsty/storefront/repository/order"
	txrepo "github.com/dimasprsty/storefront/repository/tx"
	"github.com/dimasprsty/storefront/thirdparty/rabbitmq"
	"github.com/dimasprsty/storefront/thirdparty/storeapi"
	"github.com/dimasprsty/storefront/utils/errors"
	"github.com/dimasprsty/storefront/utils/logger"
)

type OrderApp interface {
	Checkout(ctx context.Context, sess *model.Session, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
	ListOrders(ctx context.Context, sess *model.Session, page, pageSize int) ([]model.OrderSummary, error)
	GetOrder(ctx context.Context, sess *model.Session, id uint64) (*model.OrderDetail, error)
	MarkProcessing(ctx context.Context, orderNumber string) error
}

type orderAppImpl struct {
	store     storeapi.Client
	txRepo    txrepo.TxRepository
	orderRepo orderrepo.OrderRepository
	publisher *rabbitmq.Publisher
}

func NewOrderApp(store storeapi.Client, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{
		store:     store,
		txRepo:    txRepo,
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// Checkout places the remote order from the current cart, then records a
// local copy for the back office and announces it on the message bus.
func (s *orderAppImpl) Checkout(ctx context.Context, sess *model.Session, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	cart, err := s.store.GetCart(ctx, sess.RemoteToken)
	if err != nil {
		return nil, s.remoteErr("Checkout", err)
	}
	if !cart.HasItems() {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}
	totals := cart.Totals()

	remoteReq := &storeapi.OrderRequest{
		Items: make([]storeapi.OrderItemRequest, 0, len(cart.Items)),
		Shipping: storeapi.ShippingRequest{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
			City:      req.City,
			ZipCode:   req.ZipCode,
		},
		Notes: req.Notes,
	}
	for _, line := range cart.Items {
		remoteReq.Items = append(remoteReq.Items, storeapi.OrderItemRequest{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	ok, err := s.store.CreateOrder(ctx, sess.RemoteToken, remoteReq)
	if err != nil {
		return nil, s.remoteErr("Checkout", err)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrRemoteRejected)
	}

	orderNumber := "ORD-" + uuid.NewString()
	if err := s.persistLocal(ctx, sess, req, cart, totals, orderNumber); err != nil {
		logger.Error("[Checkout] persist local order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publishPlaced(sess, orderNumber, totals)

	return &model.CheckoutResponse{
		OrderNumber: orderNumber,
		CartTotals:  totals,
	}, nil
}

func (s *orderAppImpl) persistLocal(ctx context.Context, sess *model.Session, req *model.CheckoutRequest, cart *model.Cart, totals model.CartTotals, orderNumber string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.OrderEntity{
		UserID:         sess.Email,
		OrderNumber:    orderNumber,
		Status:         constant.OrderStatusPending,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		ShippingAmount: totals.ShippingAmount,
		TotalAmount:    totals.TotalAmount,
		ShippingName:   req.FirstName + " " + req.LastName,
		ShippingPhone:  req.Phone,
		ShippingEmail:  req.Email,
		ShippingLine:   req.Address,
		ShippingCity:   req.City,
		ShippingZip:    req.ZipCode,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}

	items := make([]model.OrderItemEntity, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, model.OrderItemEntity{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
		})
	}
	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, items); err != nil {
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return err
	}
	committed = true
	return nil
}

// publishPlaced is fire-and-forget: a bus outage must not fail a checkout
// that already landed.
func (s *orderAppImpl) publishPlaced(sess *model.Session, orderNumber string, totals model.CartTotals) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.OrderPlacedMessage{
		OrderNumber: orderNumber,
		UserID:      sess.Email,
		TotalAmount: totals.TotalAmount,
		PlacedAt:    time.Now(),
	}
	if err := s.publisher.PublishOrderPlaced(msg); err != nil {
		logger.Error("[Checkout] publish order placed", zap.String("error", err.Error()))
	}
}

func (s *orderAppImpl) ListOrders(ctx context.Context, sess *model.Session, page, pageSize int) ([]model.OrderSummary, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	orders, err := s.store.ListOrders(ctx, sess.RemoteToken, page, pageSize)
	if err != nil {
		return nil, s.remoteErr("ListOrders", err)
	}
	return orders, nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, sess *model.Session, id uint64) (*model.OrderDetail, error) {
	detail, err := s.store.GetOrder(ctx, sess.RemoteToken, id)
	if err != nil {
		return nil, s.remoteErr("GetOrder", err)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return detail, nil
}

// MarkProcessing is invoked by the order-events consumer.
func (s *orderAppImpl) MarkProcessing(ctx context.Context, orderNumber string) error {
	return s.orderRepo.UpdateStatusByNumber(ctx, orderNumber, constant.OrderStatusProcessing)
}

func (s *orderAppImpl) remoteErr(op string, err error) error {
	if goerrors.Is(err, storeapi.ErrUnauthorized) {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	logger.Error("["+op+"] error store api call", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}
