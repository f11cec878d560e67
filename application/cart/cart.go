package cart

import (
	"context"
	goerrors "errors"

	"go.uber.org/zap"

	"github.com/dimasprsty/storefront/constant"
	"github.com/dimasprsty/storefront/model"
	"github.com/dimasprsty/storefront/thirdparty/storeapi"
	"github.com/dimasprsty/storefront/utils/errors"
	"github.com/dimasprsty/storefront/utils/logger"
)

// CartApp drives the remote cart and recomputes the derived totals on every
// read-back so mutation responses always carry fresh numbers.
type CartApp interface {
	GetCart(ctx context.Context, sess *model.Session) (*model.CartView, error)
	AddItem(ctx context.Context, sess *model.Session, req *model.AddCartItemRequest) (*model.CartMutationResponse, error)
	UpdateItem(ctx context.Context, sess *model.Session, cartItemID uint64, quantity int) (*model.CartMutationResponse, error)
	RemoveItem(ctx context.Context, sess *model.Session, cartItemID uint64) (*model.CartMutationResponse, error)
	Clear(ctx context.Context, sess *model.Session) (*model.CartMutationResponse, error)
}

type cartAppImpl struct {
	store storeapi.Client
}

func NewCartApp(store storeapi.Client) CartApp {
	return &cartAppImpl{store: store}
}

func (s *cartAppImpl) GetCart(ctx context.Context, sess *model.Session) (*model.CartView, error) {
	cart, err := s.fetch(ctx, sess)
	if err != nil {
		return nil, err
	}
	return model.NewCartView(cart), nil
}

func (s *cartAppImpl) AddItem(ctx context.Context, sess *model.Session, req *model.AddCartItemRequest) (*model.CartMutationResponse, error) {
	if req.Quantity <= 0 {
		return nil, errors.SetValidationError(map[string]string{"quantity": "must be greater than zero"})
	}

	ok, err := s.store.AddCartItem(ctx, sess.RemoteToken, req.ProductID, req.Quantity)
	if err != nil {
		return nil, s.remoteErr("AddItem", err)
	}
	return s.mutationResponse(ctx, sess, ok)
}

// UpdateItem sets a line quantity. Quantity zero removes the line; the store
// api is observed doing both removal and clamping, removal is the rule here.
func (s *cartAppImpl) UpdateItem(ctx context.Context, sess *model.Session, cartItemID uint64, quantity int) (*model.CartMutationResponse, error) {
	if quantity < 0 {
		return nil, errors.SetValidationError(map[string]string{"quantity": "must not be negative"})
	}
	if quantity == 0 {
		return s.RemoveItem(ctx, sess, cartItemID)
	}

	ok, err := s.store.UpdateCartItem(ctx, sess.RemoteToken, cartItemID, quantity)
	if err != nil {
		return nil, s.remoteErr("UpdateItem", err)
	}
	return s.mutationResponse(ctx, sess, ok)
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, sess *model.Session, cartItemID uint64) (*model.CartMutationResponse, error) {
	ok, err := s.store.RemoveCartItem(ctx, sess.RemoteToken, cartItemID)
	if err != nil {
		return nil, s.remoteErr("RemoveItem", err)
	}
	return s.mutationResponse(ctx, sess, ok)
}

func (s *cartAppImpl) Clear(ctx context.Context, sess *model.Session) (*model.CartMutationResponse, error) {
	ok, err := s.store.ClearCart(ctx, sess.RemoteToken)
	if err != nil {
		return nil, s.remoteErr("Clear", err)
	}
	return s.mutationResponse(ctx, sess, ok)
}

func (s *cartAppImpl) fetch(ctx context.Context, sess *model.Session) (*model.Cart, error) {
	cart, err := s.store.GetCart(ctx, sess.RemoteToken)
	if err != nil {
		return nil, s.remoteErr("GetCart", err)
	}
	return cart, nil
}

// mutationResponse re-reads the cart after a write so the caller receives
// recomputed totals whether or not the write landed.
func (s *cartAppImpl) mutationResponse(ctx context.Context, sess *model.Session, success bool) (*model.CartMutationResponse, error) {
	cart, err := s.fetch(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &model.CartMutationResponse{
		Success:    success,
		CartTotals: cart.Totals(),
	}, nil
}

func (s *cartAppImpl) remoteErr(op string, err error) error {
	if goerrors.Is(err, storeapi.ErrUnauthorized) {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	logger.Error("["+op+"] error store api call", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}
