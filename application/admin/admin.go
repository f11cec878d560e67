package admin

import (
	"context"
	"database/sql"
	goerrors "errors"

	"go.uber.org/zap"

	"github.com/dimasprsty/storefront/cmd/config"
	"github.com/dimasprsty/storefront/constant"
	"github.com/dimasprsty/storefront/model"
	categoryRepo "github.com/dimasprsty/storefront/repository/category"
	productRepo "github.com/dimasprsty/storefront/repository/product"
	"github.com/dimasprsty/storefront/thirdparty/storeapi"
	"github.com/dimasprsty/storefront/utils/errors"
	"github.com/dimasprsty/storefront/utils/logger"
)

// cacheInvalidator is the slice of the catalog app the back office needs:
// category writes must drop the cached filter list.
type cacheInvalidator interface {
	InvalidateCategories()
}

// AdminApp is the back office: product and category CRUD against the local
// catalog, mirrored to the store api on a best-effort basis.
type AdminApp interface {
	CreateProduct(ctx context.Context, sess *model.Session, req *model.ProductRequest) (uint64, error)
	UpdateProduct(ctx context.Context, sess *model.Session, id uint64, req *model.ProductRequest) error
	DeleteProduct(ctx context.Context, sess *model.Session, id uint64) error

	CreateCategory(ctx context.Context, req *model.CategoryRequest) (uint64, error)
	UpdateCategory(ctx context.Context, id uint64, req *model.CategoryRequest) error
	DeleteCategory(ctx context.Context, id uint64) error
}

type adminAppImpl struct {
	productRepo  productRepo.ProductRepository
	categoryRepo categoryRepo.CategoryRepository
	store        storeapi.Client
	catalog      cacheInvalidator
	serviceToken string
}

func NewAdminApp(cfg *config.Config, products productRepo.ProductRepository, categories categoryRepo.CategoryRepository, store storeapi.Client, catalog cacheInvalidator) AdminApp {
	return &adminAppImpl{
		productRepo:  products,
		categoryRepo: categories,
		store:        store,
		catalog:      catalog,
		serviceToken: cfg.StoreAPI.ServiceToken,
	}
}

func (s *adminAppImpl) CreateProduct(ctx context.Context, sess *model.Session, req *model.ProductRequest) (uint64, error) {
	exists, err := s.productRepo.ExistsBySKU(ctx, req.SKU)
	if err != nil {
		logger.Error("[CreateProduct] err ExistsBySKU", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return 0, errors.SetValidationError(map[string]string{"sku": "already in use"})
	}

	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		logger.Error("[CreateProduct] err categoryRepo.GetByID", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if category == nil {
		return 0, errors.SetValidationError(map[string]string{"categoryId": "unknown category"})
	}

	id, err := s.productRepo.Create(ctx, productEntity(0, req))
	if err != nil {
		logger.Error("[CreateProduct] err productRepo.Create", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	s.mirror("CreateProduct", sess, func(token string) (bool, error) {
		return s.store.CreateProduct(ctx, token, req)
	})
	return id, nil
}

func (s *adminAppImpl) UpdateProduct(ctx context.Context, sess *model.Session, id uint64, req *model.ProductRequest) error {
	if err := s.productRepo.Update(ctx, productEntity(id, req)); err != nil {
		if isNoRows(err) {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[UpdateProduct] err productRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.mirror("UpdateProduct", sess, func(token string) (bool, error) {
		return s.store.UpdateProduct(ctx, token, id, req)
	})
	return nil
}

func (s *adminAppImpl) DeleteProduct(ctx context.Context, sess *model.Session, id uint64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if isNoRows(err) {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[DeleteProduct] err productRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.mirror("DeleteProduct", sess, func(token string) (bool, error) {
		return s.store.DeleteProduct(ctx, token, id)
	})
	return nil
}

func (s *adminAppImpl) CreateCategory(ctx context.Context, req *model.CategoryRequest) (uint64, error) {
	exists, err := s.categoryRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		logger.Error("[CreateCategory] err ExistsByName", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return 0, errors.SetValidationError(map[string]string{"name": "already in use"})
	}

	id, err := s.categoryRepo.Create(ctx, categoryEntity(0, req))
	if err != nil {
		logger.Error("[CreateCategory] err categoryRepo.Create", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	s.catalog.InvalidateCategories()
	return id, nil
}

func (s *adminAppImpl) UpdateCategory(ctx context.Context, id uint64, req *model.CategoryRequest) error {
	if err := s.categoryRepo.Update(ctx, categoryEntity(id, req)); err != nil {
		if isNoRows(err) {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[UpdateCategory] err categoryRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.catalog.InvalidateCategories()
	return nil
}

func (s *adminAppImpl) DeleteCategory(ctx context.Context, id uint64) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if isNoRows(err) {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[DeleteCategory] err categoryRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.catalog.InvalidateCategories()
	return nil
}

// mirror replays a write against the store api. A false or failed mirror is
// logged, never surfaced: the local catalog is the source of truth for the
// back office. The configured service token is preferred; admin sessions
// minted by AdminLogin carry no remote token, so without a service token the
// mirror is skipped rather than sent unauthenticated.
func (s *adminAppImpl) mirror(op string, sess *model.Session, call func(token string) (bool, error)) {
	token := s.serviceToken
	if token == "" {
		token = sess.RemoteToken
	}
	if token == "" {
		logger.Warn("[" + op + "] store api mirror skipped, no credential")
		return
	}

	ok, err := call(token)
	if err != nil {
		logger.Warn("["+op+"] store api mirror failed", zap.String("error", err.Error()))
		return
	}
	if !ok {
		logger.Warn("[" + op + "] store api mirror rejected")
	}
}

func productEntity(id uint64, req *model.ProductRequest) *model.ProductEntity {
	return &model.ProductEntity{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		SalePrice:     req.SalePrice,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
		SKU:           req.SKU,
		IsActive:      req.IsActive,
		IsFeatured:    req.IsFeatured,
		CategoryID:    req.CategoryID,
	}
}

func categoryEntity(id uint64, req *model.CategoryRequest) *model.CategoryEntity {
	return &model.CategoryEntity{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	}
}

func isNoRows(err error) bool {
	return goerrors.Is(err, sql.ErrNoRows)
}
