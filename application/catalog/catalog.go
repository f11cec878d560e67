package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/dimasprsty/storefront/cmd/config"
	"github.com/dimasprsty/storefront/constant"
	"github.com/dimasprsty/storefront/model"
	categoryRepo "github.com/dimasprsty/storefront/repository/category"
	productRepo "github.com/dimasprsty/storefront/repository/product"
	"github.com/dimasprsty/storefront/utils/errors"
	"github.com/dimasprsty/storefront/utils/logger"
)

type CatalogApp interface {
	Search(ctx context.Context, req *model.SearchRequest) (*model.SearchResult, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductView, error)
	GetFeatured(ctx context.Context) ([]model.ProductView, error)
	ListCategories(ctx context.Context) ([]model.CategoryView, error)
	InvalidateCategories()
}

type catalogAppImpl struct {
	config       *config.Config
	productRepo  productRepo.ProductRepository
	categoryRepo categoryRepo.CategoryRepository
	categories   *categoryCache
}

func NewCatalogApp(cfg *config.Config, products productRepo.ProductRepository, categories categoryRepo.CategoryRepository) CatalogApp {
	app := &catalogAppImpl{
		config:       cfg,
		productRepo:  products,
		categoryRepo: categories,
	}
	app.categories = newCategoryCache(cfg.Catalog.CategoryCacheTTL, categories.ListActive)
	return app
}

// Search runs the filtered, sorted, paginated product query and attaches the
// cached active-category list for the filter UI.
func (s *catalogAppImpl) Search(ctx context.Context, req *model.SearchRequest) (*model.SearchResult, error) {
	normalized := *req
	if normalized.Page <= 0 {
		normalized.Page = 1
	}
	if normalized.PageSize <= 0 {
		normalized.PageSize = s.config.Catalog.DefaultPageSize
	}

	items, total, err := s.productRepo.Search(ctx, &normalized)
	if err != nil {
		logger.Error("[Search] error productRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	categories, err := s.categories.get(ctx)
	if err != nil {
		// The category strip is decorative next to the result list, keep
		// the search alive without it.
		logger.Error("[Search] error loading categories", zap.String("error", err.Error()))
		categories = []model.CategoryView{}
	}

	return &model.SearchResult{
		SearchRequest: normalized,
		TotalCount:    total,
		TotalPages:    totalPages(total, normalized.PageSize),
		Products:      items,
		Categories:    categories,
	}, nil
}

func (s *catalogAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductView, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return result, nil
}

func (s *catalogAppImpl) GetFeatured(ctx context.Context) ([]model.ProductView, error) {
	result, err := s.productRepo.GetFeatured(ctx, s.config.Catalog.FeaturedLimit)
	if err != nil {
		logger.Error("[GetFeatured] error productRepo.GetFeatured", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return result, nil
}

func (s *catalogAppImpl) ListCategories(ctx context.Context) ([]model.CategoryView, error) {
	result, err := s.categories.get(ctx)
	if err != nil {
		logger.Error("[ListCategories] error loading categories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return result, nil
}

// InvalidateCategories drops the cached category list after an admin write.
func (s *catalogAppImpl) InvalidateCategories() {
	s.categories.invalidate()
}

// totalPages = ceil(total / pageSize).
func totalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
