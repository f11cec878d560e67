package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	appcatalog "github.com/dimasprsty/storefront/application/catalog"
	"github.com/dimasprsty/storefront/cmd/config"
	"github.com/dimasprsty/storefront/constant"
	categorymocks "github.com/dimasprsty/storefront/mocks/repository/category"
	productmocks "github.com/dimasprsty/storefront/mocks/repository/product"
	"github.com/dimasprsty/storefront/model"
	cerr "github.com/dimasprsty/storefront/utils/errors"
)

func testConfig() *config.Config {
	return &config.Config{
		Catalog: config.CatalogConfig{
			CategoryCacheTTL: 30 * time.Minute,
			DefaultPageSize:  12,
			FeaturedLimit:    8,
		},
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCatalogApp_Search(t *testing.T) {
	type fields struct {
		productRepo  *productmocks.ProductRepository
		categoryRepo *categorymocks.CategoryRepository
	}
	type args struct {
		ctx context.Context
		req *model.SearchRequest
	}
	tests := []struct {
		name         string
		fields       fields
		args         args
		mockCall     func(f fields)
		wantTotal    int64
		wantPages    int
		wantProducts int
		wantPage     int
		wantPageSize int
		wantErr      bool
		errCode      constant.ErrorType
	}{
		{
			name: "success: second page of price-filtered descending results",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SearchRequest{
					MinPrice: func() *decimal.Decimal { d := price("30"); return &d }(),
					Sort:     constant.SortPriceDesc,
					Page:     2,
					PageSize: 2,
				},
			},
			mockCall: func(f fields) {
				f.productRepo.On("Search", mock.Anything, mock.MatchedBy(func(req *model.SearchRequest) bool {
					return req.Page == 2 && req.PageSize == 2 && req.Sort == constant.SortPriceDesc
				})).Return([]model.ProductView{
					{ID: 3, Name: "Desk Lamp", Price: price("34.00")},
				}, int64(3), nil).Once()

				f.categoryRepo.On("ListActive", mock.Anything).Return([]model.CategoryView{
					{ID: 1, Name: "Home"},
				}, nil).Once()
			},
			wantTotal:    3,
			wantPages:    2,
			wantProducts: 1,
			wantPage:     2,
			wantPageSize: 2,
		},
		{
			name: "success: zero page and size normalize to defaults",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SearchRequest{},
			},
			mockCall: func(f fields) {
				f.productRepo.On("Search", mock.Anything, mock.MatchedBy(func(req *model.SearchRequest) bool {
					return req.Page == 1 && req.PageSize == 12
				})).Return([]model.ProductView{}, int64(0), nil).Once()

				f.categoryRepo.On("ListActive", mock.Anything).Return([]model.CategoryView{}, nil).Once()
			},
			wantTotal:    0,
			wantPages:    0,
			wantProducts: 0,
			wantPage:     1,
			wantPageSize: 12,
		},
		{
			name: "success: category load failure degrades to empty list",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SearchRequest{Page: 1, PageSize: 4},
			},
			mockCall: func(f fields) {
				f.productRepo.On("Search", mock.Anything, mock.Anything).
					Return([]model.ProductView{{ID: 1}}, int64(1), nil).Once()

				f.categoryRepo.On("ListActive", mock.Anything).
					Return(nil, errors.New("db down")).Once()
			},
			wantTotal:    1,
			wantPages:    1,
			wantProducts: 1,
			wantPage:     1,
			wantPageSize: 4,
		},
		{
			name: "error: product query fails",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SearchRequest{Page: 1, PageSize: 4},
			},
			mockCall: func(f fields) {
				f.productRepo.On("Search", mock.Anything, mock.Anything).
					Return(nil, int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcatalog.NewCatalogApp(testConfig(), tt.fields.productRepo, tt.fields.categoryRepo)

			got, err := app.Search(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Search() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.TotalCount != tt.wantTotal {
				t.Errorf("TotalCount = %d, want %d", got.TotalCount, tt.wantTotal)
			}
			if got.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantPages)
			}
			if len(got.Products) != tt.wantProducts {
				t.Errorf("Products = %d, want %d", len(got.Products), tt.wantProducts)
			}
			if got.Page != tt.wantPage || got.PageSize != tt.wantPageSize {
				t.Errorf("page window = %d/%d, want %d/%d", got.Page, got.PageSize, tt.wantPage, tt.wantPageSize)
			}
			if got.Categories == nil {
				t.Error("Categories should never be nil")
			}
		})
	}
}

func TestCatalogApp_GetProduct(t *testing.T) {
	type fields struct {
		productRepo  *productmocks.ProductRepository
		categoryRepo *categorymocks.CategoryRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			id: 7,
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).
					Return(&model.ProductView{ID: 7, Name: "Keyboard"}, nil).Once()
			},
		},
		{
			name: "error: unknown id maps to not found",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			id: 999,
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: repository failure",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
			},
			id: 7,
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcatalog.NewCatalogApp(testConfig(), tt.fields.productRepo, tt.fields.categoryRepo)

			got, err := app.GetProduct(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got == nil || got.ID != tt.id {
				t.Fatalf("GetProduct() = %+v, want id %d", got, tt.id)
			}
		})
	}
}

func TestCatalogApp_ListCategories_Caching(t *testing.T) {
	productRepo := productmocks.NewProductRepository(t)
	categoryRepo := categorymocks.NewCategoryRepository(t)

	// One backing fetch serves every read until the cache is invalidated.
	categoryRepo.On("ListActive", mock.Anything).Return([]model.CategoryView{
		{ID: 1, Name: "Electronics"},
		{ID: 2, Name: "Home"},
	}, nil).Once()

	app := appcatalog.NewCatalogApp(testConfig(), productRepo, categoryRepo)

	for i := 0; i < 3; i++ {
		got, err := app.ListCategories(context.Background())
		if err != nil {
			t.Fatalf("ListCategories() error = %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("ListCategories() = %d categories, want 2", len(got))
		}
	}

	// An admin write drops the cache; the next read refetches.
	categoryRepo.On("ListActive", mock.Anything).Return([]model.CategoryView{
		{ID: 1, Name: "Electronics"},
	}, nil).Once()

	app.InvalidateCategories()

	got, err := app.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories() after invalidate error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ListCategories() after invalidate = %d categories, want 1", len(got))
	}
}

func TestCatalogApp_GetFeatured(t *testing.T) {
	productRepo := productmocks.NewProductRepository(t)
	categoryRepo := categorymocks.NewCategoryRepository(t)

	productRepo.On("GetFeatured", mock.Anything, 8).Return([]model.ProductView{
		{ID: 1, IsFeatured: true},
	}, nil).Once()

	app := appcatalog.NewCatalogApp(testConfig(), productRepo, categoryRepo)

	got, err := app.GetFeatured(context.Background())
	if err != nil {
		t.Fatalf("GetFeatured() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("GetFeatured() = %d products, want 1", len(got))
	}
}
