package admin_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	appadmin "github.com/dimasprsty/storefront/application/admin"
	"github.com/dimasprsty/storefront/cmd/config"
	"github.com/dimasprsty/storefront/constant"
	categorymocks "github.com/dimasprsty/storefront/mocks/repository/category"
	productmocks "github.com/dimasprsty/storefront/mocks/repository/product"
	storemocks "github.com/dimasprsty/storefront/mocks/thirdparty/storeapi"
	"github.com/dimasprsty/storefront/model"
	cerr "github.com/dimasprsty/storefront/utils/errors"
)

// Sessions minted by AdminLogin carry no remote token; mirrors authenticate
// with the configured service token instead.
var adminSession = &model.Session{Email: "admin@example.com", Role: "admin"}

func testConfig() *config.Config {
	return &config.Config{
		StoreAPI: config.StoreAPIConfig{ServiceToken: "svc-token"},
	}
}

// invalidateSpy counts cache invalidations triggered by category writes.
type invalidateSpy struct {
	calls int
}

func (s *invalidateSpy) InvalidateCategories() {
	s.calls++
}

func productRequest() *model.ProductRequest {
	return &model.ProductRequest{
		Name:       "Mechanical Keyboard",
		Price:      decimal.RequireFromString("89.90"),
		SKU:        "KB-001",
		IsActive:   true,
		CategoryID: 2,
	}
}

func TestAdminApp_CreateProduct(t *testing.T) {
	type fields struct {
		productRepo  *productmocks.ProductRepository
		categoryRepo *categorymocks.CategoryRepository
		store        *storemocks.Client
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		wantID   uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: created locally and mirrored",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
				store:        storemocks.NewClient(t),
			},
			mockCall: func(f fields) {
				f.productRepo.On("ExistsBySKU", mock.Anything, "KB-001").Return(false, nil).Once()
				f.categoryRepo.On("GetByID", mock.Anything, uint64(2)).
					Return(&model.CategoryView{ID: 2, Name: "Electronics"}, nil).Once()
				f.productRepo.On("Create", mock.Anything, mock.MatchedBy(func(data *model.ProductEntity) bool {
					return data.SKU == "KB-001" && data.CategoryID == 2
				})).Return(uint64(11), nil).Once()
				f.store.On("CreateProduct", mock.Anything, "svc-token", mock.Anything).
					Return(true, nil).Once()
			},
			wantID: 11,
		},
		{
			name: "success: failed mirror does not fail the write",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
				store:        storemocks.NewClient(t),
			},
			mockCall: func(f fields) {
				f.productRepo.On("ExistsBySKU", mock.Anything, "KB-001").Return(false, nil).Once()
				f.categoryRepo.On("GetByID", mock.Anything, uint64(2)).
					Return(&model.CategoryView{ID: 2}, nil).Once()
				f.productRepo.On("Create", mock.Anything, mock.Anything).Return(uint64(12), nil).Once()
				f.store.On("CreateProduct", mock.Anything, "svc-token", mock.Anything).
					Return(false, errors.New("store api down")).Once()
			},
			wantID: 12,
		},
		{
			name: "error: duplicate sku",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
				store:        storemocks.NewClient(t),
			},
			mockCall: func(f fields) {
				f.productRepo.On("ExistsBySKU", mock.Anything, "KB-001").Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown category",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
				store:        storemocks.NewClient(t),
			},
			mockCall: func(f fields) {
				f.productRepo.On("ExistsBySKU", mock.Anything, "KB-001").Return(false, nil).Once()
				f.categoryRepo.On("GetByID", mock.Anything, uint64(2)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appadmin.NewAdminApp(testConfig(), tt.fields.productRepo, tt.fields.categoryRepo, tt.fields.store, &invalidateSpy{})

			got, err := app.CreateProduct(context.Background(), adminSession, productRequest())
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateProduct() error = %v, wantErr %v", err, tt.wantErr)
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
			if got != tt.wantID {
				t.Fatalf("CreateProduct() = %d, want %d", got, tt.wantID)
			}
		})
	}
}

func TestAdminApp_UpdateProduct(t *testing.T) {
	t.Run("error: unknown product maps to not found", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		categoryRepo := categorymocks.NewCategoryRepository(t)
		store := storemocks.NewClient(t)

		productRepo.On("Update", mock.Anything, mock.Anything).Return(sql.ErrNoRows).Once()

		app := appadmin.NewAdminApp(testConfig(), productRepo, categoryRepo, store, &invalidateSpy{})

		err := app.UpdateProduct(context.Background(), adminSession, 99, productRequest())
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrNotFound])
		}
	})

	t.Run("success mirrors the update", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		categoryRepo := categorymocks.NewCategoryRepository(t)
		store := storemocks.NewClient(t)

		productRepo.On("Update", mock.Anything, mock.MatchedBy(func(data *model.ProductEntity) bool {
			return data.ID == 7
		})).Return(nil).Once()
		store.On("UpdateProduct", mock.Anything, "svc-token", uint64(7), mock.Anything).
			Return(true, nil).Once()

		app := appadmin.NewAdminApp(testConfig(), productRepo, categoryRepo, store, &invalidateSpy{})

		if err := app.UpdateProduct(context.Background(), adminSession, 7, productRequest()); err != nil {
			t.Fatalf("UpdateProduct() error = %v", err)
		}
	})
}

func TestAdminApp_DeleteProduct(t *testing.T) {
	productRepo := productmocks.NewProductRepository(t)
	categoryRepo := categorymocks.NewCategoryRepository(t)
	store := storemocks.NewClient(t)

	productRepo.On("Delete", mock.Anything, uint64(7)).Return(nil).Once()
	store.On("DeleteProduct", mock.Anything, "svc-token", uint64(7)).Return(true, nil).Once()

	app := appadmin.NewAdminApp(testConfig(), productRepo, categoryRepo, store, &invalidateSpy{})

	if err := app.DeleteProduct(context.Background(), adminSession, 7); err != nil {
		t.Fatalf("DeleteProduct() error = %v", err)
	}
}

func TestAdminApp_MirrorCredential(t *testing.T) {
	t.Run("no service token falls back to the session remote token", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		categoryRepo := categorymocks.NewCategoryRepository(t)
		store := storemocks.NewClient(t)

		productRepo.On("Delete", mock.Anything, uint64(7)).Return(nil).Once()
		store.On("DeleteProduct", mock.Anything, "remote-token", uint64(7)).Return(true, nil).Once()

		app := appadmin.NewAdminApp(&config.Config{}, productRepo, categoryRepo, store, &invalidateSpy{})

		sess := &model.Session{Email: "admin@example.com", Role: "admin", RemoteToken: "remote-token"}
		if err := app.DeleteProduct(context.Background(), sess, 7); err != nil {
			t.Fatalf("DeleteProduct() error = %v", err)
		}
	})

	t.Run("no credential at all skips the mirror", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		categoryRepo := categorymocks.NewCategoryRepository(t)
		store := storemocks.NewClient(t)

		productRepo.On("Delete", mock.Anything, uint64(7)).Return(nil).Once()
		// no store expectations: an unauthenticated mirror call would fail the mock

		app := appadmin.NewAdminApp(&config.Config{}, productRepo, categoryRepo, store, &invalidateSpy{})

		if err := app.DeleteProduct(context.Background(), adminSession, 7); err != nil {
			t.Fatalf("DeleteProduct() error = %v", err)
		}
	})
}

func TestAdminApp_CategoryWritesInvalidateCache(t *testing.T) {
	type fields struct {
		productRepo  *productmocks.ProductRepository
		categoryRepo *categorymocks.CategoryRepository
		store        *storemocks.Client
	}
	tests := []struct {
		name      string
		fields    fields
		mockCall  func(f fields)
		call      func(app appadmin.AdminApp) error
		wantCalls int
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "create invalidates",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
				store:        storemocks.NewClient(t),
			},
			mockCall: func(f fields) {
				f.categoryRepo.On("ExistsByName", mock.Anything, "Office").Return(false, nil).Once()
				f.categoryRepo.On("Create", mock.Anything, mock.Anything).Return(uint64(4), nil).Once()
			},
			call: func(app appadmin.AdminApp) error {
				_, err := app.CreateCategory(context.Background(), &model.CategoryRequest{Name: "Office", IsActive: true})
				return err
			},
			wantCalls: 1,
		},
		{
			name: "update invalidates",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
				store:        storemocks.NewClient(t),
			},
			mockCall: func(f fields) {
				f.categoryRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
			},
			call: func(app appadmin.AdminApp) error {
				return app.UpdateCategory(context.Background(), 4, &model.CategoryRequest{Name: "Office"})
			},
			wantCalls: 1,
		},
		{
			name: "delete invalidates",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
				store:        storemocks.NewClient(t),
			},
			mockCall: func(f fields) {
				f.categoryRepo.On("Delete", mock.Anything, uint64(4)).Return(nil).Once()
			},
			call: func(app appadmin.AdminApp) error {
				return app.DeleteCategory(context.Background(), 4)
			},
			wantCalls: 1,
		},
		{
			name: "duplicate name does not invalidate",
			fields: fields{
				productRepo:  productmocks.NewProductRepository(t),
				categoryRepo: categorymocks.NewCategoryRepository(t),
				store:        storemocks.NewClient(t),
			},
			mockCall: func(f fields) {
				f.categoryRepo.On("ExistsByName", mock.Anything, "Office").Return(true, nil).Once()
			},
			call: func(app appadmin.AdminApp) error {
				_, err := app.CreateCategory(context.Background(), &model.CategoryRequest{Name: "Office"})
				return err
			},
			wantCalls: 0,
			wantErr:   true,
			errCode:   constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			spy := &invalidateSpy{}
			app := appadmin.NewAdminApp(testConfig(), tt.fields.productRepo, tt.fields.categoryRepo, tt.fields.store, spy)

			err := tt.call(app)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
			if spy.calls != tt.wantCalls {
				t.Fatalf("invalidations = %d, want %d", spy.calls, tt.wantCalls)
			}
		})
	}
}
