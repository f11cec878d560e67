package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/dimasprsty/storefront/constant"
	"github.com/dimasprsty/storefront/model"
)

// SearchProducts handler
// @Summary Search products
// @Description Filtered, sorted, paginated product search with the active category list
// @Tags Catalog
// @Produce json
// @Param searchTerm query string false "Term matched against name and description"
// @Param categoryId query int false "Category filter"
// @Param minPrice query number false "Minimum effective price"
// @Param maxPrice query number false "Maximum effective price"
// @Param sortBy query string false "Sort field (name | price | newest)" default(name)
// @Param sortOrder query string false "Sort direction (asc | desc)" default(asc)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(12)
// @Success 200 {object} apiResponse{data=model.SearchResult}
// @Router /products [get]
func (s *RestHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	req := parseSearchRequest(r)

	res, err := s.CatalogApp.Search(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// parseSearchRequest reads the filter query parameters. Every filter is
// optional; absence or an unparseable value means no constraint.
func parseSearchRequest(r *http.Request) *model.SearchRequest {
	q := r.URL.Query()

	req := &model.SearchRequest{
		SearchTerm: q.Get("searchTerm"),
		Sort:       constant.ParseSortOrder(q.Get("sortBy"), q.Get("sortOrder")),
	}

	if v, err := strconv.ParseUint(q.Get("categoryId"), 10, 64); err == nil {
		req.CategoryID = v
	}
	if v, err := decimal.NewFromString(q.Get("minPrice")); err == nil {
		req.MinPrice = &v
	}
	if v, err := decimal.NewFromString(q.Get("maxPrice")); err == nil {
		req.MaxPrice = &v
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		req.Page = v
	}
	if v, err := strconv.Atoi(q.Get("pageSize")); err == nil {
		req.PageSize = v
	}

	return req
}

// GetProduct handler
// @Summary Product detail
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} apiResponse{data=model.ProductView}
// @Failure 404 {object} apiResponse
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	res, err := s.CatalogApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// FeaturedProducts handler
// @Summary Featured products for the home page
// @Tags Catalog
// @Produce json
// @Success 200 {object} apiResponse{data=[]model.ProductView}
// @Router /products/featured [get]
func (s *RestHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.GetFeatured(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListCategories handler
// @Summary Active categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} apiResponse{data=[]model.CategoryView}
// @Router /categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
