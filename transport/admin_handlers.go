package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dimasprsty/storefront/constant"
	"github.com/dimasprsty/storefront/model"
	utilsContext "github.com/dimasprsty/storefront/utils/context"
	"github.com/dimasprsty/storefront/utils/errors"
	validatorx "github.com/dimasprsty/storefront/utils/validator"
)

// AdminCreateProduct handler
// @Summary Create a catalog product
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.ProductRequest true "Product"
// @Success 200 {object} apiResponse
// @Failure 400 {object} apiResponse
// @Router /admin/products [post]
func (s *RestHandler) AdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	sess, _ := utilsContext.GetSession(r.Context())

	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateRequest(&req); err != nil {
		writeError(w, err)
		return
	}

	id, err := s.AdminApp.CreateProduct(r.Context(), sess, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]uint64{"id": id})
}

// AdminUpdateProduct handler
// @Summary Update a catalog product
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.ProductRequest true "Product"
// @Success 200 {object} apiResponse
// @Router /admin/products/{id} [put]
func (s *RestHandler) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	sess, _ := utilsContext.GetSession(r.Context())
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateRequest(&req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.UpdateProduct(r.Context(), sess, id, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// AdminDeleteProduct handler
// @Summary Delete a catalog product
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} apiResponse
// @Router /admin/products/{id} [delete]
func (s *RestHandler) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	sess, _ := utilsContext.GetSession(r.Context())
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	if err := s.AdminApp.DeleteProduct(r.Context(), sess, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// AdminCreateCategory handler
// @Summary Create a category
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.CategoryRequest true "Category"
// @Success 200 {object} apiResponse
// @Router /admin/categories [post]
func (s *RestHandler) AdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateRequest(&req); err != nil {
		writeError(w, err)
		return
	}

	id, err := s.AdminApp.CreateCategory(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]uint64{"id": id})
}

// AdminUpdateCategory handler
// @Summary Update a category
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body model.CategoryRequest true "Category"
// @Success 200 {object} apiResponse
// @Router /admin/categories/{id} [put]
func (s *RestHandler) AdminUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateRequest(&req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.UpdateCategory(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// AdminDeleteCategory handler
// @Summary Delete a category
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} apiResponse
// @Router /admin/categories/{id} [delete]
func (s *RestHandler) AdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	if err := s.AdminApp.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
