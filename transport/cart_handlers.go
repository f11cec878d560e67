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

// GetCart handler
// @Summary Read the cart with derived totals
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} apiResponse{data=model.CartView}
// @Failure 401 {object} apiResponse
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.CartApp.GetCart(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddCartItem handler
// @Summary Add a product to the cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.AddCartItemRequest true "Add Item Request"
// @Success 200 {object} apiResponse{data=model.CartMutationResponse}
// @Failure 400 {object} apiResponse
// @Router /cart/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateRequest(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.AddItem(r.Context(), sess, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateCartItem handler
// @Summary Set a cart line quantity (0 removes the line)
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Cart Item ID"
// @Param request body model.UpdateCartItemRequest true "Update Request"
// @Success 200 {object} apiResponse{data=model.CartMutationResponse}
// @Failure 400 {object} apiResponse
// @Router /cart/items/{id} [put]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	var req model.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.UpdateItem(r.Context(), sess, id, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RemoveCartItem handler
// @Summary Remove a cart line
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cart Item ID"
// @Success 200 {object} apiResponse{data=model.CartMutationResponse}
// @Router /cart/items/{id} [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	res, err := s.CartApp.RemoveItem(r.Context(), sess, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ClearCart handler
// @Summary Remove every cart line
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} apiResponse{data=model.CartMutationResponse}
// @Router /cart [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.CartApp.Clear(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
