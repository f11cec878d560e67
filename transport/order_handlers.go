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

// Checkout handler
// @Summary Place an order from the current cart
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.CheckoutRequest true "Shipping details"
// @Success 200 {object} apiResponse{data=model.CheckoutResponse}
// @Failure 400 {object} apiResponse
// @Router /checkout [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sess, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateRequest(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.Checkout(r.Context(), sess, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListOrders handler
// @Summary Order history
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} apiResponse{data=[]model.OrderSummary}
// @Router /orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	sess, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))

	res, err := s.OrderApp.ListOrders(r.Context(), sess, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Order detail
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} apiResponse{data=model.OrderDetail}
// @Failure 404 {object} apiResponse
// @Router /orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	sess, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)

	res, err := s.OrderApp.GetOrder(r.Context(), sess, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
