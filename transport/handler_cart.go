package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/muhammadheryan/sanitary-shop/model"
	"github.com/muhammadheryan/sanitary-shop/utils/errors"
)

// GetCart handler
// @Summary Current quote cart
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartResponse
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	res, err := s.CartApp.Get(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ClearCart handler
// @Summary Empty the cart
// @Description Drops every line and closes the drawer
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartResponse
// @Failure 507 {object} ErrorResponse
// @Router /cart [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.CartApp.Clear(r.Context(), sessionID(r)); err != nil {
		s.fail(w, r, err)
		return
	}
	s.notify(r, constant.ToastCartCleared, constant.SeverityInfo)
	writeSuccess(w, (&model.Cart{}).View())
}

// AddCartItem handler
// @Summary Add a product to the cart
// @Description Adds one unit, or increments the existing line. Out-of-stock products are rejected.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.AddCartItemRequest true "Add Cart Item Request"
// @Success 200 {object} model.CartResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cart/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AddCartItemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	product, err := s.ProductApp.Get(ctx, req.ProductID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !product.InStock {
		s.fail(w, r, errors.SetCustomError(constant.ErrOutOfStock))
		return
	}

	res, err := s.CartApp.AddItem(ctx, sessionID(r), *product)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.notify(r, addedToCartText(product.Name), constant.SeveritySuccess)
	writeSuccess(w, res)
}

// UpdateCartItem handler
// @Summary Set a line quantity
// @Description A quantity of zero or less removes the line. Unknown ids are ignored.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body model.UpdateCartItemRequest true "Update Cart Item Request"
// @Success 200 {object} model.CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{id} [put]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCartItemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.CartApp.UpdateQuantity(r.Context(), sessionID(r), mux.Vars(r)["id"], *req.Quantity)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.notify(r, constant.ToastCartUpdated, constant.SeverityInfo)
	writeSuccess(w, res)
}

// RemoveCartItem handler
// @Summary Remove a line
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.CartResponse
// @Router /cart/items/{id} [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	res, err := s.CartApp.RemoveItem(r.Context(), sessionID(r), mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.notify(r, constant.ToastCartItemRemoved, constant.SeverityInfo)
	writeSuccess(w, res)
}

// ToggleCart handler
// @Summary Open or close the cart drawer
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartResponse
// @Router /cart/toggle [post]
func (s *RestHandler) ToggleCart(w http.ResponseWriter, r *http.Request) {
	res, err := s.CartApp.Toggle(r.Context(), sessionID(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}

// GetQuote handler
// @Summary Quote request
// @Description Prefilled quote message with Zalo and phone links
// @Tags Cart
// @Produce json
// @Success 200 {object} model.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/quote [get]
func (s *RestHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	res, err := s.CartApp.Quote(r.Context(), sessionID(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, res)
}
