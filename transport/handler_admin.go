package transport

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/muhammadheryan/sanitary-shop/model"
	utilsContext "github.com/muhammadheryan/sanitary-shop/utils/context"
	"github.com/muhammadheryan/sanitary-shop/utils/errors"
	"github.com/muhammadheryan/sanitary-shop/utils/logger"
	"go.uber.org/zap"
)

// adminUser is the username AuthMiddleware attached to the request.
func adminUser(r *http.Request) string {
	username, _ := utilsContext.GetAdminUser(r.Context())
	return username
}

// Dashboard handler
// @Summary Catalog statistics
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardStats
// @Failure 401 {object} ErrorResponse
// @Router /admin/dashboard [get]
func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListAdminProducts handler
// @Summary List products in stored order
// @Description Unfiltered catalog, most recently created first
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProductListResponse
// @Failure 401 {object} ErrorResponse
// @Router /admin/products [get]
func (s *RestHandler) ListAdminProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.storedProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) storedProducts(ctx context.Context) (*model.ProductListResponse, error) {
	products, err := s.ProductApp.List(ctx)
	if err != nil {
		return nil, err
	}
	return &model.ProductListResponse{Items: products, TotalCount: len(products)}, nil
}

// CreateProduct handler
// @Summary Create product
// @Description The new product gets a fresh id and is listed first
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ProductRequest true "Product Request"
// @Success 200 {object} model.Product
// @Failure 400 {object} ErrorResponse
// @Failure 507 {object} ErrorResponse
// @Router /admin/products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.ProductApp.Create(r.Context(), req.Input())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	logger.Info("[CreateProduct] product created", zap.String("admin", adminUser(r)), zap.String("id", res.ID))
	s.notify(r, constant.ToastProductCreated, constant.SeveritySuccess)
	writeSuccess(w, res)
}

// UpdateProduct handler
// @Summary Replace product
// @Description Replaces the product with the given id; unknown ids are a no-op
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body model.ProductRequest true "Product Request"
// @Success 200 {object} model.UpdateProductResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/products/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	id := mux.Vars(r)["id"]
	updated, err := s.ProductApp.Update(r.Context(), req.Input().WithID(id))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if updated {
		logger.Info("[UpdateProduct] product updated", zap.String("admin", adminUser(r)), zap.String("id", id))
		s.notify(r, constant.ToastProductUpdated, constant.SeveritySuccess)
	}
	writeSuccess(w, model.UpdateProductResponse{Updated: updated})
}

// DeleteProduct handler
// @Summary Delete product
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} model.UpdateProductResponse
// @Router /admin/products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	name := id
	if p, err := s.ProductApp.Get(ctx, id); err == nil {
		name = p.Name
	}

	deleted, err := s.ProductApp.Delete(ctx, id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if deleted {
		logger.Info("[DeleteProduct] product deleted", zap.String("admin", adminUser(r)), zap.String("id", id))
		s.notify(r, fmt.Sprintf(constant.ToastProductDeletedFmt, name), constant.SeverityInfo)
	}
	writeSuccess(w, model.UpdateProductResponse{Updated: deleted})
}

// ResetProducts handler
// @Summary Restore seed catalog
// @Description Discards every catalog change. Requires confirm=true.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param confirm query bool true "Confirmation"
// @Success 200 {object} model.ProductListResponse
// @Failure 428 {object} ErrorResponse
// @Router /admin/products/reset [post]
func (s *RestHandler) ResetProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.URL.Query().Get("confirm") != "true" {
		s.fail(w, r, errors.SetCustomError(constant.ErrConfirmationRequired))
		return
	}

	if err := s.ProductApp.Reset(ctx); err != nil {
		s.fail(w, r, err)
		return
	}
	logger.Info("[ResetProducts] catalog reset", zap.String("admin", adminUser(r)))

	res, err := s.storedProducts(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	s.notify(r, constant.ToastCatalogReset, constant.SeverityInfo)
	writeSuccess(w, res)
}

// ExportProducts handler
// @Summary Export catalog as CSV
// @Tags Admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV file"
// @Router /admin/products/export [get]
func (s *RestHandler) ExportProducts(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.ProductApp.ExportCSV(r.Context(), &buf); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="products.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("[ExportProducts] err write", zap.String("error", err.Error()))
	}
}
