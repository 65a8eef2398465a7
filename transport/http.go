package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	authapp "github.com/muhammadheryan/sanitary-shop/application/auth"
	cartapp "github.com/muhammadheryan/sanitary-shop/application/cart"
	notificationapp "github.com/muhammadheryan/sanitary-shop/application/notification"
	productapp "github.com/muhammadheryan/sanitary-shop/application/product"
	"github.com/muhammadheryan/sanitary-shop/cmd/config"
	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/muhammadheryan/sanitary-shop/model"
	utilsContext "github.com/muhammadheryan/sanitary-shop/utils/context"
	"github.com/muhammadheryan/sanitary-shop/utils/errors"
	validatorx "github.com/muhammadheryan/sanitary-shop/utils/validator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	ProductApp      productapp.ProductApp
	CartApp         cartapp.CartApp
	NotificationApp notificationapp.NotificationApp
	AuthApp         authapp.AuthApp
	Shop            config.ShopConfig
}

func NewTransport(
	cfg *config.Config,
	productApp productapp.ProductApp,
	cartApp cartapp.CartApp,
	notificationApp notificationapp.NotificationApp,
	authApp authapp.AuthApp,
) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		ProductApp:      productApp,
		CartApp:         cartApp,
		NotificationApp: notificationApp,
		AuthApp:         authApp,
		Shop:            cfg.Shop,
	}

	store := sessions.NewCookieStore([]byte(cfg.Auth.CookieSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Auth.SessionExpTime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	// Swagger UI and metrics
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Storefront
	router.HandleFunc("/shop", rh.GetShop).Methods(http.MethodGet)
	router.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	router.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	router.HandleFunc("/cart", rh.ClearCart).Methods(http.MethodDelete)
	router.HandleFunc("/cart/items", rh.AddCartItem).Methods(http.MethodPost)
	router.HandleFunc("/cart/items/{id}", rh.UpdateCartItem).Methods(http.MethodPut)
	router.HandleFunc("/cart/items/{id}", rh.RemoveCartItem).Methods(http.MethodDelete)
	router.HandleFunc("/cart/toggle", rh.ToggleCart).Methods(http.MethodPost)
	router.HandleFunc("/cart/quote", rh.GetQuote).Methods(http.MethodGet)
	router.HandleFunc("/notifications", rh.ListNotifications).Methods(http.MethodGet)

	// Auth
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	router.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)

	// Admin, guarded by AuthMiddleware
	router.HandleFunc("/admin/dashboard", rh.Dashboard).Methods(http.MethodGet)
	router.HandleFunc("/admin/products", rh.ListAdminProducts).Methods(http.MethodGet)
	router.HandleFunc("/admin/products", rh.CreateProduct).Methods(http.MethodPost)
	router.HandleFunc("/admin/products/export", rh.ExportProducts).Methods(http.MethodGet)
	router.HandleFunc("/admin/products/reset", rh.ResetProducts).Methods(http.MethodPost)
	router.HandleFunc("/admin/products/{id}", rh.UpdateProduct).Methods(http.MethodPut)
	router.HandleFunc("/admin/products/{id}", rh.DeleteProduct).Methods(http.MethodDelete)

	// Internal callbacks from the expiry consumer
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/notifications/{session}/{id}/expire", rh.ExpireNotification).Methods(http.MethodPost)

	// middleware
	router.Use(MetricsMiddleware())
	router.Use(LoggingMiddleware())
	router.Use(SessionMiddleware(store))
	router.Use(AuthMiddleware(authApp))

	return router
}

// notify queues a toast for the caller's shopping session.
func (s *RestHandler) notify(r *http.Request, text string, severity constant.Severity) {
	id, ok := utilsContext.GetSessionID(r.Context())
	if !ok {
		return
	}
	s.NotificationApp.Notify(r.Context(), id, text, severity)
}

// fail writes err and mirrors it as an error toast.
func (s *RestHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.notify(r, toastText(err), constant.SeverityError)
	writeError(w, err)
}

func sessionID(r *http.Request) string {
	id, _ := utilsContext.GetSessionID(r.Context())
	return id
}

func decodeAndValidate(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

// GetShop handler
// @Summary Shop contact
// @Description Shop name, phone, Zalo id and address
// @Tags Storefront
// @Produce json
// @Success 200 {object} model.ShopResponse
// @Router /shop [get]
func (s *RestHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, model.ShopResponse{
		Name:    s.Shop.Name,
		Phone:   s.Shop.Phone,
		ZaloID:  s.Shop.ZaloID,
		Address: s.Shop.Address,
	})
}

// ListProducts handler
// @Summary List products
// @Description Catalog listing with optional search, category, price range and sort
// @Tags Storefront
// @Produce json
// @Param search query string false "Name or code, case-insensitive"
// @Param category query string false "Category" Enums(Toilet, Lavabo, Shower, Faucet, Accessory, Combo)
// @Param sort query string false "Sort order" Enums(popular, asc, desc)
// @Param min_price query int false "Minimum price"
// @Param max_price query int false "Maximum price"
// @Success 200 {object} model.ProductListResponse
// @Failure 400 {object} ErrorResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.ProductFilter{
		Search:   q.Get("search"),
		Category: constant.Category(q.Get("category")),
		Sort:     q.Get("sort"),
	}

	var err error
	if filter.MinPrice, err = parsePrice(q.Get("min_price")); err != nil {
		writeError(w, err)
		return
	}
	if filter.MaxPrice, err = parsePrice(q.Get("max_price")); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&filter); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.Search(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func parsePrice(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return v, nil
}

// GetProduct handler
// @Summary Product detail
// @Tags Storefront
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.ProductDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res.Detail())
}

// ListNotifications handler
// @Summary Pending toasts
// @Description Toasts for the current session that have not expired yet
// @Tags Storefront
// @Produce json
// @Success 200 {object} model.NotificationListResponse
// @Router /notifications [get]
func (s *RestHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	items := s.NotificationApp.List(r.Context(), sessionID(r))
	writeSuccess(w, model.NotificationListResponse{Items: items})
}

// Login handler
// @Summary Admin login
// @Description Exchange the admin credentials for a bearer token
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req := model.LoginRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		s.fail(w, r, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Login(r.Context(), &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.notify(r, constant.ToastLoginSuccess, constant.SeveritySuccess)
	writeSuccess(w, res)
}

// Logout handler
// @Summary Admin logout
// @Description Revoke the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} nil
// @Failure 401 {object} ErrorResponse
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.AuthApp.Logout(r.Context(), bearerToken(r)); err != nil {
		s.fail(w, r, err)
		return
	}
	s.notify(r, constant.ToastLoggedOut, constant.SeverityInfo)
	writeSuccess(w, struct{}{})
}

// ExpireNotification handler
// @Summary Expire a toast
// @Description Called by the expiry consumer once a toast is due
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Param session path string true "Session ID"
// @Param id path int true "Toast ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Router /internal/v1/notifications/{session}/{id}/expire [post]
func (s *RestHandler) ExpireNotification(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	toastID, err := strconv.ParseUint(vars["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	removed := s.NotificationApp.Expire(r.Context(), vars["session"], toastID)
	writeSuccess(w, map[string]bool{"removed": removed})
}

func addedToCartText(name string) string {
	return fmt.Sprintf(constant.ToastAddedToCartFmt, name)
}
