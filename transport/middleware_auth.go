package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/sanitary-shop/application/auth"
	"github.com/muhammadheryan/sanitary-shop/constant"
	utilsContext "github.com/muhammadheryan/sanitary-shop/utils/context"
	"github.com/muhammadheryan/sanitary-shop/utils/errors"
)

// AuthMiddleware returns a middleware that validates admin bearer tokens using AuthApp.
// Only the admin area and logout require a token; the storefront is public.
func AuthMiddleware(authApp auth.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isProtectedPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			username, err := authApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithAdminUser(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isProtectedPath defines which endpoints need an admin token
func isProtectedPath(path string) bool {
	return strings.HasPrefix(path, "/admin/") || path == "/logout"
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
