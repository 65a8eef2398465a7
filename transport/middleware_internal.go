package transport

import (
	"crypto/subtle"
	"net/http"
)

// InternalMiddleware checks for static API key in header. An empty key
// disables the internal routes altogether.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	expected := []byte("Bearer " + apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get("Authorization"))
			if apiKey == "" || subtle.ConstantTimeCompare(got, expected) != 1 {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
