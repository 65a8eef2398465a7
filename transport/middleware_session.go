package transport

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	utilsContext "github.com/muhammadheryan/sanitary-shop/utils/context"
	"github.com/muhammadheryan/sanitary-shop/utils/logger"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "shop_session"
	sessionIDValue    = "sid"

	// SessionHeader lets cookie-less clients pick their own shopping session.
	SessionHeader = "X-Session-ID"
)

// SessionMiddleware attaches a shopping session id to the request context.
// The id comes from X-Session-ID when present, otherwise from a signed
// cookie that is issued on first visit.
func SessionMiddleware(store sessions.Store) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipSession(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			if id := strings.TrimSpace(r.Header.Get(SessionHeader)); id != "" {
				next.ServeHTTP(w, r.WithContext(utilsContext.WithSessionID(r.Context(), id)))
				return
			}

			// A tampered or stale cookie yields a fresh session alongside the error.
			session, err := store.Get(r, sessionCookieName)
			if err != nil {
				logger.Debug("[SessionMiddleware] discarding unreadable cookie", zap.String("error", err.Error()))
			}

			id, _ := session.Values[sessionIDValue].(string)
			if id == "" {
				id = uuid.NewString()
				session.Values[sessionIDValue] = id
				if err := session.Save(r, w); err != nil {
					logger.Error("[SessionMiddleware] err session.Save", zap.String("error", err.Error()))
				}
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithSessionID(r.Context(), id)))
		})
	}
}

func skipSession(path string) bool {
	return strings.HasPrefix(path, "/internal/") ||
		strings.HasPrefix(path, "/swagger/") ||
		path == "/metrics"
}
