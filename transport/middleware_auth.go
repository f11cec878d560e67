package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/dimasprsty/storefront/application/auth"
	"github.com/dimasprsty/storefront/constant"
	utilsContext "github.com/dimasprsty/storefront/utils/context"
	"github.com/dimasprsty/storefront/utils/errors"
)

// AuthMiddleware validates the bearer JWT and embeds the resolved session
// into the request context. Public endpoints pass through untouched.
func AuthMiddleware(authApp auth.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(header, "Bearer ")

			sess, err := authApp.ValidateToken(r.Context(), token)
			if err != nil {
				// Expired or unknown session: the client must log in again.
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	if path == "/login" || path == "/register" || path == "/admin/login" {
		return true
	}
	if method == http.MethodGet {
		if path == "/products" || path == "/products/featured" || path == "/categories" {
			return true
		}
		if strings.HasPrefix(path, "/products/") {
			return true
		}
	}

	return false
}

// AdminMiddleware gates the back office behind the admin role. It runs after
// AuthMiddleware, so the session is already in the context.
func AdminMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := utilsContext.GetSession(r.Context())
			if !ok || sess.Role != auth.RoleAdmin {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
