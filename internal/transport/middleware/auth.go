package middleware

import (
	"net/http"
	"strings"

	"github.com/vrusch/ModSkl/pkg/ctxutil"
)

// tokenValidator checks a warehouse token and returns its warehouse id
// and role.
type tokenValidator interface {
	ValidateToken(token string) (warehouseID, role string, err error)
}

// Auth resolves the bearer token into a warehouse identity. Requests
// without a token pass through anonymous; handlers that need a
// warehouse reject those via the missing context value. A present but
// invalid token is rejected here.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			warehouseID, role, err := validator.ValidateToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithWarehouseID(r.Context(), warehouseID)
			ctx = ctxutil.WithRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
