package transport

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/muhammadheryan/garment-erp/constant"
	utilsContext "github.com/muhammadheryan/garment-erp/utils/context"
	"github.com/muhammadheryan/garment-erp/utils/errors"
)

// AuthMiddleware verifies bearer tokens issued by the auth service and puts
// the user_id claim on the request context. /swagger/ and /internal/ are
// skipped; internal routes carry their own API key check.
func AuthMiddleware(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			userID, err := parseUserID(strings.TrimPrefix(auth, "Bearer "), secret)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithUserID(r.Context(), userID)))
		})
	}
}

// parseUserID validates an HMAC signed token and returns its user_id claim.
func parseUserID(raw, secret string) (uint64, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("unexpected claims type %T", token.Claims)
	}
	// expiry is checked by Parse when present; tokens without one are refused
	if exp, err := claims.GetExpirationTime(); err != nil || exp == nil {
		return 0, fmt.Errorf("missing exp claim")
	}
	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, fmt.Errorf("missing user_id claim")
	}
	return uint64(id), nil
}

func isPublicPath(path string) bool {
	return strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/")
}
