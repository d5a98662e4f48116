package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/car-market/application/user"
	"github.com/muhammadheryan/car-market/constant"
	utilsContext "github.com/muhammadheryan/car-market/utils/context"
	"github.com/muhammadheryan/car-market/utils/errors"
)

// AuthMiddleware requires a valid access_token cookie and exposes its claims
// to downstream handlers. Both a missing and an invalid cookie answer 400.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(constant.AccessTokenCookie)
			if err != nil || cookie.Value == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthenticated))
				return
			}

			claims, err := userApp.ValidateToken(r.Context(), cookie.Value)
			if err != nil {
				writeError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithClaims(r.Context(), claims)))
		})
	}
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := utilsContext.GetClaims(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthenticated))
				return
			}
			if !claims.Admin {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
