package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/restoops/timeclock-backend-go/internal/domain/employee"
	"github.com/restoops/timeclock-backend-go/internal/handler/http/response"
)

// RequireManager requires manager or owner role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Manager access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Manager access required")
			return
		}

		role := employee.Role(roleStr)
		if role != employee.RoleManager && role != employee.RoleOwner {
			response.Forbidden(w, "Manager access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
