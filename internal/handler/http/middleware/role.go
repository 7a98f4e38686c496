package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/user"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/handler/http/response"
)

// RequirePayrollAdmin gates the mutating payroll routes: period creation
// and locking, invoice generation, approval and settlement.
func RequirePayrollAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		if !user.CanManagePayroll(user.Role(roleStr)) {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
