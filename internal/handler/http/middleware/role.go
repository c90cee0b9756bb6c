package middleware

import (
	"net/http"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
	"github.com/aryamhrt/internal-access-management-tools/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireSuperAdmin requires the super_admin role
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrSuperAdminRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrSuperAdminRequired)
			return
		}

		if role != string(user.RoleSuperAdmin) {
			response.HandleError(w, user.ErrSuperAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin requires app_admin or super_admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		role := user.Role(roleStr)
		if role != user.RoleAppAdmin && role != user.RoleSuperAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
