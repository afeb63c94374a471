package middleware

import (
	"net/http"
	"strings"

	"wedding-portal/pkg/utils"

	"go.uber.org/zap"
)

// RoleResolver maps an access code to a portal role. The auth service
// implements it; keeping the interface here avoids an import cycle.
type RoleResolver interface {
	ResolveRole(code string) (string, bool)
}

// AccessCode middleware validates the Bearer access code and stores
// the normalized code plus its resolved role on the request context.
func AccessCode(resolver RoleResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing access code")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid authorization format. Use: Bearer <code>")
				return
			}

			code := utils.NormalizeCode(parts[1])
			role, ok := resolver.ResolveRole(code)
			if !ok {
				logger.Warn("Rejected unknown access code",
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid access code")
				return
			}

			ctx := utils.SetAccessContext(r.Context(), code, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin gates a route group to the admin role.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return requireRole(logger, "Admin access required", utils.RoleAdmin)
}

// Usher gates a route group to ushers; admins pass too since they can
// do everything ushers can.
func Usher(logger *zap.Logger) func(http.Handler) http.Handler {
	return requireRole(logger, "Usher access required", utils.RoleUsher, utils.RoleAdmin)
}

func requireRole(logger *zap.Logger, message string, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("Role check failed",
				zap.String("role", role),
				zap.String("path", r.URL.Path))
			utils.ResponseForbidden(w, message)
		})
	}
}
