package middleware

import (
	"net/http"
	"strings"

	"campus-market/internal/data/entity"
	"campus-market/internal/data/repository"
	"campus-market/pkg/jwtauth"
	"campus-market/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into {user_id, email} claims and
// attaches them to the request context.
func Authenticate(tokens *jwtauth.TokenService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates an already-authenticated request on the account's
// current role and status, read fresh from the database so role changes and
// deactivation take effect immediately rather than at token expiry. An
// empty role requires only an active account.
func RequireRole(userRepo repository.UserRepository, role entity.UserRole, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Role check: failed to get user",
					zap.Error(err), zap.Int64("user_id", userID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || user.Status != entity.StatusActive {
				logger.Warn("Role check: inactive or missing account",
					zap.Int64("user_id", userID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Forbidden")
				return
			}

			if role != "" && user.Role != role {
				logger.Warn("Role check: insufficient role",
					zap.Int64("user_id", userID),
					zap.String("role", string(user.Role)),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Insufficient role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireActive is the role gate with no required role: any active account
// passes.
func RequireActive(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return RequireRole(userRepo, "", logger)
}
