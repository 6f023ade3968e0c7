package wire

import (
	"campus-market/internal/adaptor"
	"campus-market/pkg/jwtauth"
	"campus-market/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	tokens *jwtauth.TokenService,
	log *zap.Logger,
) {
	auth := middleware.Authenticate(tokens, log)

	r.With(auth).Put("/me", userHandler.UpdateMe)
	r.With(auth).Post("/me/avatar", userHandler.UploadAvatar)
}
