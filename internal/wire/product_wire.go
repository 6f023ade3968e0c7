package wire

import (
	"campus-market/internal/adaptor"
	"campus-market/internal/data/repository"
	"campus-market/pkg/jwtauth"
	"campus-market/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	tokens *jwtauth.TokenService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/products", productHandler.List)
	r.Get("/product/{id}", productHandler.Get)

	// ==================== PROTECTED ROUTES ====================
	// Mutations need a resolved identity and an active account; role and
	// status are read fresh per request
	auth := middleware.Authenticate(tokens, log)
	active := middleware.RequireActive(repo.User, log)

	r.With(auth, active).Post("/product", productHandler.Create)
	r.With(auth, active).Put("/product/{id}", productHandler.Update)
	r.With(auth, active).Delete("/product/{id}", productHandler.Delete)
}
