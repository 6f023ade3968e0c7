package wire

import (
	"campus-market/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// All public: /me resolves its optional bearer token itself
	r.Post("/auth/university", authHandler.UniversityAuth)
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Get("/me", authHandler.Me)
	r.Post("/logout", authHandler.Logout)
}
