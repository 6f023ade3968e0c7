package usecase

import (
	"campus-market/internal/data/repository"
	"campus-market/pkg/jwtauth"
	"campus-market/pkg/upload"
	"campus-market/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Product ProductService
}

func NewService(
	repo *repository.Repository,
	tokens *jwtauth.TokenService,
	storage upload.Storage,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, tokens, config, log),
		User:    NewUserService(repo.User, storage, log),
		Product: NewProductService(repo.Product, storage, log),
	}
}
