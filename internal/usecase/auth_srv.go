package usecase

import (
	"context"
	"fmt"
	"strings"

	"campus-market/internal/data/entity"
	"campus-market/internal/data/repository"
	"campus-market/internal/dto/request"
	"campus-market/internal/dto/response"
	"campus-market/pkg/jwtauth"
	"campus-market/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	UniversityAuth(ctx context.Context, req *request.UniversityAuthRequest) (*response.AuthResponse, error)
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Me(ctx context.Context, token string) (*response.MeResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *jwtauth.TokenService
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens *jwtauth.TokenService,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		config:   config,
		log:      log,
	}
}

// isUniversityEmail checks the address against the configured allow-list
// with a case-insensitive @domain suffix match.
func (s *authService) isUniversityEmail(email string) bool {
	lc := strings.ToLower(email)
	for _, domain := range strings.Split(s.config.Auth.UniversityDomains, ",") {
		domain = strings.TrimSpace(strings.ToLower(domain))
		if domain != "" && strings.HasSuffix(lc, "@"+domain) {
			return true
		}
	}
	return false
}

// UniversityAuth logs a university account in, auto-provisioning it on
// first contact. Idempotent on identity: the same email always resolves to
// the same user id.
func (s *authService) UniversityAuth(ctx context.Context, req *request.UniversityAuthRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, invalid("validation failed: " + utils.FormatValidationErrors(errs))
	}

	if !s.isUniversityEmail(req.Email) {
		s.log.Warn("Non-university email rejected", zap.String("email", req.Email))
		return nil, forbidden("a university email address is required")
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}

	if user == nil {
		displayName := req.Name
		if displayName == "" {
			displayName = strings.SplitN(req.Email, "@", 2)[0]
		}
		first, last := utils.SplitName(displayName)

		user = &entity.User{
			Email:     req.Email,
			FirstName: optional(first),
			LastName:  last,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("auto-provision account: %w", err)
		}

		s.log.Info("Auto-provisioned university account",
			zap.Int64("user_id", user.ID),
			zap.String("email", user.Email))
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &response.AuthResponse{
		Success: true,
		Token:   token,
		User:    response.UserToSummary(user),
	}, nil
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, invalid("validation failed: " + utils.FormatValidationErrors(errs))
	}

	if !s.isUniversityEmail(req.Email) {
		s.log.Warn("Non-university email rejected", zap.String("email", req.Email))
		return nil, forbidden("a university email address is required")
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, conflict("email is already registered")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: &hash,
		FirstName:    optional(req.FirstName),
		LastName:     optional(req.LastName),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	// No token: registration does not auto-login
	return &response.RegisterResponse{Success: true, UserID: user.ID}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, invalid("validation failed: " + utils.FormatValidationErrors(errs))
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// One message for every failure path so responses do not reveal
	// whether the account exists or has a password set.
	if user == nil || user.PasswordHash == nil {
		s.log.Warn("Login for unknown account or unset password", zap.String("email", req.Email))
		return nil, unauthorized("invalid email or password")
	}

	if !utils.CheckPasswordHash(req.Password, *user.PasswordHash) {
		s.log.Warn("Login password mismatch", zap.Int64("user_id", user.ID))
		return nil, unauthorized("invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		Success: true,
		Token:   token,
		User:    response.UserToSummary(user),
	}, nil
}

// Me introspects a bearer token. Any verification or lookup failure
// reports logged-out rather than an error.
func (s *authService) Me(ctx context.Context, token string) (*response.MeResponse, error) {
	if token == "" {
		return &response.MeResponse{LoggedIn: false}, nil
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		s.log.Debug("Session introspection with invalid token", zap.Error(err))
		return &response.MeResponse{LoggedIn: false}, nil
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		s.log.Error("Failed to load profile for introspection",
			zap.Error(err), zap.Int64("user_id", claims.UserID))
		return &response.MeResponse{LoggedIn: false}, nil
	}
	if user == nil {
		return &response.MeResponse{LoggedIn: false}, nil
	}

	return &response.MeResponse{
		LoggedIn: true,
		User:     response.UserToProfile(user),
	}, nil
}
