package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"campus-market/internal/data/entity"
	"campus-market/internal/data/repository"
	"campus-market/internal/dto/request"
	"campus-market/internal/dto/response"
	"campus-market/pkg/upload"
	"campus-market/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserService interface {
	UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	UploadAvatar(ctx context.Context, userID int64, file *multipart.FileHeader) (*response.ProfileResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  upload.Storage
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, storage upload.Storage, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		log:      log,
	}
}

// UpdateProfile overwrites the whole profile: omitted or empty fields are
// persisted as NULL, not kept.
func (us *userService) UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	var firstName, lastName *string
	if req.Name != "" {
		first, last := utils.SplitName(req.Name)
		firstName = optional(first)
		lastName = last
	}

	user := &entity.User{
		ID:               userID,
		FirstName:        firstName,
		LastName:         lastName,
		AvatarURL:        optional(req.ProfileImage),
		ContactFacebook:  optional(req.ContactFacebook),
		ContactLine:      optional(req.ContactLine),
		ContactInstagram: optional(req.ContactInstagram),
	}

	if err := us.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("user not found")
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return us.refreshedProfile(ctx, userID)
}

func (us *userService) UploadAvatar(ctx context.Context, userID int64, file *multipart.FileHeader) (*response.ProfileResponse, error) {
	if file == nil {
		return nil, invalid("an avatar file is required")
	}

	url, err := us.storage.Save(file)
	if err != nil {
		us.log.Error("Failed to store avatar",
			zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("store avatar: %w", err)
	}

	if err := us.userRepo.UpdateAvatar(ctx, userID, url); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The account vanished between token verification and the write
			return nil, notFound("user not found")
		}
		return nil, fmt.Errorf("update avatar: %w", err)
	}

	us.log.Info("Avatar updated",
		zap.Int64("user_id", userID),
		zap.String("url", url))

	return us.refreshedProfile(ctx, userID)
}

func (us *userService) refreshedProfile(ctx context.Context, userID int64) (*response.ProfileResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload profile: %w", err)
	}
	if user == nil {
		return nil, notFound("user not found")
	}

	return &response.ProfileResponse{
		Success: true,
		User:    response.UserToProfile(user),
	}, nil
}
