package response

import (
	"campus-market/internal/data/entity"
	"campus-market/pkg/utils"
)

type UserSummary struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type AuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

type RegisterResponse struct {
	Success bool  `json:"success"`
	UserID  int64 `json:"user_id"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func UserToSummary(user *entity.User) UserSummary {
	return UserSummary{
		UserID: user.ID,
		Email:  user.Email,
		Name:   utils.JoinName(user.FirstName, user.LastName),
	}
}
