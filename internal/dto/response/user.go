package response

import (
	"campus-market/internal/data/entity"
	"campus-market/pkg/utils"
)

type UserProfile struct {
	UserID           int64           `json:"user_id"`
	Email            string          `json:"email"`
	Name             string          `json:"name"`
	FirstName        *string         `json:"first_name"`
	LastName         *string         `json:"last_name"`
	Role             entity.UserRole `json:"role"`
	ProfileImage     *string         `json:"profile_image"`
	ContactFacebook  *string         `json:"contact_facebook"`
	ContactLine      *string         `json:"contact_line"`
	ContactInstagram *string         `json:"contact_instagram"`
}

// MeResponse is the session introspection shape: never an error, just
// whether the bearer resolves to a live account.
type MeResponse struct {
	LoggedIn bool         `json:"loggedIn"`
	User     *UserProfile `json:"user,omitempty"`
}

type ProfileResponse struct {
	Success bool         `json:"success"`
	User    *UserProfile `json:"user"`
}

func UserToProfile(user *entity.User) *UserProfile {
	return &UserProfile{
		UserID:           user.ID,
		Email:            user.Email,
		Name:             utils.JoinName(user.FirstName, user.LastName),
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Role:             user.Role,
		ProfileImage:     user.AvatarURL,
		ContactFacebook:  user.ContactFacebook,
		ContactLine:      user.ContactLine,
		ContactInstagram: user.ContactInstagram,
	}
}
