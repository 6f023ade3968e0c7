package entity

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

// User is an account keyed by email. PasswordHash is nil for accounts
// auto-provisioned from a university email until a password is set.
type User struct {
	ID               int64      `db:"user_id"`
	Email            string     `db:"email"`
	PasswordHash     *string    `db:"password"`
	FirstName        *string    `db:"first_name"`
	LastName         *string    `db:"last_name"`
	Role             UserRole   `db:"role"`
	Status           UserStatus `db:"status"`
	AvatarURL        *string    `db:"avatar_url"`
	ContactFacebook  *string    `db:"contact_facebook"`
	ContactLine      *string    `db:"contact_line"`
	ContactInstagram *string    `db:"contact_instagram"`
	CreatedAt        time.Time  `db:"created_at"`
}
