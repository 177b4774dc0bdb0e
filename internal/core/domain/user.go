package domain

import (
	"errors"
	"time"
)

// Role values assignable to a user. Registration always produces a CLIENT;
// ADMIN accounts are provisioned out of band.
const (
	RoleClient = "CLIENT"
	RoleAdmin  = "ADMIN"
)

// UserStatus represents the account state of a user.
type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserInactive  UserStatus = "INACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is not active")
	ErrInvalidToken       = errors.New("invalid token")
	ErrPasswordMismatch   = errors.New("current password is incorrect")
)

// User models an account on the consultation platform. PasswordHash never
// leaves the process: it is excluded from JSON and stripped from responses.
type User struct {
	ID           string     `json:"id" bson:"_id"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"password_hash"`
	FirstName    string     `json:"first_name" bson:"first_name"`
	LastName     string     `json:"last_name" bson:"last_name"`
	Phone        string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Company      string     `json:"company,omitempty" bson:"company,omitempty"`
	Role         string     `json:"role" bson:"role"`
	Status       UserStatus `json:"status" bson:"status"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
}

// Sanitized returns a copy safe to embed in API responses.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
