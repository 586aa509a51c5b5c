package ports

import (
	"context"

	"github.com/movieflix/movieflix-api/internal/core/domain"
)

// SignupInput carries the signup form fields. JSON tags match the form
// field names used in error maps.
type SignupInput struct {
	Username        string `json:"username" validate:"notblank"`
	Email           string `json:"email" validate:"notblank,simple_email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
	Remember        bool   `json:"rememberMe"`
}

// LoginInput carries the login form fields.
type LoginInput struct {
	Email    string `json:"email" validate:"notblank,simple_email"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"rememberMe"`
}

// AuthResult is returned on successful signup or login. Redirect is the
// route the client should navigate to next.
type AuthResult struct {
	User     *domain.User `json:"user"`
	Redirect string       `json:"redirect"`
}

// SessionInfo describes the current session for the navbar greeting.
type SessionInfo struct {
	LoggedIn bool   `json:"logged_in"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*SessionInfo, error)
}
