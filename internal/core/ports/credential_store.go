package ports

import (
	"context"

	"github.com/movieflix/movieflix-api/internal/core/domain"
)

// CredentialStore persists registered users, the active session flag, and
// the optional remembered identity.
type CredentialStore interface {
	// Register appends the user to the persisted collection. It fails with
	// domain.ErrDuplicateEmail when the email is already taken (exact,
	// case-sensitive match).
	Register(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns the user with the given email or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	SetSession(ctx context.Context, email string) error
	ClearSession(ctx context.Context) error
	// CurrentSession returns the active session, or (nil, nil) when absent.
	CurrentSession(ctx context.Context) (*domain.Session, error)

	Remember(ctx context.Context, id *domain.RememberedIdentity) error
	ForgetRemembered(ctx context.Context) error
	// Remembered returns the stored identity, or (nil, nil) when absent.
	Remembered(ctx context.Context) (*domain.RememberedIdentity, error)
}
