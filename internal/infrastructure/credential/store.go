// Package credential implements the credential store over an injectable
// key/value backend.
package credential

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/movieflix/movieflix-api/internal/core/domain"
	"github.com/movieflix/movieflix-api/internal/core/ports"
)

// Persisted key names. Any structural change here breaks existing sessions;
// there is no schema versioning.
const (
	keyUsers       = "users"
	keyIsLoggedIn  = "isLoggedIn"
	keyUserEmail   = "userEmail"
	keyCurrentUser = "currentUser"
)

// Store persists the user collection, the session flag, and the remembered
// identity under fixed keys of a ports.KVStore. Every mutation of the user
// collection rewrites the whole persisted array; there is no transactional
// guarantee against concurrent writers.
type Store struct {
	kv ports.KVStore
}

func New(kv ports.KVStore) *Store {
	return &Store{kv: kv}
}

// storedUser is the persisted record shape.
type storedUser struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	CreatedAt    string `json:"createdAt"`
}

// Register appends user to the collection after verifying no existing
// record shares the email (case-sensitive exact match).
func (s *Store) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	users = append(users, storedUser{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.UTC().Format(time.RFC3339),
	})

	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}
	return user, nil
}

// FindByEmail scans the collection for an exact email match.
func (s *Store) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email {
			return toDomain(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *Store) SetSession(ctx context.Context, email string) error {
	if err := s.kv.Set(ctx, keyIsLoggedIn, []byte("true")); err != nil {
		return fmt.Errorf("set session flag: %w", err)
	}
	if err := s.kv.Set(ctx, keyUserEmail, []byte(email)); err != nil {
		return fmt.Errorf("set session email: %w", err)
	}
	return nil
}

func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.kv.Remove(ctx, keyIsLoggedIn); err != nil {
		return fmt.Errorf("clear session flag: %w", err)
	}
	if err := s.kv.Remove(ctx, keyUserEmail); err != nil {
		return fmt.Errorf("clear session email: %w", err)
	}
	return nil
}

// CurrentSession returns the active session or (nil, nil) when the flag is
// absent.
func (s *Store) CurrentSession(ctx context.Context) (*domain.Session, error) {
	flag, err := s.kv.Get(ctx, keyIsLoggedIn)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session flag: %w", err)
	}
	if string(flag) != "true" {
		return nil, nil
	}

	email, err := s.kv.Get(ctx, keyUserEmail)
	if err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		return nil, fmt.Errorf("read session email: %w", err)
	}
	return &domain.Session{Email: string(email)}, nil
}

func (s *Store) Remember(ctx context.Context, id *domain.RememberedIdentity) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("marshal remembered identity: %w", err)
	}
	return s.kv.Set(ctx, keyCurrentUser, raw)
}

func (s *Store) ForgetRemembered(ctx context.Context) error {
	return s.kv.Remove(ctx, keyCurrentUser)
}

func (s *Store) Remembered(ctx context.Context) (*domain.RememberedIdentity, error) {
	raw, err := s.kv.Get(ctx, keyCurrentUser)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read remembered identity: %w", err)
	}

	var id domain.RememberedIdentity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, fmt.Errorf("unmarshal remembered identity: %w", err)
	}
	return &id, nil
}

func (s *Store) loadUsers(ctx context.Context) ([]storedUser, error) {
	raw, err := s.kv.Get(ctx, keyUsers)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}

	var users []storedUser
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("unmarshal users: %w", err)
	}
	return users, nil
}

func (s *Store) saveUsers(ctx context.Context, users []storedUser) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	if err := s.kv.Set(ctx, keyUsers, raw); err != nil {
		return fmt.Errorf("write users: %w", err)
	}
	return nil
}

func toDomain(u storedUser) *domain.User {
	createdAt, _ := time.Parse(time.RFC3339, u.CreatedAt)
	return &domain.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    createdAt,
	}
}
