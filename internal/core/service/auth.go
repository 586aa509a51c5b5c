package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/movieflix/movieflix-api/internal/core/domain"
	"github.com/movieflix/movieflix-api/internal/core/ports"
)

// AuthService implements signup, login, logout, and session lookup on top
// of the credential store.
type AuthService struct {
	store ports.CredentialStore
	log   zerolog.Logger
}

func NewAuthService(store ports.CredentialStore, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, log: log}
}

// Signup validates the form, creates the user record, and sets the session.
// On success the caller is directed back to /login: the user must log in
// explicitly after signing up.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
	if errs := checkForm(in); len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           newUserID(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.store.Register(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.applyRemember(ctx, created.Email, created.Username, in.Remember); err != nil {
		return nil, err
	}
	if err := s.store.SetSession(ctx, created.Email); err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Msg("user registered")

	return &ports.AuthResult{User: created, Redirect: "/login"}, nil
}

// Login validates the form and checks the credentials against the store.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	if errs := checkForm(in); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.store.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrInvalidPassword
	}

	if err := s.applyRemember(ctx, user.Email, user.Username, in.Remember); err != nil {
		return nil, err
	}
	if err := s.store.SetSession(ctx, user.Email); err != nil {
		return nil, err
	}

	s.log.Info().Str("email", user.Email).Msg("user logged in")

	return &ports.AuthResult{User: user, Redirect: "/home"}, nil
}

// Logout clears the session flag. The remembered identity survives logout.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.ClearSession(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("user logged out")
	return nil
}

// Session reports the current session state. The username comes from the
// remembered identity when one is stored.
func (s *AuthService) Session(ctx context.Context) (*ports.SessionInfo, error) {
	sess, err := s.store.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return &ports.SessionInfo{}, nil
	}

	info := &ports.SessionInfo{LoggedIn: true, Email: sess.Email}
	remembered, err := s.store.Remembered(ctx)
	if err != nil {
		return nil, err
	}
	if remembered != nil {
		info.Username = remembered.Username
	}
	return info, nil
}

// applyRemember stores or clears the remembered identity depending on the
// checkbox state, mirroring the forms' behavior.
func (s *AuthService) applyRemember(ctx context.Context, email, username string, remember bool) error {
	if remember {
		return s.store.Remember(ctx, &domain.RememberedIdentity{Email: email, Username: username})
	}
	return s.store.ForgetRemembered(ctx)
}

// newUserID returns a creation-time-unique opaque ID.
func newUserID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
