package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/movieflix/movieflix-api/internal/core/domain"
	"github.com/movieflix/movieflix-api/internal/core/ports"
)

type stubCredStore struct {
	users      map[string]*domain.User
	session    *domain.Session
	remembered *domain.RememberedIdentity
}

func newStubCredStore() *stubCredStore {
	return &stubCredStore{users: make(map[string]*domain.User)}
}

func (s *stubCredStore) Register(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := s.users[user.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}
	clone := *user
	s.users[user.Email] = &clone
	return &clone, nil
}

func (s *stubCredStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *stubCredStore) SetSession(_ context.Context, email string) error {
	s.session = &domain.Session{Email: email}
	return nil
}

func (s *stubCredStore) ClearSession(_ context.Context) error {
	s.session = nil
	return nil
}

func (s *stubCredStore) CurrentSession(_ context.Context) (*domain.Session, error) {
	return s.session, nil
}

func (s *stubCredStore) Remember(_ context.Context, id *domain.RememberedIdentity) error {
	s.remembered = id
	return nil
}

func (s *stubCredStore) ForgetRemembered(_ context.Context) error {
	s.remembered = nil
	return nil
}

func (s *stubCredStore) Remembered(_ context.Context) (*domain.RememberedIdentity, error) {
	return s.remembered, nil
}

func validSignup() ports.SignupInput {
	return ports.SignupInput{
		Username:        "jo",
		Email:           "jo@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	store := newStubCredStore()
	svc := NewAuthService(store, zerolog.Nop())

	result, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if result.Redirect != "/login" {
		t.Fatalf("expected redirect /login, got %q", result.Redirect)
	}
	if result.User.ID == "" {
		t.Fatalf("expected generated user ID")
	}
	if result.User.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
	if result.User.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if store.session == nil || store.session.Email != "jo@x.com" {
		t.Fatalf("expected session for jo@x.com, got %+v", store.session)
	}
}

// The email check is an unanchored substring match, so surrounding junk is
// tolerated as long as something of the shape x@y.z appears.
func TestAuthService_Signup_LooseEmailAccepted(t *testing.T) {
	store := newStubCredStore()
	svc := NewAuthService(store, zerolog.Nop())

	in := validSignup()
	in.Email = "a b@c.d"

	if _, err := svc.Signup(context.Background(), in); err != nil {
		t.Fatalf("expected loose email to pass validation, got %v", err)
	}
	if len(store.users) != 1 {
		t.Fatalf("expected user record, got %d", len(store.users))
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ports.SignupInput)
		field   string
		message string
	}{
		{"blank username", func(in *ports.SignupInput) { in.Username = "   " }, "username", "Username is required"},
		{"missing email", func(in *ports.SignupInput) { in.Email = "" }, "email", "Email is required"},
		{"email without at", func(in *ports.SignupInput) { in.Email = "jo.x.com" }, "email", "Email is invalid"},
		{"email without dot", func(in *ports.SignupInput) { in.Email = "jo@xcom" }, "email", "Email is invalid"},
		{"email with space after at", func(in *ports.SignupInput) { in.Email = "jo@ x.com" }, "email", "Email is invalid"},
		{"missing password", func(in *ports.SignupInput) {
			in.Password = ""
			in.ConfirmPassword = ""
		}, "password", "Password is required"},
		{"short password", func(in *ports.SignupInput) {
			in.Password = "five5"
			in.ConfirmPassword = "five5"
		}, "password", "Password must be at least 6 characters"},
		{"mismatched confirmation", func(in *ports.SignupInput) { in.ConfirmPassword = "other12" }, "confirmPassword", "Passwords doesn't match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStubCredStore()
			svc := NewAuthService(store, zerolog.Nop())

			in := validSignup()
			tt.mutate(&in)

			_, err := svc.Signup(context.Background(), in)
			var fe domain.FieldErrors
			if !errors.As(err, &fe) {
				t.Fatalf("expected FieldErrors, got %v", err)
			}
			if fe[tt.field] != tt.message {
				t.Fatalf("expected %q on %q, got %+v", tt.message, tt.field, fe)
			}
			if len(store.users) != 0 {
				t.Fatalf("no record may be created on validation failure")
			}
			if store.session != nil {
				t.Fatalf("session must not be set on validation failure")
			}
		})
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	store := newStubCredStore()
	svc := NewAuthService(store, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	_ = store.ClearSession(context.Background())

	in := validSignup()
	in.Username = "other"
	in.Password = "different1"
	in.ConfirmPassword = "different1"
	if _, err := svc.Signup(context.Background(), in); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(store.users) != 1 {
		t.Fatalf("collection must be unchanged on duplicate signup")
	}
	if store.session != nil {
		t.Fatalf("session must not be set on duplicate signup")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	store := newStubCredStore()
	svc := NewAuthService(store, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	_ = store.ClearSession(context.Background())

	result, err := svc.Login(context.Background(), ports.LoginInput{Email: "jo@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Redirect != "/home" {
		t.Fatalf("expected redirect /home, got %q", result.Redirect)
	}
	if store.session == nil || store.session.Email != "jo@x.com" {
		t.Fatalf("expected session for jo@x.com, got %+v", store.session)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	store := newStubCredStore()
	svc := NewAuthService(store, zerolog.Nop())

	_, err := svc.Login(context.Background(), ports.LoginInput{Email: "ghost@x.com", Password: "secret1"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if store.session != nil {
		t.Fatalf("session must not be mutated on failed login")
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	store := newStubCredStore()
	svc := NewAuthService(store, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	_ = store.ClearSession(context.Background())

	_, err := svc.Login(context.Background(), ports.LoginInput{Email: "jo@x.com", Password: "wrong12"})
	if !errors.Is(err, domain.ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if store.session != nil {
		t.Fatalf("session must not be mutated on failed login")
	}
}

func TestAuthService_Login_Remember(t *testing.T) {
	store := newStubCredStore()
	svc := NewAuthService(store, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), ports.LoginInput{Email: "jo@x.com", Password: "secret1", Remember: true}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if store.remembered == nil || store.remembered.Username != "jo" || store.remembered.Email != "jo@x.com" {
		t.Fatalf("expected remembered identity, got %+v", store.remembered)
	}

	// Logging in again without the checkbox clears the snapshot.
	if _, err := svc.Login(context.Background(), ports.LoginInput{Email: "jo@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if store.remembered != nil {
		t.Fatalf("expected remembered identity cleared, got %+v", store.remembered)
	}
}

func TestAuthService_Logout(t *testing.T) {
	store := newStubCredStore()
	svc := NewAuthService(store, zerolog.Nop())

	store.session = &domain.Session{Email: "jo@x.com"}
	store.remembered = &domain.RememberedIdentity{Email: "jo@x.com", Username: "jo"}

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if store.session != nil {
		t.Fatalf("expected session cleared")
	}
	if store.remembered == nil {
		t.Fatalf("remembered identity must survive logout")
	}
}

func TestAuthService_Session(t *testing.T) {
	store := newStubCredStore()
	svc := NewAuthService(store, zerolog.Nop())

	info, err := svc.Session(context.Background())
	if err != nil {
		t.Fatalf("session lookup failed: %v", err)
	}
	if info.LoggedIn {
		t.Fatalf("expected logged out, got %+v", info)
	}

	store.session = &domain.Session{Email: "jo@x.com"}
	store.remembered = &domain.RememberedIdentity{Email: "jo@x.com", Username: "jo"}

	info, err = svc.Session(context.Background())
	if err != nil {
		t.Fatalf("session lookup failed: %v", err)
	}
	if !info.LoggedIn || info.Email != "jo@x.com" || info.Username != "jo" {
		t.Fatalf("unexpected session info: %+v", info)
	}
}

func TestNewUserID_Unique(t *testing.T) {
	a := newUserID()
	time.Sleep(2 * time.Millisecond)
	b := newUserID()
	if a == b {
		t.Fatalf("expected distinct IDs, got %q twice", a)
	}
}
