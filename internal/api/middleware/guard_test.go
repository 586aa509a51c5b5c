package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/movieflix/movieflix-api/internal/core/domain"
	"github.com/movieflix/movieflix-api/internal/core/ports"
)

type stubCredStore struct {
	session *domain.Session
}

func (s *stubCredStore) Register(context.Context, *domain.User) (*domain.User, error) {
	return nil, nil
}
func (s *stubCredStore) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (s *stubCredStore) SetSession(context.Context, string) error { return nil }
func (s *stubCredStore) ClearSession(context.Context) error       { return nil }
func (s *stubCredStore) CurrentSession(context.Context) (*domain.Session, error) {
	return s.session, nil
}
func (s *stubCredStore) Remember(context.Context, *domain.RememberedIdentity) error { return nil }
func (s *stubCredStore) ForgetRemembered(context.Context) error                     { return nil }
func (s *stubCredStore) Remembered(context.Context) (*domain.RememberedIdentity, error) {
	return nil, nil
}

var _ ports.CredentialStore = (*stubCredStore)(nil)

func TestAuthorize(t *testing.T) {
	if d := Authorize(true); !d.Allowed || d.Location != "" {
		t.Fatalf("expected allow, got %+v", d)
	}
	if d := Authorize(false); d.Allowed || d.Location != "/login" {
		t.Fatalf("expected redirect to /login, got %+v", d)
	}
}

func TestGuard_RedirectsWithoutSession(t *testing.T) {
	e := echo.New()
	store := &stubCredStore{}
	h := Guard(store)(func(c echo.Context) error {
		return c.String(http.StatusOK, "protected")
	})

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestGuard_AdmitsWithSession(t *testing.T) {
	e := echo.New()
	store := &stubCredStore{session: &domain.Session{Email: "jo@x.com"}}
	h := Guard(store)(func(c echo.Context) error {
		return c.String(http.StatusOK, "protected")
	})

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "protected" {
		t.Fatalf("expected wrapped view rendered unchanged, got %q", rec.Body.String())
	}
}
