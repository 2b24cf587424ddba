package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

// stubAuthService resolves any subject to a fixed user, or fails.
type stubAuthService struct {
	user *domain.User
	err  error
}

func (s *stubAuthService) Authenticate(_ context.Context, userID string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u := *s.user
	u.ID = userID
	return &u, nil
}

func (s *stubAuthService) Signup(context.Context, ports.SignupInput) (*domain.User, error) {
	return nil, nil
}
func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	return "", nil, nil
}
func (s *stubAuthService) Invite(context.Context, *domain.User, ports.InviteInput) (*domain.User, error) {
	return nil, nil
}
func (s *stubAuthService) AcceptInvite(context.Context, ports.AcceptInviteInput) (string, *domain.User, error) {
	return "", nil, nil
}
func (s *stubAuthService) VerifyEmail(context.Context, string) error           { return nil }
func (s *stubAuthService) ForgotPassword(context.Context, string) error        { return nil }
func (s *stubAuthService) ResetPassword(context.Context, string, string) error { return nil }
func (s *stubAuthService) DeleteAccount(context.Context, *domain.User, string) error {
	return nil
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "secret", jwt.MapClaims{
		"sub":          "user_1",
		"role":         "user",
		"account_type": "employer",
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	auth := &stubAuthService{user: &domain.User{
		Role:        domain.RoleUser,
		AccountType: domain.AccountEmployer,
		Status:      domain.UserActive,
	}}

	called := false
	mw := Auth("secret", auth)
	handler := mw(func(c echo.Context) error {
		called = true
		user, _ := c.Get(UserKey).(*domain.User)
		if user == nil {
			t.Fatalf("user not set")
		}
		if user.ID != "user_1" {
			t.Fatalf("expected user_1, got %s", user.ID)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", &stubAuthService{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", &stubAuthService{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", &stubAuthService{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingSubject(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "secret", jwt.MapClaims{"role": "user"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret", &stubAuthService{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_DisabledAccount(t *testing.T) {
	e := echo.New()
	signed := signToken(t, "secret", jwt.MapClaims{"sub": "user_1"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	auth := &stubAuthService{err: &domain.Error{Kind: domain.ErrUnauthenticated, Msg: "account is disabled"}}
	mw := Auth("secret", auth)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if err == nil {
		t.Fatalf("expected error for disabled account")
	}
}
