package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/job-board-api/internal/api/middleware"
	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

type stubEngagementService struct {
	subscribeResult *ports.SubscribeResult
	subscribeErr    error
	subscribedEmail string
	unfollowed      bool
}

func (s *stubEngagementService) Follow(_ context.Context, actor *domain.User, targetType, targetID string) (*domain.Follow, error) {
	return &domain.Follow{
		ID:     "follow_1",
		UserID: actor.ID,
		Target: domain.TargetRef{Type: domain.TargetType(targetType), ID: targetID},
	}, nil
}
func (s *stubEngagementService) Unfollow(context.Context, *domain.User, string, string) error {
	s.unfollowed = true
	return nil
}
func (s *stubEngagementService) ListFollows(context.Context, *domain.User) ([]*domain.Follow, error) {
	return nil, nil
}
func (s *stubEngagementService) Subscribe(_ context.Context, email, _, _ string) (*ports.SubscribeResult, error) {
	s.subscribedEmail = email
	return s.subscribeResult, s.subscribeErr
}
func (s *stubEngagementService) Unsubscribe(context.Context, string) error { return nil }

type stubLimiter struct {
	allow bool
	err   error
}

func (s *stubLimiter) Allow(context.Context, string) (bool, error) { return s.allow, s.err }

func subscribeContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const subscribeBody = `{"email":"jane@example.com","target_type":"category","target_id":"category_1"}`

func followContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, "/v1/follows", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserKey, &domain.User{ID: "user_1", Status: domain.UserActive})
	return c, rec
}

const followBody = `{"target_type":"company","target_id":"company_1"}`

func TestEngagementHandler_FollowCreated(t *testing.T) {
	h := NewEngagementHandler(&stubEngagementService{}, &stubLimiter{allow: true})
	c, rec := followContext(http.MethodPost, followBody)

	if err := h.Follow(c); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for new follow, got %d", rec.Code)
	}
}

func TestEngagementHandler_UnfollowReturns200(t *testing.T) {
	svc := &stubEngagementService{}
	h := NewEngagementHandler(svc, &stubLimiter{allow: true})
	c, rec := followContext(http.MethodDelete, followBody)

	if err := h.Unfollow(c); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for unfollow, got %d", rec.Code)
	}
	if !svc.unfollowed {
		t.Fatalf("service was never reached")
	}
}

func TestEngagementHandler_SubscribeCreated(t *testing.T) {
	svc := &stubEngagementService{
		subscribeResult: &ports.SubscribeResult{Subscription: &domain.Subscription{ID: "subscription_1"}},
	}
	h := NewEngagementHandler(svc, &stubLimiter{allow: true})
	c, rec := subscribeContext(subscribeBody)

	if err := h.Subscribe(c); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for new subscription, got %d", rec.Code)
	}
	if svc.subscribedEmail != "jane@example.com" {
		t.Fatalf("unexpected email passed to service: %q", svc.subscribedEmail)
	}
}

func TestEngagementHandler_SubscribeReactivatedReturns200(t *testing.T) {
	svc := &stubEngagementService{
		subscribeResult: &ports.SubscribeResult{
			Subscription: &domain.Subscription{ID: "subscription_1"},
			Reactivated:  true,
		},
	}
	h := NewEngagementHandler(svc, &stubLimiter{allow: true})
	c, rec := subscribeContext(subscribeBody)

	if err := h.Subscribe(c); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for reactivation, got %d", rec.Code)
	}
}

func TestEngagementHandler_SubscribeRateLimited(t *testing.T) {
	svc := &stubEngagementService{}
	h := NewEngagementHandler(svc, &stubLimiter{allow: false})
	c, _ := subscribeContext(subscribeBody)

	err := h.Subscribe(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
	if svc.subscribedEmail != "" {
		t.Fatalf("rate-limited request must not reach the service")
	}
}

func TestEngagementHandler_SubscribeLimiterOutageFailsOpen(t *testing.T) {
	svc := &stubEngagementService{
		subscribeResult: &ports.SubscribeResult{Subscription: &domain.Subscription{ID: "subscription_1"}},
	}
	h := NewEngagementHandler(svc, &stubLimiter{allow: false, err: context.DeadlineExceeded})
	c, rec := subscribeContext(subscribeBody)

	if err := h.Subscribe(c); err != nil {
		t.Fatalf("limiter outage must not block subscribes: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestEngagementHandler_SubscribeValidatesEmail(t *testing.T) {
	h := NewEngagementHandler(&stubEngagementService{}, &stubLimiter{allow: true})
	c, _ := subscribeContext(`{"email":"not-an-email","target_type":"category","target_id":"x"}`)

	err := h.Subscribe(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
