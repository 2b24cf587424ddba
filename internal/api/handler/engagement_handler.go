package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/job-board-api/internal/api/metrics"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

// SubscribeRateLimiter caps unauthenticated subscribe traffic per email.
type SubscribeRateLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
}

type EngagementHandler struct {
	service ports.EngagementService
	limiter SubscribeRateLimiter
}

func NewEngagementHandler(service ports.EngagementService, limiter SubscribeRateLimiter) *EngagementHandler {
	return &EngagementHandler{service: service, limiter: limiter}
}

type followRequest struct {
	TargetType string `json:"target_type" validate:"required,oneof=company category tag"`
	TargetID   string `json:"target_id"   validate:"required"`
}

type subscribeRequest struct {
	Email      string `json:"email"       validate:"required,email"`
	TargetType string `json:"target_type" validate:"required,oneof=company category tag"`
	TargetID   string `json:"target_id"   validate:"required"`
}

// Follow handles POST /v1/follows.
func (h *EngagementHandler) Follow(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req followRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	follow, err := h.service.Follow(c.Request().Context(), actor, req.TargetType, req.TargetID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, follow)
}

// Unfollow handles DELETE /v1/follows.
func (h *EngagementHandler) Unfollow(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req followRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Unfollow(c.Request().Context(), actor, req.TargetType, req.TargetID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "unfollowed"})
}

// ListFollows handles GET /v1/follows.
func (h *EngagementHandler) ListFollows(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	follows, err := h.service.ListFollows(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, follows)
}

// Subscribe handles POST /v1/subscriptions. Public: no account needed.
// Returns 201 for a new subscription, 200 when an unsubscribed tuple was
// reactivated in place.
func (h *EngagementHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if h.limiter != nil {
		ok, err := h.limiter.Allow(c.Request().Context(), req.Email)
		if err == nil && !ok {
			metrics.SubscribeRateLimitedTotal.Inc()
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many subscription requests; try again later")
		}
		// A limiter outage never blocks subscribes.
	}

	result, err := h.service.Subscribe(c.Request().Context(), req.Email, req.TargetType, req.TargetID)
	if err != nil {
		return err
	}
	if result.Reactivated {
		metrics.SubscriptionsTotal.WithLabelValues("reactivated").Inc()
		return c.JSON(http.StatusOK, result.Subscription)
	}
	metrics.SubscriptionsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, result.Subscription)
}

// Unsubscribe handles GET /v1/subscriptions/unsubscribe/:token — the target
// of the single-use link embedded in every subscription email.
func (h *EngagementHandler) Unsubscribe(c echo.Context) error {
	if err := h.service.Unsubscribe(c.Request().Context(), c.Param("token")); err != nil {
		return err
	}
	metrics.SubscriptionsTotal.WithLabelValues("unsubscribed").Inc()
	return c.JSON(http.StatusOK, map[string]string{"status": "unsubscribed"})
}
