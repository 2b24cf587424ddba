package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/job-board-api/internal/core/ports"
)

type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListMine handles GET /v1/notifications.
func (h *NotificationHandler) ListMine(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	notifications, err := h.service.ListMine(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkAsRead handles POST /v1/notifications/:id/read. Idempotent.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	n, err := h.service.MarkAsRead(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// MarkAllAsRead handles POST /v1/notifications/read-all.
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	updated, err := h.service.MarkAllAsRead(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"updated": updated})
}
