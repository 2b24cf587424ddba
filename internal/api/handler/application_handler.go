package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/job-board-api/internal/api/metrics"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type applyRequest struct {
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=5000"`
}

type updateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed shortlisted rejected hired"`
}

// Apply handles POST /v1/jobs/:id/apply.
func (h *ApplicationHandler) Apply(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.Apply(c.Request().Context(), actor, c.Param("id"), req.CoverLetter)
	if err != nil {
		return err
	}
	metrics.ApplicationsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, app)
}

// ListForJob handles GET /v1/jobs/:id/applications for the job's owner.
func (h *ApplicationHandler) ListForJob(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	apps, err := h.service.ListForJob(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// ListMine handles GET /v1/applications for the applicant.
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	apps, err := h.service.ListMine(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// UpdateStatus handles PATCH /v1/applications/:id/status for the job's owner.
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req updateApplicationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.UpdateStatus(c.Request().Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}
