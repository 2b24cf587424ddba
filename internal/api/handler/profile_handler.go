package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type skillRequest struct {
	Name  string `json:"name"  validate:"required"`
	Level int    `json:"level" validate:"required,gte=1,lte=5"`
}

type linkRequest struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url"  validate:"required,url"`
}

type upsertProfileRequest struct {
	Title    *string        `json:"title"`
	Bio      *string        `json:"bio"`
	Skills   []skillRequest `json:"skills" validate:"omitempty,dive"`
	Links    []linkRequest  `json:"links"  validate:"omitempty,dive"`
	IsPublic *bool          `json:"is_public"`
}

// Upsert creates or patches the actor's profile (PUT /v1/profile).
func (h *ProfileHandler) Upsert(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req upsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpsertProfileInput{
		Title:    req.Title,
		Bio:      req.Bio,
		IsPublic: req.IsPublic,
	}
	if req.Skills != nil {
		in.Skills = make([]domain.Skill, 0, len(req.Skills))
		for _, s := range req.Skills {
			in.Skills = append(in.Skills, domain.Skill{Name: s.Name, Level: s.Level})
		}
	}
	if req.Links != nil {
		in.Links = make([]domain.Link, 0, len(req.Links))
		for _, l := range req.Links {
			in.Links = append(in.Links, domain.Link{Name: l.Name, URL: l.URL})
		}
	}

	profile, err := h.service.Upsert(c.Request().Context(), actor, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Get returns the actor's own profile (GET /v1/profile).
func (h *ProfileHandler) Get(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	profile, err := h.service.Get(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// AddSkill appends a skill (POST /v1/profile/skills).
func (h *ProfileHandler) AddSkill(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req skillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.AddSkill(c.Request().Context(), actor, req.Name, req.Level)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, profile)
}

// RemoveSkill drops a skill by name (DELETE /v1/profile/skills/:name).
func (h *ProfileHandler) RemoveSkill(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	profile, err := h.service.RemoveSkill(c.Request().Context(), actor, c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// AddLink appends a link (POST /v1/profile/links).
func (h *ProfileHandler) AddLink(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req linkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.AddLink(c.Request().Context(), actor, req.Name, req.URL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, profile)
}

// RemoveLink drops a link by name (DELETE /v1/profile/links/:name).
func (h *ProfileHandler) RemoveLink(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	profile, err := h.service.RemoveLink(c.Request().Context(), actor, c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// ToggleVisibility flips is_public (POST /v1/profile/visibility).
func (h *ProfileHandler) ToggleVisibility(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	public, err := h.service.ToggleVisibility(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"is_public": public})
}
