package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/job-board-api/internal/core/ports"
)

type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

type createCompanyRequest struct {
	Name        string `json:"name"        validate:"required"`
	Domain      string `json:"domain"      validate:"required"`
	Description string `json:"description"`
	Website     string `json:"website"     validate:"omitempty,url"`
	Location    string `json:"location"`
}

type updateCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Location    *string `json:"location"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,url"`
}

// Create registers a company for the acting employer (POST /v1/companies).
func (h *CompanyHandler) Create(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req createCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.service.Create(c.Request().Context(), actor, ports.CreateCompanyInput{
		Name:        req.Name,
		Domain:      req.Domain,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, company)
}

// Get returns a public company record (GET /v1/companies/:id).
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// ListMine returns the actor's companies (GET /v1/companies/mine).
func (h *CompanyHandler) ListMine(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	companies, err := h.service.ListMine(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

// Update patches a company the actor owns (PATCH /v1/companies/:id).
func (h *CompanyHandler) Update(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req updateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateCompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// Deactivate soft-deletes a company the actor owns (DELETE /v1/companies/:id).
func (h *CompanyHandler) Deactivate(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Deactivate(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
