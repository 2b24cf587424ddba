package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

type TaxonomyHandler struct {
	service ports.TaxonomyService
}

func NewTaxonomyHandler(service ports.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{service: service}
}

type createCategoryRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	TagIDs      []string `json:"tag_ids"`
}

type updateCategoryRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	TagIDs      []string `json:"tag_ids"`
}

type createTagRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	CategoryIDs []string `json:"category_ids"`
}

type updateTagRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	CategoryIDs []string `json:"category_ids"`
}

// categorySummaryResponse flattens the live counts next to the entity.
type categorySummaryResponse struct {
	*domain.JobCategory
	JobCount    int64 `json:"job_count"`
	Subscribers int64 `json:"subscribers"`
}

type tagSummaryResponse struct {
	*domain.Tag
	JobCount    int64 `json:"job_count"`
	Subscribers int64 `json:"subscribers"`
}

// CreateCategory handles POST /v1/admin/categories.
func (h *TaxonomyHandler) CreateCategory(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.CreateCategory(c.Request().Context(), actor, ports.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PATCH /v1/admin/categories/:id.
func (h *TaxonomyHandler) UpdateCategory(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	category, err := h.service.UpdateCategory(c.Request().Context(), actor, c.Param("id"), ports.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// ToggleCategory handles POST /v1/admin/categories/:id/toggle.
func (h *TaxonomyHandler) ToggleCategory(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	category, err := h.service.ToggleCategoryStatus(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// ListCategories handles GET /v1/categories with live counts.
func (h *TaxonomyHandler) ListCategories(c echo.Context) error {
	summaries, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]categorySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, categorySummaryResponse{
			JobCategory: s.Category,
			JobCount:    s.JobCount,
			Subscribers: s.Subscribers,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// GetCategory handles GET /v1/categories/:slug.
func (h *TaxonomyHandler) GetCategory(c echo.Context) error {
	category, err := h.service.GetCategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// CreateTag handles POST /v1/admin/tags.
func (h *TaxonomyHandler) CreateTag(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req createTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tag, err := h.service.CreateTag(c.Request().Context(), actor, ports.CreateTagInput{
		Name:        req.Name,
		Description: req.Description,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tag)
}

// UpdateTag handles PATCH /v1/admin/tags/:id.
func (h *TaxonomyHandler) UpdateTag(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req updateTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	tag, err := h.service.UpdateTag(c.Request().Context(), actor, c.Param("id"), ports.UpdateTagInput{
		Name:        req.Name,
		Description: req.Description,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tag)
}

// ToggleTag handles POST /v1/admin/tags/:id/toggle.
func (h *TaxonomyHandler) ToggleTag(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	tag, err := h.service.ToggleTagStatus(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tag)
}

// ListTags handles GET /v1/tags with live counts.
func (h *TaxonomyHandler) ListTags(c echo.Context) error {
	summaries, err := h.service.ListTags(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]tagSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, tagSummaryResponse{
			Tag:         s.Tag,
			JobCount:    s.JobCount,
			Subscribers: s.Subscribers,
		})
	}
	return c.JSON(http.StatusOK, out)
}
