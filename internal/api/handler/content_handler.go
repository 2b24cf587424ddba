package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/job-board-api/internal/core/ports"
)

type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

type createPageRequest struct {
	Slug  string `json:"slug"`
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"`
}

type updatePageRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

type createFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"   validate:"required"`
	Order    int    `json:"order"`
}

type updateFAQRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Order    *int    `json:"order"`
}

// CreatePage handles POST /v1/admin/pages.
func (h *ContentHandler) CreatePage(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req createPageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	page, err := h.service.CreatePage(c.Request().Context(), actor, req.Slug, req.Title, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, page)
}

// UpdatePage handles PATCH /v1/admin/pages/:id.
func (h *ContentHandler) UpdatePage(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req updatePageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	page, err := h.service.UpdatePage(c.Request().Context(), actor, c.Param("id"), ports.UpsertPageInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// TogglePage handles POST /v1/admin/pages/:id/toggle.
func (h *ContentHandler) TogglePage(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	page, err := h.service.TogglePage(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// GetPage handles GET /v1/pages/:slug — published pages only.
func (h *ContentHandler) GetPage(c echo.Context) error {
	page, err := h.service.GetPage(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// CreateFAQ handles POST /v1/admin/faqs.
func (h *ContentHandler) CreateFAQ(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req createFAQRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	faq, err := h.service.CreateFAQ(c.Request().Context(), actor, req.Question, req.Answer, req.Order)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, faq)
}

// UpdateFAQ handles PATCH /v1/admin/faqs/:id.
func (h *ContentHandler) UpdateFAQ(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req updateFAQRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	faq, err := h.service.UpdateFAQ(c.Request().Context(), actor, c.Param("id"), ports.UpsertFAQInput{
		Question: req.Question,
		Answer:   req.Answer,
		Order:    req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, faq)
}

// ToggleFAQ handles POST /v1/admin/faqs/:id/toggle.
func (h *ContentHandler) ToggleFAQ(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	faq, err := h.service.ToggleFAQ(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, faq)
}

// ListFAQs handles GET /v1/faqs — active entries, ordered.
func (h *ContentHandler) ListFAQs(c echo.Context) error {
	faqs, err := h.service.ListFAQs(c.Request().Context(), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, faqs)
}

// ListAllFAQs handles GET /v1/admin/faqs — includes inactive entries.
func (h *ContentHandler) ListAllFAQs(c echo.Context) error {
	if _, err := ctxUser(c); err != nil {
		return err
	}
	faqs, err := h.service.ListFAQs(c.Request().Context(), false)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, faqs)
}
