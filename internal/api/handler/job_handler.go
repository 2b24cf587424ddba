package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/job-board-api/internal/api/metrics"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// ListPublished handles GET /v1/jobs — the public board.
// Query params: q, category (slug), tags (comma-separated ids or slugs),
// page, limit.
func (h *JobHandler) ListPublished(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	var tags []string
	if raw := c.QueryParam("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	result, err := h.service.ListPublished(c.Request().Context(), ports.ListJobsInput{
		Search:       c.QueryParam("q"),
		CategorySlug: c.QueryParam("category"),
		Tags:         tags,
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listJobsResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/jobs/:id.
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Create handles POST /v1/jobs. The new job starts as an inactive draft.
func (h *JobHandler) Create(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), actor, ports.CreateJobInput{
		CompanyID:        req.CompanyID,
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Location:         req.Location,
		EmploymentType:   req.EmploymentType,
		ExperienceLevel:  req.ExperienceLevel,
		Salary:           req.Salary,
		Requirements:     req.Requirements,
		CategoryID:       req.CategoryID,
		TagIDs:           req.TagIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, job)
}

// Update handles PATCH /v1/jobs/:id with the mutable-field allow-list.
func (h *JobHandler) Update(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	job, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateJobInput{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Location:         req.Location,
		EmploymentType:   req.EmploymentType,
		ExperienceLevel:  req.ExperienceLevel,
		Salary:           req.Salary,
		Requirements:     req.Requirements,
		CategoryID:       req.CategoryID,
		TagIDs:           req.TagIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Publish handles POST /v1/jobs/:id/publish.
func (h *JobHandler) Publish(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	job, err := h.service.Publish(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	metrics.JobsPublishedTotal.Inc()
	return c.JSON(http.StatusOK, job)
}

// Unpublish handles POST /v1/jobs/:id/unpublish.
func (h *JobHandler) Unpublish(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	job, err := h.service.Unpublish(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// ToggleActive handles POST /v1/jobs/:id/toggle-active.
func (h *JobHandler) ToggleActive(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	job, err := h.service.ToggleActive(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Duplicate handles POST /v1/jobs/:id/duplicate.
func (h *JobHandler) Duplicate(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	job, err := h.service.Duplicate(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, job)
}

// Delete handles DELETE /v1/jobs/:id. Blocked while applications exist.
func (h *JobHandler) Delete(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListCompanyJobs handles GET /v1/companies/:id/jobs for the owner.
func (h *JobHandler) ListCompanyJobs(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	jobs, err := h.service.ListCompanyJobs(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// CompanyStats handles GET /v1/companies/:id/stats for the owner.
func (h *JobHandler) CompanyStats(c echo.Context) error {
	actor, err := ctxUser(c)
	if err != nil {
		return err
	}
	stats, err := h.service.CompanyStats(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
