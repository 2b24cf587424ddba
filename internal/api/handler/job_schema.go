package handler

import "github.com/jobdeck/job-board-api/internal/core/domain"

type createJobRequest struct {
	CompanyID        string   `json:"company_id"        validate:"required"`
	Title            string   `json:"title"             validate:"required"`
	Description      string   `json:"description"       validate:"required"`
	ShortDescription string   `json:"short_description" validate:"omitempty,max=280"`
	Location         string   `json:"location"`
	EmploymentType   string   `json:"employment_type"   validate:"required,oneof=full_time part_time contract remote"`
	ExperienceLevel  string   `json:"experience_level"  validate:"omitempty,oneof=junior mid senior"`
	Salary           string   `json:"salary"`
	Requirements     []string `json:"requirements"`
	CategoryID       string   `json:"category_id"       validate:"required"`
	TagIDs           []string `json:"tag_ids"`
}

type updateJobRequest struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	ShortDescription *string  `json:"short_description"`
	Location         *string  `json:"location"`
	EmploymentType   *string  `json:"employment_type"`
	ExperienceLevel  *string  `json:"experience_level"`
	Salary           *string  `json:"salary"`
	Requirements     []string `json:"requirements"`
	CategoryID       *string  `json:"category_id"`
	TagIDs           []string `json:"tag_ids"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listJobsResponse struct {
	Data       []*domain.JobPost  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
