package domain

import "time"

// ApplicationStatus is driven exclusively by the job's owning actor.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationShortlisted,
		ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

// JobApplication links an applicant to a job. CompanyID is denormalized from
// the job at creation time for query convenience. (JobID, ApplicantID) is
// unique, backed by an index.
type JobApplication struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	JobID       string            `json:"job_id" bson:"job_id"`
	CompanyID   string            `json:"company_id" bson:"company_id"`
	ApplicantID string            `json:"applicant_id" bson:"applicant_id"`
	CoverLetter string            `json:"cover_letter,omitempty" bson:"cover_letter,omitempty"`
	Status      ApplicationStatus `json:"status" bson:"status"`
	AppliedAt   time.Time         `json:"applied_at" bson:"applied_at"`
	UpdatedAt   time.Time         `json:"updated_at" bson:"updated_at"`
}
