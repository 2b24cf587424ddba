package domain

import "time"

// JobStatus is the lifecycle state of a job post. closed is reserved for
// future flows; no current operation sets it.
type JobStatus string

const (
	JobDraft     JobStatus = "draft"
	JobPublished JobStatus = "published"
	JobClosed    JobStatus = "closed"
)

// jobTransitions defines the allowed state machine transitions.
var jobTransitions = map[JobStatus][]JobStatus{
	JobDraft:     {JobPublished},
	JobPublished: {JobDraft, JobClosed},
	JobClosed:    {JobPublished},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// EmploymentType enumerates the contract forms a job can offer.
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentPartTime EmploymentType = "part_time"
	EmploymentContract EmploymentType = "contract"
	EmploymentRemote   EmploymentType = "remote"
)

func (e EmploymentType) Valid() bool {
	switch e {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentRemote:
		return true
	}
	return false
}

// ExperienceLevel is the seniority a job targets.
type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
)

func (e ExperienceLevel) Valid() bool {
	return e == ExperienceJunior || e == ExperienceMid || e == ExperienceSenior
}

// JobPost is the aggregate at the centre of the lifecycle engine.
//
// Invariant: (CompanyID, Title) is unique among posts with IsActive=true,
// backed by a partial unique index. Status and IsActive are independent:
// a published job can be taken off the board without unpublishing it.
type JobPost struct {
	ID               string          `json:"id" bson:"_id,omitempty"`
	CompanyID        string          `json:"company_id" bson:"company_id"`
	CreatedBy        string          `json:"created_by" bson:"created_by"`
	Title            string          `json:"title" bson:"title"`
	Description      string          `json:"description" bson:"description"`
	ShortDescription string          `json:"short_description,omitempty" bson:"short_description,omitempty"`
	Location         string          `json:"location,omitempty" bson:"location,omitempty"`
	EmploymentType   EmploymentType  `json:"employment_type" bson:"employment_type"`
	ExperienceLevel  ExperienceLevel `json:"experience_level,omitempty" bson:"experience_level,omitempty"`
	Salary           string          `json:"salary,omitempty" bson:"salary,omitempty"`
	Requirements     []string        `json:"requirements,omitempty" bson:"requirements,omitempty"`
	CategoryID       string          `json:"category_id" bson:"category_id"`
	TagIDs           []string        `json:"tags" bson:"tags"`
	Status           JobStatus       `json:"status" bson:"status"`
	IsActive         bool            `json:"is_active" bson:"is_active"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// PubliclyVisible reports whether the post belongs on the public board.
func (j *JobPost) PubliclyVisible() bool {
	return j.Status == JobPublished && j.IsActive
}

// CopySuffix is appended to a duplicated job's title so the clone does not
// collide with the active-title uniqueness constraint.
const CopySuffix = " (copy)"

// Duplicate returns a draft clone with a fresh identity. The clone is
// always draft/inactive regardless of the source state.
func (j *JobPost) Duplicate(now time.Time) *JobPost {
	clone := *j
	clone.ID = ""
	clone.Title = j.Title + CopySuffix
	clone.Status = JobDraft
	clone.IsActive = false
	clone.TagIDs = append([]string(nil), j.TagIDs...)
	clone.Requirements = append([]string(nil), j.Requirements...)
	clone.CreatedAt = now
	clone.UpdatedAt = now
	return &clone
}
