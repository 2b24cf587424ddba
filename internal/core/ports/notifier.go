package ports

import "github.com/jobdeck/job-board-api/internal/core/domain"

// Notifier is the event sink services publish domain events into. The queue
// dispatcher implements it; delivery is asynchronous and best-effort, so
// producers never block on fan-out.
type Notifier interface {
	// JobPublished fans out to followers and active subscribers of the job's
	// company, category, and tags.
	JobPublished(job *domain.JobPost)
	// ApplicationReceived notifies the job's creator.
	ApplicationReceived(job *domain.JobPost, app *domain.JobApplication)
	// ApplicationStatusChanged notifies the applicant.
	ApplicationStatusChanged(job *domain.JobPost, app *domain.JobApplication)
}

// Mailer sends outbound email. Implementations must be safe for concurrent
// use; failures are logged by callers, never surfaced to API clients.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}
