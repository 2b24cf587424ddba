package queue

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// task is one unit of fan-out work. Tasks sharing a key land on the same
// worker, so deliveries to one recipient or for one job stay ordered.
type task struct {
	key string
	run func(ctx context.Context) error
}

// Dispatcher is the asynchronous event sink behind ports.Notifier. Producers
// enqueue and return; a fixed set of workers resolves recipients, writes
// mailbox notifications, and mails subscribers.
type Dispatcher struct {
	workers       []chan task
	follows       ports.FollowRepository
	subscriptions ports.SubscriptionRepository
	notifications ports.NotificationService
	mailer        ports.Mailer
	baseURL       string
	log           zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(
	numWorkers int,
	follows ports.FollowRepository,
	subscriptions ports.SubscriptionRepository,
	notifications ports.NotificationService,
	mailer ports.Mailer,
	baseURL string,
	log zerolog.Logger,
) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:       make([]chan task, numWorkers),
		follows:       follows,
		subscriptions: subscriptions,
		notifications: notifications,
		mailer:        mailer,
		baseURL:       strings.TrimRight(baseURL, "/"),
		log:           log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan task, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// JobPublished fans out to followers and active subscribers of the job's
// company, category, and tags.
func (d *Dispatcher) JobPublished(job *domain.JobPost) {
	d.enqueue(task{key: job.ID, run: func(ctx context.Context) error {
		targets := jobTargets(job)
		link := d.baseURL + "/v1/jobs/" + job.ID

		userIDs, err := d.follows.ListUserIDsByTargets(ctx, targets)
		if err != nil {
			return fmt.Errorf("resolve followers: %w", err)
		}
		for _, userID := range userIDs {
			if userID == job.CreatedBy {
				continue
			}
			_, err := d.notifications.Create(ctx, ports.CreateNotificationInput{
				UserID:  userID,
				Title:   "New job posted",
				Message: fmt.Sprintf("A new job matching your follows was published: %s", job.Title),
				Type:    domain.NotifJob,
				Link:    link,
			})
			if err != nil {
				d.log.Error().Err(err).Str("user_id", userID).Str("job_id", job.ID).Msg("follower notification failed")
			}
		}

		subs, err := d.subscriptions.ListActiveEmailsByTargets(ctx, targets)
		if err != nil {
			return fmt.Errorf("resolve subscribers: %w", err)
		}
		for _, sub := range subs {
			body := fmt.Sprintf(
				"<p>A new job was published: <a href=%q>%s</a></p><p><a href=%q>Unsubscribe</a></p>",
				link, job.Title,
				d.baseURL+"/v1/subscriptions/unsubscribe/"+sub.UnsubscribeToken,
			)
			if err := d.mailer.Send(sub.Email, "New job: "+job.Title, body); err != nil {
				d.log.Warn().Err(err).Str("email", sub.Email).Str("job_id", job.ID).Msg("subscriber email failed")
			}
		}
		return nil
	}})
}

// ApplicationReceived notifies the job's creator.
func (d *Dispatcher) ApplicationReceived(job *domain.JobPost, app *domain.JobApplication) {
	d.enqueue(task{key: job.CreatedBy, run: func(ctx context.Context) error {
		_, err := d.notifications.Create(ctx, ports.CreateNotificationInput{
			UserID:  job.CreatedBy,
			Title:   "New application",
			Message: fmt.Sprintf("Someone applied to %s", job.Title),
			Type:    domain.NotifApplication,
			Link:    d.baseURL + "/v1/jobs/" + job.ID + "/applications",
		})
		return err
	}})
}

// ApplicationStatusChanged notifies the applicant.
func (d *Dispatcher) ApplicationStatusChanged(job *domain.JobPost, app *domain.JobApplication) {
	d.enqueue(task{key: app.ApplicantID, run: func(ctx context.Context) error {
		_, err := d.notifications.Create(ctx, ports.CreateNotificationInput{
			UserID:  app.ApplicantID,
			Title:   "Application update",
			Message: fmt.Sprintf("Your application for %s is now %s", job.Title, app.Status),
			Type:    domain.NotifApplication,
			Link:    d.baseURL + "/v1/jobs/" + job.ID,
		})
		return err
	}})
}

// enqueue sends a task to the worker responsible for its key. The call is
// non-blocking up to channelBuffer capacity.
func (d *Dispatcher) enqueue(t task) {
	d.workers[d.shardIndex(t.key)] <- t
}

// shardIndex maps a key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan task) {
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-ch:
			if !ok {
				return
			}
			if err := t.run(ctx); err != nil {
				d.log.Error().Err(err).
					Str("key", t.key).
					Int("worker_id", id).
					Msg("fan-out task failed")
			}
		}
	}
}

func jobTargets(job *domain.JobPost) []domain.TargetRef {
	targets := []domain.TargetRef{
		{Type: domain.TargetCompany, ID: job.CompanyID},
		{Type: domain.TargetCategory, ID: job.CategoryID},
	}
	for _, tagID := range job.TagIDs {
		targets = append(targets, domain.TargetRef{Type: domain.TargetTag, ID: tagID})
	}
	return targets
}
