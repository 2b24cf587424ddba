package queue

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

type stubFollows struct {
	userIDs []string
}

func (s *stubFollows) Create(context.Context, *domain.Follow) (*domain.Follow, error) { return nil, nil }
func (s *stubFollows) Delete(context.Context, string, domain.TargetRef) error         { return nil }
func (s *stubFollows) ListByUser(context.Context, string) ([]*domain.Follow, error)   { return nil, nil }
func (s *stubFollows) ListUserIDsByTargets(context.Context, []domain.TargetRef) ([]string, error) {
	return s.userIDs, nil
}
func (s *stubFollows) CountByTarget(context.Context, domain.TargetRef) (int64, error) { return 0, nil }

type stubSubscriptions struct {
	subs []*domain.Subscription
}

func (s *stubSubscriptions) Create(context.Context, *domain.Subscription) (*domain.Subscription, error) {
	return nil, nil
}
func (s *stubSubscriptions) FindByTuple(context.Context, string, domain.TargetRef) (*domain.Subscription, error) {
	return nil, domain.NotFound("subscription not found")
}
func (s *stubSubscriptions) FindByToken(context.Context, string) (*domain.Subscription, error) {
	return nil, domain.ErrInvalidUnsubToken
}
func (s *stubSubscriptions) Update(context.Context, *domain.Subscription) error { return nil }
func (s *stubSubscriptions) ListActiveEmailsByTargets(context.Context, []domain.TargetRef) ([]*domain.Subscription, error) {
	return s.subs, nil
}
func (s *stubSubscriptions) CountActiveByTarget(context.Context, domain.TargetRef) (int64, error) {
	return 0, nil
}

// chanNotifications pushes every created notification onto a channel so tests
// can wait for asynchronous deliveries deterministically.
type chanNotifications struct {
	created chan ports.CreateNotificationInput
}

func (s *chanNotifications) Create(_ context.Context, in ports.CreateNotificationInput) (*domain.Notification, error) {
	s.created <- in
	return &domain.Notification{UserID: in.UserID, Title: in.Title}, nil
}
func (s *chanNotifications) ListMine(context.Context, *domain.User) ([]*domain.Notification, error) {
	return nil, nil
}
func (s *chanNotifications) MarkAsRead(context.Context, *domain.User, string) (*domain.Notification, error) {
	return nil, nil
}
func (s *chanNotifications) MarkAllAsRead(context.Context, *domain.User) (int64, error) {
	return 0, nil
}

type recordingMailer struct {
	sent chan string
}

func (m *recordingMailer) Send(to, subject, htmlBody string) error {
	m.sent <- to
	return nil
}

func waitFor[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for delivery")
		panic("unreachable")
	}
}

func TestDispatcher_JobPublishedFansOut(t *testing.T) {
	follows := &stubFollows{userIDs: []string{"user_follower", "user_creator"}}
	subs := &stubSubscriptions{subs: []*domain.Subscription{
		{Email: "sub@example.com", UnsubscribeToken: "tok", IsActive: true},
	}}
	notifications := &chanNotifications{created: make(chan ports.CreateNotificationInput, 8)}
	mailer := &recordingMailer{sent: make(chan string, 8)}

	d := NewDispatcher(2, follows, subs, notifications, mailer, "http://localhost:8080", zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.JobPublished(&domain.JobPost{
		ID:         "job_1",
		CompanyID:  "company_1",
		CategoryID: "category_1",
		CreatedBy:  "user_creator",
		Title:      "Backend Engineer",
		TagIDs:     []string{"tag_1"},
	})

	created := waitFor(t, notifications.created)
	if created.UserID != "user_follower" {
		t.Fatalf("expected follower notification, got user %q", created.UserID)
	}
	if created.Type != domain.NotifJob {
		t.Fatalf("expected job notification type, got %q", created.Type)
	}

	to := waitFor(t, mailer.sent)
	if to != "sub@example.com" {
		t.Fatalf("expected subscriber email, got %q", to)
	}

	// The creator never receives a notification about their own job.
	select {
	case extra := <-notifications.created:
		t.Fatalf("unexpected extra notification for %q", extra.UserID)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDispatcher_ApplicationEventsTargetTheRightUser(t *testing.T) {
	notifications := &chanNotifications{created: make(chan ports.CreateNotificationInput, 8)}
	d := NewDispatcher(1, &stubFollows{}, &stubSubscriptions{}, notifications,
		&recordingMailer{sent: make(chan string, 8)}, "http://localhost:8080", zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	job := &domain.JobPost{ID: "job_1", CreatedBy: "user_creator", Title: "Backend Engineer"}
	app := &domain.JobApplication{ID: "application_1", JobID: job.ID, ApplicantID: "user_applicant", Status: domain.ApplicationShortlisted}

	d.ApplicationReceived(job, app)
	if got := waitFor(t, notifications.created); got.UserID != "user_creator" {
		t.Fatalf("application-received must notify the job creator, got %q", got.UserID)
	}

	d.ApplicationStatusChanged(job, app)
	if got := waitFor(t, notifications.created); got.UserID != "user_applicant" {
		t.Fatalf("status-changed must notify the applicant, got %q", got.UserID)
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, &stubFollows{}, &stubSubscriptions{},
		&chanNotifications{created: make(chan ports.CreateNotificationInput, 1)},
		&recordingMailer{sent: make(chan string, 1)}, "", zerolog.Nop())

	for _, key := range []string{"job_1", "user_2", ""} {
		first := d.shardIndex(key)
		if first < 0 || first >= 4 {
			t.Fatalf("shard index out of range: %d", first)
		}
		if second := d.shardIndex(key); second != first {
			t.Fatalf("shard index for %q not stable: %d vs %d", key, first, second)
		}
	}
}
