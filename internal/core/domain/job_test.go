package domain

import (
	"testing"
	"time"
)

func TestJobStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to JobStatus
		allowed  bool
	}{
		{JobDraft, JobPublished, true},
		{JobDraft, JobClosed, false},
		{JobDraft, JobDraft, false},
		{JobPublished, JobDraft, true},
		{JobPublished, JobClosed, true},
		{JobPublished, JobPublished, false},
		{JobClosed, JobPublished, true},
		{JobClosed, JobDraft, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.allowed {
			t.Errorf("%s -> %s: got %t, want %t", c.from, c.to, got, c.allowed)
		}
	}
}

func TestJobPostPubliclyVisible(t *testing.T) {
	job := &JobPost{Status: JobPublished, IsActive: true}
	if !job.PubliclyVisible() {
		t.Fatalf("published+active must be visible")
	}
	job.IsActive = false
	if job.PubliclyVisible() {
		t.Fatalf("inactive job must be hidden")
	}
	job = &JobPost{Status: JobDraft, IsActive: true}
	if job.PubliclyVisible() {
		t.Fatalf("draft must be hidden")
	}
}

func TestJobPostDuplicate(t *testing.T) {
	now := time.Now()
	job := &JobPost{
		ID:           "job_1",
		Title:        "Backend Engineer",
		Status:       JobPublished,
		IsActive:     true,
		TagIDs:       []string{"tag_1"},
		Requirements: []string{"Go"},
	}

	clone := job.Duplicate(now)
	if clone.ID != "" {
		t.Fatalf("clone must not carry the source id")
	}
	if clone.Title != "Backend Engineer"+CopySuffix {
		t.Fatalf("unexpected clone title %q", clone.Title)
	}
	if clone.Status != JobDraft || clone.IsActive {
		t.Fatalf("clone must be an inactive draft")
	}

	// Slices are copied, not shared.
	clone.TagIDs[0] = "tag_other"
	if job.TagIDs[0] != "tag_1" {
		t.Fatalf("clone tag slice aliases the source")
	}
}
