package ports

import (
	"context"

	"github.com/jobdeck/job-board-api/internal/core/domain"
)

// ProfileRepository defines persistence for freelancer profiles.
//
// AddSkill and AddLink must be conditional writes: they only apply when no
// entry with the same normalized name exists, and report applied=false
// otherwise. This keeps the per-profile name uniqueness race-free without
// read-modify-write cycles.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.FreelancerProfile) (*domain.FreelancerProfile, error)
	FindByUser(ctx context.Context, userID string) (*domain.FreelancerProfile, error)
	AddSkill(ctx context.Context, userID string, skill domain.Skill) (applied bool, err error)
	RemoveSkill(ctx context.Context, userID, name string) error
	AddLink(ctx context.Context, userID string, link domain.Link) (applied bool, err error)
	RemoveLink(ctx context.Context, userID, name string) error
	SetVisibility(ctx context.Context, userID string, public bool) error
}

// UpsertProfileInput is the allow-list of caller-settable profile fields.
type UpsertProfileInput struct {
	Title    *string
	Bio      *string
	Skills   []domain.Skill
	Links    []domain.Link
	IsPublic *bool
}

// ProfileService defines freelancer-profile use-cases; all operations act on
// the actor's own profile and require accountType=professional.
type ProfileService interface {
	Upsert(ctx context.Context, actor *domain.User, in UpsertProfileInput) (*domain.FreelancerProfile, error)
	Get(ctx context.Context, actor *domain.User) (*domain.FreelancerProfile, error)
	AddSkill(ctx context.Context, actor *domain.User, name string, level int) (*domain.FreelancerProfile, error)
	RemoveSkill(ctx context.Context, actor *domain.User, name string) (*domain.FreelancerProfile, error)
	AddLink(ctx context.Context, actor *domain.User, name, url string) (*domain.FreelancerProfile, error)
	RemoveLink(ctx context.Context, actor *domain.User, name string) (*domain.FreelancerProfile, error)
	ToggleVisibility(ctx context.Context, actor *domain.User) (bool, error)
}
