package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

// ProfileService manages freelancer profiles. All operations act on the
// actor's own profile and require a professional account.
type ProfileService struct {
	profiles ports.ProfileRepository
	logger   zerolog.Logger
	now      func() time.Time
}

func NewProfileService(profiles ports.ProfileRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func requireProfessional(actor *domain.User) error {
	if actor.AccountType != domain.AccountProfessional {
		return domain.Forbidden("only professional users can manage freelancer profiles")
	}
	return nil
}

func (s *ProfileService) Upsert(ctx context.Context, actor *domain.User, in ports.UpsertProfileInput) (*domain.FreelancerProfile, error) {
	if err := requireProfessional(actor); err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByUser(ctx, actor.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		profile = &domain.FreelancerProfile{
			UserID:    actor.ID,
			IsPublic:  true,
			CreatedAt: s.now(),
		}
	}

	if in.Title != nil {
		profile.Title = *in.Title
	}
	if in.Bio != nil {
		profile.Bio = *in.Bio
	}
	if in.IsPublic != nil {
		profile.IsPublic = *in.IsPublic
	}
	if in.Skills != nil {
		normalized, err := normalizeSkills(in.Skills)
		if err != nil {
			return nil, err
		}
		profile.Skills = normalized
	}
	if in.Links != nil {
		normalized, err := normalizeLinks(in.Links)
		if err != nil {
			return nil, err
		}
		profile.Links = normalized
	}

	profile.UpdatedAt = s.now()
	return s.profiles.Upsert(ctx, profile)
}

func (s *ProfileService) Get(ctx context.Context, actor *domain.User) (*domain.FreelancerProfile, error) {
	if err := requireProfessional(actor); err != nil {
		return nil, err
	}
	return s.profiles.FindByUser(ctx, actor.ID)
}

// AddSkill distinguishes the two failure causes the source conflated:
// missing profile is NotFound, duplicate name is Conflict.
func (s *ProfileService) AddSkill(ctx context.Context, actor *domain.User, name string, level int) (*domain.FreelancerProfile, error) {
	if err := requireProfessional(actor); err != nil {
		return nil, err
	}
	normalized := domain.NormalizeName(name)
	if normalized == "" {
		return nil, domain.Validation("skill name is required")
	}
	if level < 1 || level > 5 {
		return nil, domain.Validation("skill level must be between 1 and 5")
	}

	applied, err := s.profiles.AddSkill(ctx, actor.ID, domain.Skill{Name: normalized, Level: level})
	if err != nil {
		return nil, err
	}
	if !applied {
		if _, err := s.profiles.FindByUser(ctx, actor.ID); err != nil {
			return nil, err
		}
		return nil, domain.Conflict("skill already exists")
	}
	return s.profiles.FindByUser(ctx, actor.ID)
}

func (s *ProfileService) RemoveSkill(ctx context.Context, actor *domain.User, name string) (*domain.FreelancerProfile, error) {
	if err := requireProfessional(actor); err != nil {
		return nil, err
	}
	normalized := domain.NormalizeName(name)
	if normalized == "" {
		return nil, domain.Validation("skill name is required")
	}
	if err := s.profiles.RemoveSkill(ctx, actor.ID, normalized); err != nil {
		return nil, err
	}
	return s.profiles.FindByUser(ctx, actor.ID)
}

func (s *ProfileService) AddLink(ctx context.Context, actor *domain.User, name, url string) (*domain.FreelancerProfile, error) {
	if err := requireProfessional(actor); err != nil {
		return nil, err
	}
	normalized := domain.NormalizeName(name)
	if normalized == "" || url == "" {
		return nil, domain.Validation("link name and url are required")
	}

	applied, err := s.profiles.AddLink(ctx, actor.ID, domain.Link{Name: normalized, URL: url})
	if err != nil {
		return nil, err
	}
	if !applied {
		if _, err := s.profiles.FindByUser(ctx, actor.ID); err != nil {
			return nil, err
		}
		return nil, domain.Conflict("link already exists")
	}
	return s.profiles.FindByUser(ctx, actor.ID)
}

func (s *ProfileService) RemoveLink(ctx context.Context, actor *domain.User, name string) (*domain.FreelancerProfile, error) {
	if err := requireProfessional(actor); err != nil {
		return nil, err
	}
	normalized := domain.NormalizeName(name)
	if normalized == "" {
		return nil, domain.Validation("link name is required")
	}
	if err := s.profiles.RemoveLink(ctx, actor.ID, normalized); err != nil {
		return nil, err
	}
	return s.profiles.FindByUser(ctx, actor.ID)
}

func (s *ProfileService) ToggleVisibility(ctx context.Context, actor *domain.User) (bool, error) {
	if err := requireProfessional(actor); err != nil {
		return false, err
	}
	profile, err := s.profiles.FindByUser(ctx, actor.ID)
	if err != nil {
		return false, err
	}
	next := !profile.IsPublic
	if err := s.profiles.SetVisibility(ctx, actor.ID, next); err != nil {
		return false, err
	}
	return next, nil
}

func normalizeSkills(skills []domain.Skill) ([]domain.Skill, error) {
	seen := make(map[string]struct{}, len(skills))
	out := make([]domain.Skill, 0, len(skills))
	for _, skill := range skills {
		name := domain.NormalizeName(skill.Name)
		if name == "" {
			return nil, domain.Validation("skill name is required")
		}
		if skill.Level < 1 || skill.Level > 5 {
			return nil, domain.Validation("skill level must be between 1 and 5")
		}
		if _, dup := seen[name]; dup {
			return nil, domain.Validation("duplicate skill name: " + name)
		}
		seen[name] = struct{}{}
		out = append(out, domain.Skill{Name: name, Level: skill.Level})
	}
	return out, nil
}

func normalizeLinks(links []domain.Link) ([]domain.Link, error) {
	seen := make(map[string]struct{}, len(links))
	out := make([]domain.Link, 0, len(links))
	for _, link := range links {
		name := domain.NormalizeName(link.Name)
		if name == "" || link.URL == "" {
			return nil, domain.Validation("link name and url are required")
		}
		if _, dup := seen[name]; dup {
			return nil, domain.Validation("duplicate link name: " + name)
		}
		seen[name] = struct{}{}
		out = append(out, domain.Link{Name: name, URL: link.URL})
	}
	return out, nil
}
