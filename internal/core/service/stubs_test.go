package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

// In-memory repository fakes shared across the service tests. They implement
// the same error contracts as the Mongo repositories (duplicate-key and
// not-found translations) so the services under test behave identically.

type memUsers struct {
	seq  int
	byID map[string]*domain.User
}

func newMemUsers() *memUsers { return &memUsers{byID: map[string]*domain.User{}} }

func (m *memUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range m.byID {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	m.seq++
	user.ID = fmt.Sprintf("user_%d", m.seq)
	m.byID[user.ID] = user
	return user, nil
}

func (m *memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range m.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) FindByTokenHash(_ context.Context, purpose domain.TokenPurpose, hash string) (*domain.User, error) {
	for _, user := range m.byID {
		var token *domain.OneTimeToken
		switch purpose {
		case domain.TokenInvite:
			token = user.InviteToken
		case domain.TokenPasswordReset:
			token = user.ResetToken
		case domain.TokenEmailVerify:
			token = user.VerifyToken
		}
		if token != nil && token.Hash == hash {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) Update(_ context.Context, user *domain.User) error {
	if _, ok := m.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	m.byID[user.ID] = user
	return nil
}

type memCompanies struct {
	seq  int
	byID map[string]*domain.Company
}

func newMemCompanies() *memCompanies { return &memCompanies{byID: map[string]*domain.Company{}} }

func (m *memCompanies) Create(_ context.Context, company *domain.Company) (*domain.Company, error) {
	for _, existing := range m.byID {
		if existing.Domain == company.Domain {
			return nil, domain.ErrCompanyDomainTaken
		}
	}
	m.seq++
	company.ID = fmt.Sprintf("company_%d", m.seq)
	m.byID[company.ID] = company
	return company, nil
}

func (m *memCompanies) FindByID(_ context.Context, id string) (*domain.Company, error) {
	company, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

func (m *memCompanies) FindByOwner(_ context.Context, ownerID string) ([]*domain.Company, error) {
	var out []*domain.Company
	for _, company := range m.byID {
		if company.OwnerID == ownerID && company.Status != domain.CompanyDeleted {
			out = append(out, company)
		}
	}
	return out, nil
}

func (m *memCompanies) Update(_ context.Context, company *domain.Company) error {
	if _, ok := m.byID[company.ID]; !ok {
		return domain.ErrCompanyNotFound
	}
	m.byID[company.ID] = company
	return nil
}

type memCategories struct {
	seq  int
	byID map[string]*domain.JobCategory
}

func newMemCategories() *memCategories {
	return &memCategories{byID: map[string]*domain.JobCategory{}}
}

func (m *memCategories) Create(_ context.Context, category *domain.JobCategory) (*domain.JobCategory, error) {
	for _, existing := range m.byID {
		if existing.Slug == category.Slug {
			return nil, domain.Conflict("category slug already exists")
		}
	}
	m.seq++
	category.ID = fmt.Sprintf("category_%d", m.seq)
	m.byID[category.ID] = category
	return category, nil
}

func (m *memCategories) FindByID(_ context.Context, id string) (*domain.JobCategory, error) {
	category, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

func (m *memCategories) FindBySlug(_ context.Context, slug string) (*domain.JobCategory, error) {
	for _, category := range m.byID {
		if category.Slug == slug {
			return category, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *memCategories) FindByIDs(_ context.Context, ids []string) ([]*domain.JobCategory, error) {
	var out []*domain.JobCategory
	for _, id := range domain.DedupIDs(ids) {
		if category, ok := m.byID[id]; ok {
			out = append(out, category)
		}
	}
	return out, nil
}

func (m *memCategories) List(_ context.Context) ([]*domain.JobCategory, error) {
	out := make([]*domain.JobCategory, 0, len(m.byID))
	for i := 1; i <= m.seq; i++ {
		if category, ok := m.byID[fmt.Sprintf("category_%d", i)]; ok {
			out = append(out, category)
		}
	}
	return out, nil
}

func (m *memCategories) Update(_ context.Context, category *domain.JobCategory) error {
	if _, ok := m.byID[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	m.byID[category.ID] = category
	return nil
}

func (m *memCategories) AddTags(_ context.Context, categoryIDs []string, tagID string) error {
	for _, id := range categoryIDs {
		category, ok := m.byID[id]
		if !ok {
			continue
		}
		if !containsID(category.Tags, tagID) {
			category.Tags = append(category.Tags, tagID)
		}
	}
	return nil
}

func (m *memCategories) RemoveTags(_ context.Context, categoryIDs []string, tagID string) error {
	for _, id := range categoryIDs {
		if category, ok := m.byID[id]; ok {
			category.Tags = removeID(category.Tags, tagID)
		}
	}
	return nil
}

type memTags struct {
	seq  int
	byID map[string]*domain.Tag
}

func newMemTags() *memTags { return &memTags{byID: map[string]*domain.Tag{}} }

func (m *memTags) Create(_ context.Context, tag *domain.Tag) (*domain.Tag, error) {
	for _, existing := range m.byID {
		if existing.Slug == tag.Slug {
			return nil, domain.Conflict("tag slug already exists")
		}
	}
	m.seq++
	tag.ID = fmt.Sprintf("tag_%d", m.seq)
	m.byID[tag.ID] = tag
	return tag, nil
}

func (m *memTags) FindByID(_ context.Context, id string) (*domain.Tag, error) {
	tag, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrTagNotFound
	}
	return tag, nil
}

func (m *memTags) FindByIDs(_ context.Context, ids []string) ([]*domain.Tag, error) {
	var out []*domain.Tag
	for _, id := range domain.DedupIDs(ids) {
		if tag, ok := m.byID[id]; ok {
			out = append(out, tag)
		}
	}
	return out, nil
}

func (m *memTags) FindBySlugs(_ context.Context, slugs []string) ([]*domain.Tag, error) {
	var out []*domain.Tag
	for _, slug := range slugs {
		for _, tag := range m.byID {
			if tag.Slug == strings.ToLower(slug) {
				out = append(out, tag)
			}
		}
	}
	return out, nil
}

func (m *memTags) List(_ context.Context) ([]*domain.Tag, error) {
	out := make([]*domain.Tag, 0, len(m.byID))
	for i := 1; i <= m.seq; i++ {
		if tag, ok := m.byID[fmt.Sprintf("tag_%d", i)]; ok {
			out = append(out, tag)
		}
	}
	return out, nil
}

func (m *memTags) Update(_ context.Context, tag *domain.Tag) error {
	if _, ok := m.byID[tag.ID]; !ok {
		return domain.ErrTagNotFound
	}
	m.byID[tag.ID] = tag
	return nil
}

func (m *memTags) AddCategories(_ context.Context, tagIDs []string, categoryID string) error {
	for _, id := range tagIDs {
		tag, ok := m.byID[id]
		if !ok {
			continue
		}
		if !containsID(tag.Categories, categoryID) {
			tag.Categories = append(tag.Categories, categoryID)
		}
	}
	return nil
}

func (m *memTags) RemoveCategories(_ context.Context, tagIDs []string, categoryID string) error {
	for _, id := range tagIDs {
		if tag, ok := m.byID[id]; ok {
			tag.Categories = removeID(tag.Categories, categoryID)
		}
	}
	return nil
}

type memJobs struct {
	seq  int
	byID map[string]*domain.JobPost
}

func newMemJobs() *memJobs { return &memJobs{byID: map[string]*domain.JobPost{}} }

func (m *memJobs) Create(_ context.Context, job *domain.JobPost) (*domain.JobPost, error) {
	if job.IsActive {
		for _, existing := range m.byID {
			if existing.CompanyID == job.CompanyID && existing.Title == job.Title && existing.IsActive {
				return nil, domain.ErrDuplicateJobTitle
			}
		}
	}
	m.seq++
	job.ID = fmt.Sprintf("job_%d", m.seq)
	m.byID[job.ID] = job
	return job, nil
}

func (m *memJobs) FindByID(_ context.Context, id string) (*domain.JobPost, error) {
	job, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}

func (m *memJobs) FindActiveByTitle(_ context.Context, companyID, title string) (*domain.JobPost, error) {
	for _, job := range m.byID {
		if job.CompanyID == companyID && job.Title == title && job.IsActive {
			return job, nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (m *memJobs) Update(_ context.Context, job *domain.JobPost) error {
	if _, ok := m.byID[job.ID]; !ok {
		return domain.ErrJobNotFound
	}
	if job.IsActive {
		for id, existing := range m.byID {
			if id != job.ID && existing.CompanyID == job.CompanyID && existing.Title == job.Title && existing.IsActive {
				return domain.ErrDuplicateJobTitle
			}
		}
	}
	m.byID[job.ID] = job
	return nil
}

func (m *memJobs) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memJobs) ListPublished(_ context.Context, filter ports.ListJobsFilter) ([]*domain.JobPost, int64, error) {
	var out []*domain.JobPost
	for i := 1; i <= m.seq; i++ {
		job, ok := m.byID[fmt.Sprintf("job_%d", i)]
		if !ok || !job.PubliclyVisible() {
			continue
		}
		if filter.CategoryID != "" && job.CategoryID != filter.CategoryID {
			continue
		}
		if containsID(filter.HideCategories, job.CategoryID) {
			continue
		}
		if len(filter.TagIDs) > 0 && !intersects(job.TagIDs, filter.TagIDs) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(job.Title+" "+job.Description), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, job)
	}
	return out, int64(len(out)), nil
}

func (m *memJobs) ListByCompany(_ context.Context, companyID string) ([]*domain.JobPost, error) {
	var out []*domain.JobPost
	for i := 1; i <= m.seq; i++ {
		if job, ok := m.byID[fmt.Sprintf("job_%d", i)]; ok && job.CompanyID == companyID {
			out = append(out, job)
		}
	}
	return out, nil
}

func (m *memJobs) Stats(_ context.Context, companyID string) (*ports.JobStats, error) {
	stats := &ports.JobStats{}
	for _, job := range m.byID {
		if job.CompanyID != companyID {
			continue
		}
		stats.Total++
		switch job.Status {
		case domain.JobPublished:
			stats.Published++
		case domain.JobDraft:
			stats.Draft++
		}
		if job.IsActive {
			stats.Active++
		}
	}
	return stats, nil
}

func (m *memJobs) CountPublishedByCategory(_ context.Context, categoryID string) (int64, error) {
	var n int64
	for _, job := range m.byID {
		if job.Status == domain.JobPublished && job.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (m *memJobs) CountPublishedByTag(_ context.Context, tagID string) (int64, error) {
	var n int64
	for _, job := range m.byID {
		if job.Status == domain.JobPublished && containsID(job.TagIDs, tagID) {
			n++
		}
	}
	return n, nil
}

type memApplications struct {
	seq  int
	byID map[string]*domain.JobApplication
}

func newMemApplications() *memApplications {
	return &memApplications{byID: map[string]*domain.JobApplication{}}
}

func (m *memApplications) Create(_ context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	for _, existing := range m.byID {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return nil, domain.ErrAlreadyApplied
		}
	}
	m.seq++
	app.ID = fmt.Sprintf("application_%d", m.seq)
	m.byID[app.ID] = app
	return app, nil
}

func (m *memApplications) FindByID(_ context.Context, id string) (*domain.JobApplication, error) {
	app, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	return app, nil
}

func (m *memApplications) FindByJobAndApplicant(_ context.Context, jobID, applicantID string) (*domain.JobApplication, error) {
	for _, app := range m.byID {
		if app.JobID == jobID && app.ApplicantID == applicantID {
			return app, nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (m *memApplications) ListByJob(_ context.Context, jobID string) ([]*domain.JobApplication, error) {
	var out []*domain.JobApplication
	for i := 1; i <= m.seq; i++ {
		if app, ok := m.byID[fmt.Sprintf("application_%d", i)]; ok && app.JobID == jobID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (m *memApplications) ListByApplicant(_ context.Context, applicantID string) ([]*domain.JobApplication, error) {
	var out []*domain.JobApplication
	for i := 1; i <= m.seq; i++ {
		if app, ok := m.byID[fmt.Sprintf("application_%d", i)]; ok && app.ApplicantID == applicantID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (m *memApplications) CountByJob(_ context.Context, jobID string) (int64, error) {
	var n int64
	for _, app := range m.byID {
		if app.JobID == jobID {
			n++
		}
	}
	return n, nil
}

func (m *memApplications) Update(_ context.Context, app *domain.JobApplication) error {
	if _, ok := m.byID[app.ID]; !ok {
		return domain.ErrApplicationNotFound
	}
	m.byID[app.ID] = app
	return nil
}

type memFollows struct {
	seq  int
	byID map[string]*domain.Follow
}

func newMemFollows() *memFollows { return &memFollows{byID: map[string]*domain.Follow{}} }

func (m *memFollows) Create(_ context.Context, follow *domain.Follow) (*domain.Follow, error) {
	for _, existing := range m.byID {
		if existing.UserID == follow.UserID && existing.Target == follow.Target {
			return nil, domain.ErrAlreadyFollowing
		}
	}
	m.seq++
	follow.ID = fmt.Sprintf("follow_%d", m.seq)
	m.byID[follow.ID] = follow
	return follow, nil
}

func (m *memFollows) Delete(_ context.Context, userID string, target domain.TargetRef) error {
	for id, follow := range m.byID {
		if follow.UserID == userID && follow.Target == target {
			delete(m.byID, id)
			return nil
		}
	}
	return domain.ErrFollowNotFound
}

func (m *memFollows) ListByUser(_ context.Context, userID string) ([]*domain.Follow, error) {
	var out []*domain.Follow
	for i := 1; i <= m.seq; i++ {
		if follow, ok := m.byID[fmt.Sprintf("follow_%d", i)]; ok && follow.UserID == userID {
			out = append(out, follow)
		}
	}
	return out, nil
}

func (m *memFollows) ListUserIDsByTargets(_ context.Context, targets []domain.TargetRef) ([]string, error) {
	seen := map[string]struct{}{}
	var out []string
	for _, follow := range m.byID {
		for _, target := range targets {
			if follow.Target == target {
				if _, dup := seen[follow.UserID]; !dup {
					seen[follow.UserID] = struct{}{}
					out = append(out, follow.UserID)
				}
			}
		}
	}
	return out, nil
}

func (m *memFollows) CountByTarget(_ context.Context, target domain.TargetRef) (int64, error) {
	var n int64
	for _, follow := range m.byID {
		if follow.Target == target {
			n++
		}
	}
	return n, nil
}

type memSubscriptions struct {
	seq  int
	byID map[string]*domain.Subscription
}

func newMemSubscriptions() *memSubscriptions {
	return &memSubscriptions{byID: map[string]*domain.Subscription{}}
}

func (m *memSubscriptions) Create(_ context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	for _, existing := range m.byID {
		if existing.Email == sub.Email && existing.Target == sub.Target && existing.IsActive {
			return nil, domain.ErrAlreadySubscribed
		}
	}
	m.seq++
	sub.ID = fmt.Sprintf("subscription_%d", m.seq)
	m.byID[sub.ID] = sub
	return sub, nil
}

func (m *memSubscriptions) FindByTuple(_ context.Context, email string, target domain.TargetRef) (*domain.Subscription, error) {
	for _, sub := range m.byID {
		if sub.Email == email && sub.Target == target {
			return sub, nil
		}
	}
	return nil, domain.NotFound("subscription not found")
}

func (m *memSubscriptions) FindByToken(_ context.Context, token string) (*domain.Subscription, error) {
	for _, sub := range m.byID {
		if sub.UnsubscribeToken != "" && sub.UnsubscribeToken == token {
			return sub, nil
		}
	}
	return nil, domain.ErrInvalidUnsubToken
}

func (m *memSubscriptions) Update(_ context.Context, sub *domain.Subscription) error {
	if _, ok := m.byID[sub.ID]; !ok {
		return domain.NotFound("subscription not found")
	}
	m.byID[sub.ID] = sub
	return nil
}

func (m *memSubscriptions) ListActiveEmailsByTargets(_ context.Context, targets []domain.TargetRef) ([]*domain.Subscription, error) {
	seen := map[string]struct{}{}
	var out []*domain.Subscription
	for _, sub := range m.byID {
		if !sub.IsActive {
			continue
		}
		for _, target := range targets {
			if sub.Target == target {
				if _, dup := seen[sub.Email]; !dup {
					seen[sub.Email] = struct{}{}
					out = append(out, sub)
				}
			}
		}
	}
	return out, nil
}

func (m *memSubscriptions) CountActiveByTarget(_ context.Context, target domain.TargetRef) (int64, error) {
	var n int64
	for _, sub := range m.byID {
		if sub.IsActive && sub.Target == target {
			n++
		}
	}
	return n, nil
}

type memProfiles struct {
	byUser map[string]*domain.FreelancerProfile
}

func newMemProfiles() *memProfiles {
	return &memProfiles{byUser: map[string]*domain.FreelancerProfile{}}
}

func (m *memProfiles) Upsert(_ context.Context, profile *domain.FreelancerProfile) (*domain.FreelancerProfile, error) {
	if profile.ID == "" {
		profile.ID = "profile_" + profile.UserID
	}
	m.byUser[profile.UserID] = profile
	return profile, nil
}

func (m *memProfiles) FindByUser(_ context.Context, userID string) (*domain.FreelancerProfile, error) {
	profile, ok := m.byUser[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

func (m *memProfiles) AddSkill(_ context.Context, userID string, skill domain.Skill) (bool, error) {
	profile, ok := m.byUser[userID]
	if !ok || profile.HasSkill(skill.Name) {
		return false, nil
	}
	profile.Skills = append(profile.Skills, skill)
	return true, nil
}

func (m *memProfiles) RemoveSkill(_ context.Context, userID, name string) error {
	profile, ok := m.byUser[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	kept := profile.Skills[:0:0]
	for _, skill := range profile.Skills {
		if skill.Name != name {
			kept = append(kept, skill)
		}
	}
	profile.Skills = kept
	return nil
}

func (m *memProfiles) AddLink(_ context.Context, userID string, link domain.Link) (bool, error) {
	profile, ok := m.byUser[userID]
	if !ok || profile.HasLink(link.Name) {
		return false, nil
	}
	profile.Links = append(profile.Links, link)
	return true, nil
}

func (m *memProfiles) RemoveLink(_ context.Context, userID, name string) error {
	profile, ok := m.byUser[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	kept := profile.Links[:0:0]
	for _, link := range profile.Links {
		if link.Name != name {
			kept = append(kept, link)
		}
	}
	profile.Links = kept
	return nil
}

func (m *memProfiles) SetVisibility(_ context.Context, userID string, public bool) error {
	profile, ok := m.byUser[userID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	profile.IsPublic = public
	return nil
}

type memNotifications struct {
	seq  int
	byID map[string]*domain.Notification
}

func newMemNotifications() *memNotifications {
	return &memNotifications{byID: map[string]*domain.Notification{}}
}

func (m *memNotifications) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	m.seq++
	n.ID = fmt.Sprintf("notification_%d", m.seq)
	m.byID[n.ID] = n
	return n, nil
}

func (m *memNotifications) FindByIDAndUser(_ context.Context, id, userID string) (*domain.Notification, error) {
	n, ok := m.byID[id]
	if !ok || n.UserID != userID {
		return nil, domain.ErrNotificationNotFound
	}
	return n, nil
}

func (m *memNotifications) ListByUser(_ context.Context, userID string) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for i := 1; i <= m.seq; i++ {
		if n, ok := m.byID[fmt.Sprintf("notification_%d", i)]; ok && n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memNotifications) Update(_ context.Context, n *domain.Notification) error {
	if _, ok := m.byID[n.ID]; !ok {
		return domain.ErrNotificationNotFound
	}
	m.byID[n.ID] = n
	return nil
}

func (m *memNotifications) MarkAllRead(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, notification := range m.byID {
		if notification.UserID == userID && !notification.IsRead {
			notification.IsRead = true
			n++
		}
	}
	return n, nil
}

type memPages struct {
	seq  int
	byID map[string]*domain.StaticPage
}

func newMemPages() *memPages { return &memPages{byID: map[string]*domain.StaticPage{}} }

func (m *memPages) Create(_ context.Context, page *domain.StaticPage) (*domain.StaticPage, error) {
	for _, existing := range m.byID {
		if existing.Slug == page.Slug {
			return nil, domain.Conflict("page slug already exists")
		}
	}
	m.seq++
	page.ID = fmt.Sprintf("page_%d", m.seq)
	m.byID[page.ID] = page
	return page, nil
}

func (m *memPages) FindByID(_ context.Context, id string) (*domain.StaticPage, error) {
	page, ok := m.byID[id]
	if !ok {
		return nil, domain.NotFound("page not found")
	}
	return page, nil
}

func (m *memPages) FindBySlug(_ context.Context, slug string) (*domain.StaticPage, error) {
	for _, page := range m.byID {
		if page.Slug == slug {
			return page, nil
		}
	}
	return nil, domain.NotFound("page not found")
}

func (m *memPages) List(_ context.Context) ([]*domain.StaticPage, error) {
	var out []*domain.StaticPage
	for i := 1; i <= m.seq; i++ {
		if page, ok := m.byID[fmt.Sprintf("page_%d", i)]; ok {
			out = append(out, page)
		}
	}
	return out, nil
}

func (m *memPages) Update(_ context.Context, page *domain.StaticPage) error {
	if _, ok := m.byID[page.ID]; !ok {
		return domain.NotFound("page not found")
	}
	m.byID[page.ID] = page
	return nil
}

type memFAQs struct {
	seq  int
	byID map[string]*domain.FAQ
}

func newMemFAQs() *memFAQs { return &memFAQs{byID: map[string]*domain.FAQ{}} }

func (m *memFAQs) Create(_ context.Context, faq *domain.FAQ) (*domain.FAQ, error) {
	m.seq++
	faq.ID = fmt.Sprintf("faq_%d", m.seq)
	m.byID[faq.ID] = faq
	return faq, nil
}

func (m *memFAQs) FindByID(_ context.Context, id string) (*domain.FAQ, error) {
	faq, ok := m.byID[id]
	if !ok {
		return nil, domain.NotFound("faq not found")
	}
	return faq, nil
}

func (m *memFAQs) List(_ context.Context) ([]*domain.FAQ, error) {
	var out []*domain.FAQ
	for i := 1; i <= m.seq; i++ {
		if faq, ok := m.byID[fmt.Sprintf("faq_%d", i)]; ok {
			out = append(out, faq)
		}
	}
	return out, nil
}

func (m *memFAQs) Update(_ context.Context, faq *domain.FAQ) error {
	if _, ok := m.byID[faq.ID]; !ok {
		return domain.NotFound("faq not found")
	}
	m.byID[faq.ID] = faq
	return nil
}

// recordingNotifier records which events were published.
type recordingNotifier struct {
	published     []string
	received      []string
	statusChanged []string
}

func (n *recordingNotifier) JobPublished(job *domain.JobPost) {
	n.published = append(n.published, job.ID)
}

func (n *recordingNotifier) ApplicationReceived(job *domain.JobPost, app *domain.JobApplication) {
	n.received = append(n.received, app.ID)
}

func (n *recordingNotifier) ApplicationStatusChanged(job *domain.JobPost, app *domain.JobApplication) {
	n.statusChanged = append(n.statusChanged, app.ID)
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	kept := ids[:0:0]
	for _, candidate := range ids {
		if candidate != id {
			kept = append(kept, candidate)
		}
	}
	return kept
}

func intersects(a, b []string) bool {
	for _, x := range a {
		if containsID(b, x) {
			return true
		}
	}
	return false
}
