package ports

import (
	"context"

	"github.com/jobdeck/job-board-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Users are
// soft-deleted only; no physical removal exists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByTokenHash locates a user holding the given hashed one-time token
	// in the slot named by purpose.
	FindByTokenHash(ctx context.Context, purpose domain.TokenPurpose, hash string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
