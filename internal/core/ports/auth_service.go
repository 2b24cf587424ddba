package ports

import (
	"context"

	"github.com/jobdeck/job-board-api/internal/core/domain"
)

// SignupInput carries a self-service registration.
type SignupInput struct {
	Name        string
	Email       string
	Password    string
	AccountType string // "professional" or "employer"
}

// InviteInput is an admin-initiated account creation. The invited user
// finishes registration through AcceptInvite with the emailed token.
type InviteInput struct {
	Name  string
	Email string
	Role  string
}

// AcceptInviteInput completes an invited registration.
type AcceptInviteInput struct {
	Token       string
	Password    string
	AccountType string
}

// AuthService implements registration, login, invites, and password reset.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Invite(ctx context.Context, actor *domain.User, in InviteInput) (*domain.User, error)
	AcceptInvite(ctx context.Context, in AcceptInviteInput) (string, *domain.User, error)
	// VerifyEmail consumes the single-use token from the signup email.
	VerifyEmail(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	// DeleteAccount soft-deletes the actor's own account.
	DeleteAccount(ctx context.Context, actor *domain.User, reason string) error
	// Authenticate resolves a user id from middleware claims into an active
	// actor, rejecting inactive and deleted accounts.
	Authenticate(ctx context.Context, userID string) (*domain.User, error)
}
