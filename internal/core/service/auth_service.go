package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

const (
	minPasswordLength = 8
	inviteTTL         = 72 * time.Hour
	resetTTL          = time.Hour
)

// AuthService implements registration, login, admin invites, and password
// reset. One-time tokens are stored hashed; the plaintext only lives long
// enough to be emailed.
type AuthService struct {
	users     ports.UserRepository
	mailer    ports.Mailer
	baseURL   string
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

func NewAuthService(users ports.UserRepository, mailer ports.Mailer, baseURL, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		mailer:    mailer,
		baseURL:   strings.TrimRight(baseURL, "/"),
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || email == "" {
		return nil, domain.Validation("name and email are required")
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.Validation("password must be at least 8 characters")
	}
	accountType := domain.AccountType(in.AccountType)
	if !accountType.Valid() {
		return nil, domain.Validation("account type must be professional or employer")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.now()
	plaintext, verify, err := s.newOneTimeToken(now.Add(inviteTTL))
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        email,
		Role:         domain.RoleUser,
		AccountType:  accountType,
		PasswordHash: string(hash),
		Status:       domain.UserActive,
		VerifyToken:  verify,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.sendMail(created.Email, "Verify your email", fmt.Sprintf(
		"<p>Welcome, %s.</p><p><a href=%q>Verify your email address</a></p>",
		created.Name, s.baseURL+"/v1/auth/verify/"+plaintext,
	))

	s.logger.Info().Str("user_id", created.ID).Str("account_type", in.AccountType).Msg("user signed up")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.CanAct() {
		return "", nil, domain.Forbidden("account is not active")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Invite creates an inactive account and emails a one-time invite token.
// Super-admins may invite admins; admins invite regular users.
func (s *AuthService) Invite(ctx context.Context, actor *domain.User, in ports.InviteInput) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	role := domain.Role(in.Role)
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() || role == domain.RoleSuperAdmin {
		return nil, domain.Validation("invalid invite role")
	}
	if role == domain.RoleAdmin && actor.Role != domain.RoleSuperAdmin {
		return nil, domain.Forbidden("only a super-admin can invite admins")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || email == "" {
		return nil, domain.Validation("name and email are required")
	}

	now := s.now()
	plaintext, invite, err := s.newOneTimeToken(now.Add(inviteTTL))
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:        in.Name,
		Email:       email,
		Role:        role,
		Status:      domain.UserInactive, // activated on accept
		InviteToken: invite,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.sendMail(created.Email, "You have been invited", fmt.Sprintf(
		"<p>%s invited you to join.</p><p><a href=%q>Accept the invite</a></p>",
		actor.Name, s.baseURL+"/v1/auth/invite/accept?token="+plaintext,
	))

	s.logger.Info().Str("user_id", created.ID).Str("invited_by", actor.ID).Msg("user invited")
	return created, nil
}

func (s *AuthService) AcceptInvite(ctx context.Context, in ports.AcceptInviteInput) (string, *domain.User, error) {
	if len(in.Password) < minPasswordLength {
		return "", nil, domain.Validation("password must be at least 8 characters")
	}

	user, err := s.users.FindByTokenHash(ctx, domain.TokenInvite, hashToken(in.Token))
	if err != nil {
		return "", nil, domain.Validation("invite token is invalid or expired")
	}
	if user.InviteToken == nil || user.InviteToken.Expired(s.now()) {
		return "", nil, domain.Validation("invite token is invalid or expired")
	}

	if user.Role == domain.RoleUser {
		accountType := domain.AccountType(in.AccountType)
		if !accountType.Valid() {
			return "", nil, domain.Validation("account type must be professional or employer")
		}
		user.AccountType = accountType
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user.PasswordHash = string(hash)
	user.Status = domain.UserActive
	user.EmailVerified = true
	user.InviteToken = nil
	user.UpdatedAt = s.now()
	if err := s.users.Update(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// VerifyEmail consumes the token mailed at signup. Single-use: the token is
// cleared on success, so a second visit to the same link fails.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return domain.Validation("verification token is invalid or expired")
	}

	user, err := s.users.FindByTokenHash(ctx, domain.TokenEmailVerify, hashToken(token))
	if err != nil {
		return domain.Validation("verification token is invalid or expired")
	}
	if user.VerifyToken == nil || user.VerifyToken.Expired(s.now()) {
		return domain.Validation("verification token is invalid or expired")
	}

	user.EmailVerified = true
	user.VerifyToken = nil
	user.UpdatedAt = s.now()
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", user.ID).Msg("email verified")
	return nil
}

// ForgotPassword never reveals whether an account exists.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Debug().Str("email", email).Msg("password reset requested for unknown email")
		return nil
	}

	now := s.now()
	plaintext, reset, err := s.newOneTimeToken(now.Add(resetTTL))
	if err != nil {
		return err
	}
	user.ResetToken = reset
	user.UpdatedAt = now
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.sendMail(user.Email, "Reset your password", fmt.Sprintf(
		"<p>Use the link below within one hour.</p><p><a href=%q>Reset password</a></p>",
		s.baseURL+"/v1/auth/password/reset?token="+plaintext,
	))
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return domain.Validation("password must be at least 8 characters")
	}

	user, err := s.users.FindByTokenHash(ctx, domain.TokenPasswordReset, hashToken(token))
	if err != nil {
		return domain.Validation("reset token is invalid or expired")
	}
	if user.ResetToken == nil || user.ResetToken.Expired(s.now()) {
		return domain.Validation("reset token is invalid or expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := s.now()
	user.PasswordHash = string(hash)
	user.PasswordChangedAt = now
	user.ResetToken = nil
	user.UpdatedAt = now
	return s.users.Update(ctx, user)
}

// DeleteAccount soft-deletes: the record stays for referential integrity.
func (s *AuthService) DeleteAccount(ctx context.Context, actor *domain.User, reason string) error {
	user, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return err
	}
	now := s.now()
	user.Status = domain.UserDeleted
	user.DeletedAt = &now
	user.DeleteReason = reason
	user.UpdatedAt = now
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", user.ID).Msg("account soft-deleted")
	return nil
}

func (s *AuthService) Authenticate(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, &domain.Error{Kind: domain.ErrUnauthenticated, Msg: "account not found"}
	}
	if !user.CanAct() {
		return nil, &domain.Error{Kind: domain.ErrUnauthenticated, Msg: "account is disabled"}
	}
	return user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":          user.ID,
		"role":         string(user.Role),
		"account_type": string(user.AccountType),
		"exp":          s.now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newOneTimeToken returns the plaintext to email and the hashed record to
// store.
func (s *AuthService) newOneTimeToken(expiresAt time.Time) (string, *domain.OneTimeToken, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	plaintext := hex.EncodeToString(b)
	return plaintext, &domain.OneTimeToken{Hash: hashToken(plaintext), ExpiresAt: expiresAt}, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *AuthService) sendMail(to, subject, body string) {
	if s.mailer == nil {
		return
	}
	go func() {
		if err := s.mailer.Send(to, subject, body); err != nil {
			s.logger.Warn().Err(err).Str("to", to).Str("subject", subject).Msg("email send failed")
		}
	}()
}
