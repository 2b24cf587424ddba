package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/jobdeck/job-board-api/internal/core/domain"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

const testJWTSecret = "test-secret"

func newAuthTestEnv() (*memUsers, *AuthService) {
	users := newMemUsers()
	svc := NewAuthService(users, nil, "http://localhost:8080", testJWTSecret, time.Hour, zerolog.Nop())
	return users, svc
}

func signupUser(t *testing.T, svc *AuthService, email string) *domain.User {
	t.Helper()
	user, err := svc.Signup(context.Background(), ports.SignupInput{
		Name:        "Jane",
		Email:       email,
		Password:    "hunter2-long",
		AccountType: string(domain.AccountProfessional),
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	return user
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	_, svc := newAuthTestEnv()
	user := signupUser(t, svc, "JANE@example.com")

	if user.Email != "jane@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Role != domain.RoleUser || user.Status != domain.UserActive {
		t.Fatalf("unexpected role/status: %q/%q", user.Role, user.Status)
	}
	if user.PasswordHash == "hunter2-long" {
		t.Fatalf("password must be stored hashed")
	}

	token, logged, err := svc.Login(context.Background(), "jane@example.com", "hunter2-long")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("expected same user back")
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != user.ID {
		t.Fatalf("expected sub %q, got %v", user.ID, claims["sub"])
	}
}

func TestAuthService_SignupValidation(t *testing.T) {
	_, svc := newAuthTestEnv()

	cases := []ports.SignupInput{
		{Name: "Jane", Email: "j@e.c", Password: "short", AccountType: "professional"},
		{Name: "Jane", Email: "j@e.c", Password: "long-enough", AccountType: "recruiter"},
		{Name: "", Email: "j@e.c", Password: "long-enough", AccountType: "professional"},
	}
	for i, in := range cases {
		if _, err := svc.Signup(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	_, svc := newAuthTestEnv()
	signupUser(t, svc, "jane@example.com")

	_, err := svc.Signup(context.Background(), ports.SignupInput{
		Name: "Jane Two", Email: "jane@example.com", Password: "hunter2-long", AccountType: "employer",
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	_, svc := newAuthTestEnv()
	signupUser(t, svc, "jane@example.com")

	_, _, err := svc.Login(context.Background(), "jane@example.com", "wrong-password")
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestAuthService_LoginUnknownEmailSameError(t *testing.T) {
	_, svc := newAuthTestEnv()

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever-long")
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestAuthService_LoginDisabledAccount(t *testing.T) {
	users, svc := newAuthTestEnv()
	user := signupUser(t, svc, "jane@example.com")
	users.byID[user.ID].Status = domain.UserInactive

	_, _, err := svc.Login(context.Background(), "jane@example.com", "hunter2-long")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for disabled account, got %v", err)
	}
}

func TestAuthService_InviteRoleGates(t *testing.T) {
	_, svc := newAuthTestEnv()
	admin := &domain.User{ID: "user_admin", Name: "Admin", Role: domain.RoleAdmin, Status: domain.UserActive}
	superAdmin := &domain.User{ID: "user_root", Name: "Root", Role: domain.RoleSuperAdmin, Status: domain.UserActive}
	regular := &domain.User{ID: "user_1", Role: domain.RoleUser, Status: domain.UserActive}

	if _, err := svc.Invite(context.Background(), regular, ports.InviteInput{Name: "X", Email: "x@e.c"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for regular user, got %v", err)
	}
	if _, err := svc.Invite(context.Background(), admin, ports.InviteInput{Name: "X", Email: "x@e.c", Role: "admin"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for admin inviting admin, got %v", err)
	}
	if _, err := svc.Invite(context.Background(), superAdmin, ports.InviteInput{Name: "X", Email: "x@e.c", Role: "super-admin"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error inviting super-admin, got %v", err)
	}

	invited, err := svc.Invite(context.Background(), superAdmin, ports.InviteInput{Name: "X", Email: "x@e.c", Role: "admin"})
	if err != nil {
		t.Fatalf("super-admin inviting admin: %v", err)
	}
	if invited.Status != domain.UserInactive {
		t.Fatalf("invited accounts start inactive, got %q", invited.Status)
	}
	if invited.InviteToken == nil {
		t.Fatalf("expected a stored invite token")
	}
}

func TestAuthService_AcceptInviteActivates(t *testing.T) {
	users, svc := newAuthTestEnv()
	plaintext := "invite-token-plaintext"
	invited, _ := users.Create(context.Background(), &domain.User{
		Name:   "X",
		Email:  "x@e.c",
		Role:   domain.RoleUser,
		Status: domain.UserInactive,
		InviteToken: &domain.OneTimeToken{
			Hash:      hashToken(plaintext),
			ExpiresAt: time.Now().Add(time.Hour),
		},
	})

	token, user, err := svc.AcceptInvite(context.Background(), ports.AcceptInviteInput{
		Token:       plaintext,
		Password:    "hunter2-long",
		AccountType: "professional",
	})
	if err != nil {
		t.Fatalf("accept invite: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}
	if user.ID != invited.ID || user.Status != domain.UserActive || !user.EmailVerified {
		t.Fatalf("unexpected accepted user: %+v", user)
	}
	if user.InviteToken != nil {
		t.Fatalf("invite token must be consumed")
	}

	// Token is single-use.
	if _, _, err := svc.AcceptInvite(context.Background(), ports.AcceptInviteInput{
		Token: plaintext, Password: "hunter2-long", AccountType: "professional",
	}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error on reuse, got %v", err)
	}
}

func TestAuthService_AcceptInviteExpiredToken(t *testing.T) {
	users, svc := newAuthTestEnv()
	plaintext := "expired-token"
	if _, err := users.Create(context.Background(), &domain.User{
		Name: "X", Email: "x@e.c", Role: domain.RoleUser, Status: domain.UserInactive,
		InviteToken: &domain.OneTimeToken{
			Hash:      hashToken(plaintext),
			ExpiresAt: time.Now().Add(-time.Minute),
		},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, _, err := svc.AcceptInvite(context.Background(), ports.AcceptInviteInput{
		Token: plaintext, Password: "hunter2-long", AccountType: "professional",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for expired token, got %v", err)
	}
}

func TestAuthService_ForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	_, svc := newAuthTestEnv()

	if err := svc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("forgot password must not reveal unknown accounts: %v", err)
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	users, svc := newAuthTestEnv()
	user := signupUser(t, svc, "jane@example.com")
	plaintext := "reset-token"
	users.byID[user.ID].ResetToken = &domain.OneTimeToken{
		Hash:      hashToken(plaintext),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	if err := svc.ResetPassword(context.Background(), plaintext, "new-password-1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "jane@example.com", "hunter2-long"); err == nil {
		t.Fatalf("old password must stop working")
	}
	if _, _, err := svc.Login(context.Background(), "jane@example.com", "new-password-1"); err != nil {
		t.Fatalf("new password should work: %v", err)
	}

	// The reset token is consumed.
	if err := svc.ResetPassword(context.Background(), plaintext, "another-pass-1"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error on reuse, got %v", err)
	}
}

func TestAuthService_VerifyEmailConsumesToken(t *testing.T) {
	users, svc := newAuthTestEnv()
	user := signupUser(t, svc, "jane@example.com")
	if users.byID[user.ID].EmailVerified {
		t.Fatalf("signup must not start verified")
	}
	plaintext := "verify-token"
	users.byID[user.ID].VerifyToken = &domain.OneTimeToken{
		Hash:      hashToken(plaintext),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	if err := svc.VerifyEmail(context.Background(), plaintext); err != nil {
		t.Fatalf("verify: %v", err)
	}
	stored := users.byID[user.ID]
	if !stored.EmailVerified {
		t.Fatalf("expected email verified")
	}
	if stored.VerifyToken != nil {
		t.Fatalf("verification token must be consumed")
	}

	// Revisiting the same link fails.
	if err := svc.VerifyEmail(context.Background(), plaintext); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error on reuse, got %v", err)
	}
}

func TestAuthService_VerifyEmailExpiredToken(t *testing.T) {
	users, svc := newAuthTestEnv()
	user := signupUser(t, svc, "jane@example.com")
	plaintext := "verify-token"
	users.byID[user.ID].VerifyToken = &domain.OneTimeToken{
		Hash:      hashToken(plaintext),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	if err := svc.VerifyEmail(context.Background(), plaintext); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for expired token, got %v", err)
	}
	if err := svc.VerifyEmail(context.Background(), ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for empty token, got %v", err)
	}
	if users.byID[user.ID].EmailVerified {
		t.Fatalf("expired token must not verify the email")
	}
}

func TestAuthService_DeleteAccountSoftDeletes(t *testing.T) {
	users, svc := newAuthTestEnv()
	user := signupUser(t, svc, "jane@example.com")

	if err := svc.DeleteAccount(context.Background(), user, "leaving"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	stored := users.byID[user.ID]
	if stored == nil {
		t.Fatalf("soft delete must keep the record")
	}
	if stored.Status != domain.UserDeleted || stored.DeletedAt == nil || stored.DeleteReason != "leaving" {
		t.Fatalf("unexpected soft-deleted state: %+v", stored)
	}

	// Deleted accounts can no longer authenticate.
	if _, err := svc.Authenticate(context.Background(), user.ID); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestAuthService_AuthenticateActiveUser(t *testing.T) {
	_, svc := newAuthTestEnv()
	user := signupUser(t, svc, "jane@example.com")

	got, err := svc.Authenticate(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %q, got %q", user.ID, got.ID)
	}
}
