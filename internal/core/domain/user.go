package domain

import "time"

// Role determines administrative capability.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// AccountType splits regular users into job seekers and job posters.
// Required whenever Role is RoleUser.
type AccountType string

const (
	AccountProfessional AccountType = "professional"
	AccountEmployer     AccountType = "employer"
)

// UserStatus is the soft-delete lifecycle of an account. Users are never
// physically removed.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserDeleted  UserStatus = "deleted"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin || r == RoleSuperAdmin
}

func (a AccountType) Valid() bool {
	return a == AccountProfessional || a == AccountEmployer
}

// TokenPurpose names the one-time token slots on a user record.
type TokenPurpose string

const (
	TokenInvite        TokenPurpose = "invite"
	TokenPasswordReset TokenPurpose = "password_reset"
	TokenEmailVerify   TokenPurpose = "email_verify"
)

// OneTimeToken holds the hashed form of an emailed token and its expiry.
// The plaintext is only ever held in memory long enough to send the email.
type OneTimeToken struct {
	Hash      string    `json:"-" bson:"hash"`
	ExpiresAt time.Time `json:"-" bson:"expires_at"`
}

// Expired reports whether the token is unusable at the given instant.
func (t OneTimeToken) Expired(now time.Time) bool {
	return t.Hash == "" || now.After(t.ExpiresAt)
}

// User models an account. Credential material is opaque to the core beyond
// the bcrypt hash comparison done by the auth service.
type User struct {
	ID            string      `json:"id" bson:"_id,omitempty"`
	Name          string      `json:"name" bson:"name"`
	Email         string      `json:"email" bson:"email"`
	Phone         string      `json:"phone,omitempty" bson:"phone,omitempty"`
	Role          Role        `json:"role" bson:"role"`
	AccountType   AccountType `json:"account_type,omitempty" bson:"account_type,omitempty"`
	PasswordHash  string      `json:"-" bson:"password_hash"`
	Status        UserStatus  `json:"status" bson:"status"`
	EmailVerified bool        `json:"email_verified" bson:"email_verified"`

	InviteToken       *OneTimeToken `json:"-" bson:"invite_token,omitempty"`
	ResetToken        *OneTimeToken `json:"-" bson:"reset_token,omitempty"`
	VerifyToken       *OneTimeToken `json:"-" bson:"verify_token,omitempty"`
	PasswordChangedAt time.Time     `json:"-" bson:"password_changed_at,omitempty"`

	DeletedAt    *time.Time `json:"-" bson:"deleted_at,omitempty"`
	DeleteReason string     `json:"-" bson:"delete_reason,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// CanAct reports whether the account may perform authenticated operations.
func (u *User) CanAct() bool {
	return u.Status == UserActive
}

// IsAdmin covers both admin tiers.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
