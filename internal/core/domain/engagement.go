package domain

import "time"

// TargetType discriminates the entity kinds a follow or subscription can
// point at.
type TargetType string

const (
	TargetCompany  TargetType = "company"
	TargetCategory TargetType = "category"
	TargetTag      TargetType = "tag"
)

func (t TargetType) Valid() bool {
	return t == TargetCompany || t == TargetCategory || t == TargetTag
}

// TargetRef is a typed polymorphic reference: the type names which entity
// kind is referenced and ID holds its identifier. Services resolve a ref
// through a registry of per-type lookup functions before persisting it.
type TargetRef struct {
	Type TargetType `json:"type" bson:"type"`
	ID   string     `json:"id" bson:"id"`
}

// Follow records an authenticated user following a target.
// (UserID, Target) is unique, backed by an index.
type Follow struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Target    TargetRef `json:"target" bson:"target"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Subscription records an email-based follow, not necessarily tied to a
// user account. At most one active row may exist per (Email, Target);
// uniqueness is enforced only among active rows so an unsubscribed tuple is
// reactivated in place instead of duplicated.
type Subscription struct {
	ID               string     `json:"id" bson:"_id,omitempty"`
	Email            string     `json:"email" bson:"email"`
	Target           TargetRef  `json:"target" bson:"target"`
	IsActive         bool       `json:"is_active" bson:"is_active"`
	UnsubscribeToken string     `json:"-" bson:"unsubscribe_token,omitempty"`
	UnsubscribedAt   *time.Time `json:"unsubscribed_at,omitempty" bson:"unsubscribed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" bson:"updated_at"`
}
