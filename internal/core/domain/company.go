package domain

import "time"

// CompanyStatus mirrors the user soft-delete lifecycle.
type CompanyStatus string

const (
	CompanyActive   CompanyStatus = "active"
	CompanyInactive CompanyStatus = "inactive"
	CompanyDeleted  CompanyStatus = "deleted"
)

// Company is owned by exactly one user. Ownership is immutable after
// creation; there is no transfer operation.
type Company struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Name        string        `json:"name" bson:"name"`
	Domain      string        `json:"domain" bson:"domain"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Website     string        `json:"website,omitempty" bson:"website,omitempty"`
	Location    string        `json:"location,omitempty" bson:"location,omitempty"`
	LogoURL     string        `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	OwnerID     string        `json:"owner_id" bson:"owner_id"`
	Status      CompanyStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

// OwnedBy is the single ownership check gating every job mutation.
func (c *Company) OwnedBy(userID string) bool {
	return c.OwnerID == userID
}
