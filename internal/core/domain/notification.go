package domain

import "time"

// NotificationType labels where a notification came from.
type NotificationType string

const (
	NotifSystem       NotificationType = "system"
	NotifJob          NotificationType = "job"
	NotifApplication  NotificationType = "application"
	NotifInvite       NotificationType = "invite"
	NotifSubscription NotificationType = "subscription"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotifSystem, NotifJob, NotifApplication, NotifInvite, NotifSubscription:
		return true
	}
	return false
}

// Notification is a per-user mailbox entry. Created only by internal events;
// consumers poll and mark entries read. No delivery guarantee beyond
// persistence.
type Notification struct {
	ID        string           `json:"id" bson:"_id,omitempty"`
	UserID    string           `json:"user_id" bson:"user_id"`
	Title     string           `json:"title" bson:"title"`
	Message   string           `json:"message" bson:"message"`
	Type      NotificationType `json:"type" bson:"type"`
	IsRead    bool             `json:"is_read" bson:"is_read"`
	Link      string           `json:"link,omitempty" bson:"link,omitempty"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
}
