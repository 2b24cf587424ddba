package domain

import "time"

// StaticPage is an admin-managed CMS page (about, terms, privacy...).
type StaticPage struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Slug        string    `json:"slug" bson:"slug"`
	Title       string    `json:"title" bson:"title"`
	Body        string    `json:"body" bson:"body"`
	IsPublished bool      `json:"is_published" bson:"is_published"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// FAQ is a single question/answer entry ordered by Order ascending.
type FAQ struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Question  string    `json:"question" bson:"question"`
	Answer    string    `json:"answer" bson:"answer"`
	Order     int       `json:"order" bson:"order"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
