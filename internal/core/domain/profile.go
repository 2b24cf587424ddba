package domain

import (
	"strings"
	"time"
)

// Skill is a named proficiency on a freelancer profile. Names are unique per
// profile after normalization.
type Skill struct {
	Name  string `json:"name" bson:"name"`
	Level int    `json:"level" bson:"level"` // 1..5
}

// Link is a named external URL on a freelancer profile.
type Link struct {
	Name string `json:"name" bson:"name"`
	URL  string `json:"url" bson:"url"`
}

// FreelancerProfile is one-to-one with a professional user.
type FreelancerProfile struct {
	ID       string  `json:"id" bson:"_id,omitempty"`
	UserID   string  `json:"user_id" bson:"user_id"`
	Title    string  `json:"title,omitempty" bson:"title,omitempty"`
	Bio      string  `json:"bio,omitempty" bson:"bio,omitempty"`
	Skills   []Skill `json:"skills" bson:"skills"`
	Links    []Link  `json:"links" bson:"links"`
	CVURL    string  `json:"cv_url,omitempty" bson:"cv_url,omitempty"`
	IsPublic bool    `json:"is_public" bson:"is_public"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NormalizeName trims and collapses internal whitespace so "Go   Lang " and
// "Go Lang" count as the same skill or link name.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// HasSkill reports whether a normalized skill name is already present.
func (p *FreelancerProfile) HasSkill(normalized string) bool {
	for _, s := range p.Skills {
		if s.Name == normalized {
			return true
		}
	}
	return false
}

// HasLink reports whether a normalized link name is already present.
func (p *FreelancerProfile) HasLink(normalized string) bool {
	for _, l := range p.Links {
		if l.Name == normalized {
			return true
		}
	}
	return false
}
