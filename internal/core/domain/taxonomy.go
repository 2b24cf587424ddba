package domain

import "time"

// JobCategory groups jobs and carries the mirror side of the category⇄tag
// relation: Tags here must always equal the set of tags whose Categories
// contain this category's id.
type JobCategory struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Name        string   `json:"name" bson:"name"`
	Slug        string   `json:"slug" bson:"slug"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Tags        []string `json:"tags" bson:"tags"`
	IsActive    bool     `json:"is_active" bson:"is_active"`
	CreatedBy   string   `json:"created_by" bson:"created_by"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Tag is the symmetric half of the taxonomy graph.
type Tag struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Name        string   `json:"name" bson:"name"`
	Slug        string   `json:"slug" bson:"slug"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Categories  []string `json:"categories" bson:"categories"`
	IsActive    bool     `json:"is_active" bson:"is_active"`
	CreatedBy   string   `json:"created_by" bson:"created_by"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// DiffIDs computes which ids were removed from old and which were added by
// next. Both mirror updates derived from it are idempotent set operations,
// so a retry after partial failure converges instead of double-applying.
func DiffIDs(old, next []string) (removed, added []string) {
	oldSet := make(map[string]struct{}, len(old))
	for _, id := range old {
		oldSet[id] = struct{}{}
	}
	nextSet := make(map[string]struct{}, len(next))
	for _, id := range next {
		nextSet[id] = struct{}{}
	}
	for _, id := range old {
		if _, ok := nextSet[id]; !ok {
			removed = append(removed, id)
		}
	}
	for _, id := range next {
		if _, ok := oldSet[id]; !ok {
			added = append(added, id)
		}
	}
	return removed, added
}

// DedupIDs keeps the first occurrence of each id, preserving order.
func DedupIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
