package entity

import "time"

// Story is a promotional banner shown in the mobile app.
type Story struct {
	ID          string     `bson:"_id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	MediaURL    string     `bson:"mediaUrl" json:"mediaUrl"`
	Caption     string     `bson:"caption,omitempty" json:"caption,omitempty"`
	Active      bool       `bson:"active" json:"active"`
	PublishedAt time.Time  `bson:"publishedAt" json:"publishedAt"`
	ExpiresAt   *time.Time `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
}

// Visible reports whether the story should be served at time t.
func (s *Story) Visible(t time.Time) bool {
	if !s.Active || s.PublishedAt.After(t) {
		return false
	}
	return s.ExpiresAt == nil || s.ExpiresAt.After(t)
}
