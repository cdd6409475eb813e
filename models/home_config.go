package models

import "time"

// Per-list caps for the curated homepage.
const (
	MaxFeaturedArtists = 4
	MaxFeaturedArts    = 8
	MaxFeaturedBlogs   = 6
)

// HomeConfig is the singleton homepage curation record. The ID lists are
// advisory: entries are de-duplicated and capped on write but never checked
// against the catalog.
type HomeConfig struct {
	ID                uint      `json:"-" gorm:"primarykey"`
	FeaturedArtistIDs []string  `json:"featured_artist_ids" gorm:"serializer:json"`
	FeaturedArtIDs    []string  `json:"featured_art_ids" gorm:"serializer:json"`
	FeaturedBlogIDs   []string  `json:"featured_blog_ids" gorm:"serializer:json"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ClampUnique keeps the first occurrence of each ID, preserving order, and
// truncates the result to max entries.
func ClampUnique(ids []string, max int) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, max)
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
		if len(result) >= max {
			break
		}
	}
	return result
}
