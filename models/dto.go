package models

type ApplyArtistRequest struct {
	Name      string `json:"name" validate:"required,min=1"`
	Bio       string `json:"bio" validate:"required,min=1"`
	Country   string `json:"country" validate:"required"`
	City      string `json:"city" validate:"required,min=1"`
	Website   string `json:"website" validate:"required,min=1"`
	Instagram string `json:"instagram" validate:"required,min=1"`
	Facebook  string `json:"facebook" validate:"required,min=1"`
	Featured  bool   `json:"featured"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type CreateArtRequest struct {
	Title        string   `json:"title" validate:"required,min=1"`
	Description  string   `json:"description" validate:"required,min=1"`
	Category     string   `json:"category" validate:"required"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	Images       []string `json:"images" validate:"required,min=1,max=5,dive,required"`
	Availability string   `json:"availability" validate:"required"`
	Featured     bool     `json:"featured"`
}

type UpdateArtRequest struct {
	Title        string   `json:"title" validate:"required,min=1"`
	Description  string   `json:"description" validate:"required,min=1"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	Images       []string `json:"images" validate:"required,min=1,max=5,dive,required"`
	Availability string   `json:"availability" validate:"required"`
	Featured     bool     `json:"featured"`
}

type CreateBlogRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Subtitle    string `json:"subtitle" validate:"max=160"`
	ArtistName  string `json:"artist_name" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
	Image       string `json:"image" validate:"required,min=1"`
	Featured    bool   `json:"featured"`
}

type CreateCommentRequest struct {
	Body              string `json:"body" validate:"required,min=1"`
	AuthorID          string `json:"author_id" validate:"required,min=1"`
	AuthorUsername    string `json:"author_username" validate:"required,min=1"`
	AuthorDisplayName string `json:"author_display_name" validate:"required,min=1"`
	AuthorImage       string `json:"author_image" validate:"required,min=1"`
	AuthorRole        string `json:"author_role" validate:"required"`
}

type UpdateHomepageRequest struct {
	FeaturedArtistIDs []string `json:"featured_artist_ids"`
	FeaturedArtIDs    []string `json:"featured_art_ids"`
	FeaturedBlogIDs   []string `json:"featured_blog_ids"`
}

type UpsertProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1"`
	Bio         string `json:"bio" validate:"required,min=1"`
	Country     string `json:"country" validate:"required"`
	City        string `json:"city" validate:"required,min=1"`
	Website     string `json:"website" validate:"required,min=1"`
	Instagram   string `json:"instagram" validate:"required,min=1"`
	Facebook    string `json:"facebook" validate:"required,min=1"`
	AvatarURL   string `json:"avatar_url"`
}

type ArtListParams struct {
	Category string `form:"category"`
}

type AdminArtListParams struct {
	Visible *bool `form:"visible"`
}

type AdminStatusParams struct {
	Status string `form:"status"`
}

// ToggleLikeResponse reports the artwork's state after a like toggle.
type ToggleLikeResponse struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

type OverviewResponse struct {
	PendingArtists int64 `json:"pending_artists"`
	PendingBlogs   int64 `json:"pending_blogs"`
	BannedArtworks int64 `json:"banned_artworks"`
	TotalArtists   int64 `json:"total_artists"`
	TotalArtworks  int64 `json:"total_artworks"`
}
