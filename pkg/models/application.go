package models

import "time"

// ApplicationCreateRequest holds the multipart form fields of an
// application submission. The two PDFs arrive as file parts.
type ApplicationCreateRequest struct {
	CreatorName        string `form:"creator_name" validate:"required,min=2,max=200"`
	YoutubeHandle      string `form:"youtube_handle" validate:"omitempty,max=100"`
	TiktokHandle       string `form:"tiktok_handle" validate:"omitempty,max=100"`
	InstagramHandle    string `form:"instagram_handle" validate:"omitempty,max=100"`
	YoutubeFollowers   int    `form:"youtube_followers" validate:"min=0"`
	TiktokFollowers    int    `form:"tiktok_followers" validate:"min=0"`
	InstagramFollowers int    `form:"instagram_followers" validate:"min=0"`
	Website            string `form:"website" validate:"omitempty,url,max=300"`
	ProjectIdea        string `form:"project_idea" validate:"required,min=10"`
	TargetAudience     string `form:"target_audience" validate:"required,min=5"`
	WhyJoin            string `form:"why_join" validate:"required,min=10"`
}

// ApplicationReviewRequest is the admin review patch.
type ApplicationReviewRequest struct {
	Status     string   `json:"status" validate:"omitempty,oneof=under_review accepted rejected"`
	AdminNotes *string  `json:"admin_notes,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// ApplicationResponse represents a single application in API responses
type ApplicationResponse struct {
	ID                 int        `json:"id"`
	CreatorName        string     `json:"creator_name"`
	YoutubeHandle      string     `json:"youtube_handle,omitempty"`
	TiktokHandle       string     `json:"tiktok_handle,omitempty"`
	InstagramHandle    string     `json:"instagram_handle,omitempty"`
	YoutubeFollowers   int        `json:"youtube_followers"`
	TiktokFollowers    int        `json:"tiktok_followers"`
	InstagramFollowers int        `json:"instagram_followers"`
	Website            string     `json:"website,omitempty"`
	ProjectIdea        string     `json:"project_idea"`
	TargetAudience     string     `json:"target_audience"`
	WhyJoin            string     `json:"why_join"`
	PitchDeckURL       string     `json:"pitch_deck_url,omitempty"`
	MediaKitURL        string     `json:"media_kit_url,omitempty"`
	Status             string     `json:"status"`
	AdminNotes         string     `json:"admin_notes,omitempty"`
	Tags               []string   `json:"tags,omitempty"`
	SubmittedAt        *time.Time `json:"submitted_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// ApplicationListResponse represents a paginated list of applications
type ApplicationListResponse struct {
	Data       []ApplicationResponse `json:"data"`
	Pagination PaginationInfo        `json:"pagination"`
}
