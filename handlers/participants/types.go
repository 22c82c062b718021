package participants

type CreateParticipantRequest struct {
	Name             string  `json:"name" binding:"required"`
	VideoTitle       string  `json:"video_title" binding:"required"`
	InstagramPostURL string  `json:"instagram_post_url" binding:"required"`
	ThumbnailURL     *string `json:"thumbnail_url"`
	Likes            *int    `json:"likes"`
}

// UpdateParticipantRequest carries a partial update; absent fields keep
// their stored value
type UpdateParticipantRequest struct {
	Name             *string `json:"name"`
	VideoTitle       *string `json:"video_title"`
	InstagramPostURL *string `json:"instagram_post_url"`
	ThumbnailURL     *string `json:"thumbnail_url"`
	Likes            *int    `json:"likes"`
}

type ThumbnailResponse struct {
	URL string `json:"url"`
}

// Field-level validation messages
const (
	ErrInvalidInstagramURL = "Invalid Instagram URL"
	ErrNoPostID            = "Could not extract Post ID from URL"
)

// Request-level error messages
const (
	ErrParticipantNotFound  = "Participant not found"
	ErrFailedToCreate       = "Failed to create participant"
	ErrFailedToUpdate       = "Failed to update participant"
	ErrFailedToDelete       = "Failed to delete participant"
	ErrFailedToGetRanking   = "Failed to fetch participants"
	ErrNegativeLikes        = "Likes must not be negative"
	ErrFailedToUploadImage  = "Failed to upload thumbnail"
	ErrStorageNotConfigured = "Thumbnail storage is not configured"
)
