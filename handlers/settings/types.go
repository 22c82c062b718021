package settings

type UpdateSettingsRequest struct {
	Theme       string `json:"theme" binding:"required"`
	Description string `json:"description" binding:"required"`
	TargetDate  string `json:"target_date" binding:"required"`
}

// Error messages
const (
	ErrInvalidTargetDate = "target_date must be an RFC3339 timestamp"
	ErrFailedToUpdate    = "Failed to update settings"
)
