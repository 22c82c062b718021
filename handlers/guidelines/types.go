package guidelines

// ReplaceGuidelinesRequest carries the full desired guideline list. The
// pointer distinguishes a missing or non-list field from a valid empty list.
type ReplaceGuidelinesRequest struct {
	Guidelines *[]string `json:"guidelines"`
}

// Error messages
const (
	ErrInvalidFormat = "Invalid data format"
	ErrFailedToFetch = "Failed to fetch guidelines"
	ErrFailedToSave  = "Failed to save guidelines"
)
