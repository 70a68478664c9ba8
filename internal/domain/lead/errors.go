package lead

import "errors"

var (
	ErrNotConfigured = errors.New("lead store is not configured")
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrPersist       = errors.New("failed to save lead")
	ErrSlugCollision = errors.New("plan id already taken")
	ErrLeadNotFound  = errors.New("lead not found")
)

// Messages written to clients.
const (
	msgServerConfig  = "Server configuration error"
	msgInvalidBody   = "Invalid request body"
	msgMissingFields = "Missing required fields"
	msgInvalidPhone  = "Invalid phone number"
	msgUnknownFlow   = "Unknown flow"
	msgSaveFailed    = "Something went wrong saving your plan. Please try again."
	msgPlanNotFound  = "Plan not found"
	msgInternalError = "Internal server error"
	msgInvalidPaging = "Invalid pagination"
)
