package handoff

// CreateRequest carries either a ready message or the answers to build one
// from.
type CreateRequest struct {
	Message  string         `json:"message"`
	Name     string         `json:"name"`
	Flow     string         `json:"flow" validate:"omitempty,oneof=coach plan"`
	FormData map[string]any `json:"formData"`
}

type CreateResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Link    string `json:"link"`
}

type TakeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Link    string `json:"link"`
}
