package lead

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"bura/internal/wizard"
)

// SubmitRequest is the body of POST /api/submit.
type SubmitRequest struct {
	Name     string         `json:"name" validate:"required"`
	Phone    string         `json:"phone" validate:"required"`
	FormData map[string]any `json:"formData" validate:"required"`
	Flow     string         `json:"flow" validate:"omitempty,oneof=coach plan"`
}

var errMalformedBody = errors.New("malformed submit body")

// parseSubmitRequest decodes body field by field. The body must be a JSON
// object carrying a non-empty phone; anything less is malformed. Fields of the
// wrong type are left empty for the required checks to reject.
func parseSubmitRequest(body []byte) (*SubmitRequest, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil, errMalformedBody
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, errMalformedBody
	}
	if raw, ok := fields["phone"]; !ok || isFalsy(raw) {
		return nil, errMalformedBody
	}

	req := &SubmitRequest{}
	decodeField(fields, "name", &req.Name)
	decodeField(fields, "phone", &req.Phone)
	decodeField(fields, "formData", &req.FormData)
	decodeField(fields, "flow", &req.Flow)

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Flow = strings.TrimSpace(req.Flow)
	return req, nil
}

// isFalsy reports JSON values a phone can never be: null, false, 0 and "".
func isFalsy(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return true
	}
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	}
	return false
}

func decodeField(fields map[string]json.RawMessage, key string, dst any) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	_ = json.Unmarshal(raw, dst)
}

func (r *SubmitRequest) input() SubmitInput {
	flow := r.Flow
	if flow == "" {
		flow = wizard.FlowCoach
	}
	return SubmitInput{
		Name:     r.Name,
		Phone:    r.Phone,
		FormData: r.FormData,
		Flow:     flow,
	}
}

// LeadListResponse is the internal export page.
type LeadListResponse struct {
	Leads  []Lead `json:"leads"`
	Total  int64  `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}
