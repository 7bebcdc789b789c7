package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type disabilityProfileRequest struct {
	DisabilityType []string `json:"disability_type" validate:"required,min=1,dive,oneof=visual hearing mobility cognitive multiple"`
	PreferredMode  string   `json:"preferred_mode"  validate:"omitempty,oneof=voice text simplified auto"`
	Language       string   `json:"language"        validate:"omitempty,oneof=en ar"`
	HighContrast   bool     `json:"high_contrast"`
	LargeText      bool     `json:"large_text"`
}

// podUserRequest carries a POD user payload. Contact fields are free-form
// text with no format validation by design.
type podUserRequest struct {
	Name               string                   `json:"name"`
	Email              string                   `json:"email"`
	Phone              string                   `json:"phone"`
	Country            string                   `json:"country"`
	City               string                   `json:"city"`
	Profile            disabilityProfileRequest `json:"profile"`
	DocumentsSubmitted []string                 `json:"documents_submitted"`
}

type createProfileRequest struct {
	User podUserRequest `json:"user"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from
// ports/domain types so the JSON contract is not coupled to internal changes.

type createProfileResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type disabilityProfileResponse struct {
	DisabilityType []string `json:"disability_type"`
	PreferredMode  string   `json:"preferred_mode"`
	Language       string   `json:"language"`
	HighContrast   bool     `json:"high_contrast"`
	LargeText      bool     `json:"large_text"`
}

type profileItemResponse struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name,omitempty"`
	Email              string                    `json:"email,omitempty"`
	Phone              string                    `json:"phone,omitempty"`
	Country            string                    `json:"country,omitempty"`
	City               string                    `json:"city,omitempty"`
	Profile            disabilityProfileResponse `json:"profile"`
	DocumentsSubmitted []string                  `json:"documents_submitted"`
}

type listProfilesResponse struct {
	Items []profileItemResponse `json:"items"`
}
