package handler

// createSosRequest carries an SOS payload. A client-supplied status is
// accepted by the decoder but discarded by the service: stored status is
// always "open".
type createSosRequest struct {
	UserID        string `json:"user_id"`
	Location      string `json:"location"`
	Notes         string `json:"notes"`
	EmergencyType string `json:"emergency_type" validate:"omitempty,oneof=medical safety mobility_support other"`
	Status        string `json:"status"`
}

type createSosResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
