package ports

import "context"

// CreateSosInput carries an SOS request. Status is accepted here only so the
// service can demonstrably discard it: stored status is always "open".
type CreateSosInput struct {
	UserID        string
	Location      string
	Notes         string
	EmergencyType string
	Status        string
}

// SosResult is returned after logging an SOS.
type SosResult struct {
	ID      string
	Status  string
	Message string
}

// SosService defines use-case operations for emergency requests.
type SosService interface {
	Create(ctx context.Context, input CreateSosInput) (*SosResult, error)
}
