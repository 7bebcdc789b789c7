package domain

import "fmt"

// EmergencyType classifies an SOS request.
type EmergencyType string

const (
	EmergencyMedical         EmergencyType = "medical"
	EmergencySafety          EmergencyType = "safety"
	EmergencyMobilitySupport EmergencyType = "mobility_support"
	EmergencyOther           EmergencyType = "other"
)

// SosStatus is the lifecycle state of an SOS record. Creation always yields
// StatusOpen; StatusClosed exists in the schema but no operation produces it
// yet — the close flow is an acknowledged gap, not a hidden transition.
type SosStatus string

const (
	SosOpen   SosStatus = "open"
	SosClosed SosStatus = "closed"
)

var emergencyTypes = map[EmergencyType]struct{}{
	EmergencyMedical:         {},
	EmergencySafety:          {},
	EmergencyMobilitySupport: {},
	EmergencyOther:           {},
}

// Valid reports whether t is a known emergency type.
func (t EmergencyType) Valid() bool {
	_, ok := emergencyTypes[t]
	return ok
}

// Sos is an emergency request logged by (or on behalf of) a POD user.
// The store assigns an opaque id on insert, kept outside this struct.
type Sos struct {
	UserID        string
	Location      string
	Notes         string
	EmergencyType EmergencyType
	Status        SosStatus
}

// ApplyDefaults fills the emergency type default. Status is not defaulted
// here: the SOS service forces it to SosOpen regardless of input.
func (s *Sos) ApplyDefaults() {
	if s.EmergencyType == "" {
		s.EmergencyType = EmergencyMedical
	}
}

// Validate checks the SOS invariants.
func (s Sos) Validate() error {
	if s.EmergencyType != "" && !s.EmergencyType.Valid() {
		return fmt.Errorf("%w: unknown emergency_type %q", ErrValidation, s.EmergencyType)
	}
	return nil
}
