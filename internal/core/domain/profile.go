package domain

import "fmt"

// DisabilityType is one of the fixed disability categories a POD user can
// declare on their profile.
type DisabilityType string

const (
	DisabilityVisual    DisabilityType = "visual"
	DisabilityHearing   DisabilityType = "hearing"
	DisabilityMobility  DisabilityType = "mobility"
	DisabilityCognitive DisabilityType = "cognitive"
	DisabilityMultiple  DisabilityType = "multiple"
)

// PreferredMode selects how the UI adapts its interaction style.
type PreferredMode string

const (
	ModeVoice      PreferredMode = "voice"
	ModeText       PreferredMode = "text"
	ModeSimplified PreferredMode = "simplified"
	ModeAuto       PreferredMode = "auto"
)

// Language is a supported UI language.
type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)

var disabilityTypes = map[DisabilityType]struct{}{
	DisabilityVisual:    {},
	DisabilityHearing:   {},
	DisabilityMobility:  {},
	DisabilityCognitive: {},
	DisabilityMultiple:  {},
}

var preferredModes = map[PreferredMode]struct{}{
	ModeVoice:      {},
	ModeText:       {},
	ModeSimplified: {},
	ModeAuto:       {},
}

// Valid reports whether t is a known disability category.
func (t DisabilityType) Valid() bool {
	_, ok := disabilityTypes[t]
	return ok
}

// Valid reports whether m is a known preferred mode.
func (m PreferredMode) Valid() bool {
	_, ok := preferredModes[m]
	return ok
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LangEnglish || l == LangArabic
}

// DisabilityProfile holds the accessibility settings embedded in a PodUser.
// It has no identity of its own.
type DisabilityProfile struct {
	DisabilityType []DisabilityType
	PreferredMode  PreferredMode
	Language       Language
	HighContrast   bool
	LargeText      bool
}

// PodUser is an accessibility platform user (Person of Determination).
// Records are immutable after creation; the store assigns an opaque id on
// insert, kept outside this struct.
type PodUser struct {
	Name               string
	Email              string
	Phone              string
	Country            string
	City               string
	Profile            DisabilityProfile
	DocumentsSubmitted []string
}

// ApplyDefaults fills the enum fields that carry defaults when the caller
// left them empty.
func (p *DisabilityProfile) ApplyDefaults() {
	if p.PreferredMode == "" {
		p.PreferredMode = ModeAuto
	}
	if p.Language == "" {
		p.Language = LangEnglish
	}
}

// Validate checks the profile invariants: at least one disability category,
// and every enumerated field inside its fixed literal set.
func (p DisabilityProfile) Validate() error {
	if len(p.DisabilityType) == 0 {
		return fmt.Errorf("%w: at least one disability_type is required", ErrValidation)
	}
	for _, t := range p.DisabilityType {
		if !t.Valid() {
			return fmt.Errorf("%w: unknown disability_type %q", ErrValidation, t)
		}
	}
	if p.PreferredMode != "" && !p.PreferredMode.Valid() {
		return fmt.Errorf("%w: unknown preferred_mode %q", ErrValidation, p.PreferredMode)
	}
	if p.Language != "" && !p.Language.Valid() {
		return fmt.Errorf("%w: unknown language %q", ErrValidation, p.Language)
	}
	return nil
}

// Validate checks the user invariants. Contact fields are free-form text and
// deliberately carry no format validation.
func (u PodUser) Validate() error {
	return u.Profile.Validate()
}
