package ports

import "context"

// DisabilityProfileInput carries the accessibility settings of a profile
// request as plain strings; enum checking happens in the service.
type DisabilityProfileInput struct {
	DisabilityType []string
	PreferredMode  string
	Language       string
	HighContrast   bool
	LargeText      bool
}

// CreateProfileInput carries all data needed to create a POD user profile.
type CreateProfileInput struct {
	Name               string
	Email              string
	Phone              string
	Country            string
	City               string
	Profile            DisabilityProfileInput
	DocumentsSubmitted []string
}

// ProfileResult is returned by the service after creating a profile.
type ProfileResult struct {
	ID      string
	Message string
}

// ProfileItem is a stored profile as returned by the list operation, with
// the store-assigned id normalized to the public ID field.
type ProfileItem struct {
	ID                 string
	Name               string
	Email              string
	Phone              string
	Country            string
	City               string
	Profile            DisabilityProfileInput
	DocumentsSubmitted []string
}

// ListProfilesResult is returned by List.
type ListProfilesResult struct {
	Items []ProfileItem
}

// ProfileService defines use-case operations for POD user profiles.
type ProfileService interface {
	Create(ctx context.Context, input CreateProfileInput) (*ProfileResult, error)
	List(ctx context.Context, limit int) (*ListProfilesResult, error)
}
