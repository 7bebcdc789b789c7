package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nujjum/accessibility-api/internal/api/metrics"
	"github.com/nujjum/accessibility-api/internal/core/ports"
)

const (
	collectionPodUsers = "poduser"
	defaultListLimit   = 10
)

// ProfileService implements profile creation and listing on top of the
// generic document store.
type ProfileService struct {
	store  ports.DocumentStore
	logger zerolog.Logger
}

func NewProfileService(store ports.DocumentStore, logger zerolog.Logger) *ProfileService {
	return &ProfileService{store: store, logger: logger}
}

// Create validates the user, applies profile defaults, and persists the
// document. Validation failures are detected before any storage call.
func (s *ProfileService) Create(ctx context.Context, input ports.CreateProfileInput) (*ports.ProfileResult, error) {
	user := toDomainUser(input)
	user.Profile.ApplyDefaults()
	if err := user.Validate(); err != nil {
		return nil, err
	}

	id, err := s.store.Create(ctx, collectionPodUsers, userDocument(user))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create profile")
		return nil, err
	}

	metrics.ProfilesCreatedTotal.Inc()
	s.logger.Info().Str("profile_id", id).Msg("profile created")

	return &ports.ProfileResult{ID: id, Message: "Profile created"}, nil
}

// List returns up to limit stored profiles, each carrying its public id.
// A non-positive limit falls back to the default of 10.
func (s *ProfileService) List(ctx context.Context, limit int) (*ports.ListProfilesResult, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	docs, err := s.store.List(ctx, collectionPodUsers, ports.Document{}, int64(limit))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list profiles")
		return nil, err
	}

	items := make([]ports.ProfileItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, profileItemFromDocument(doc))
	}
	return &ports.ListProfilesResult{Items: items}, nil
}
