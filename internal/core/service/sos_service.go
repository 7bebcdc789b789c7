package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nujjum/accessibility-api/internal/api/metrics"
	"github.com/nujjum/accessibility-api/internal/core/domain"
	"github.com/nujjum/accessibility-api/internal/core/ports"
)

const (
	collectionSos = "sos"
	sosMessage    = "SOS logged. Coordinators notified."
)

// SosDedup abstracts the recent-SOS guard (Redis). A hit means the user
// already logged an SOS moments ago; the original id is replayed instead of
// writing a second document.
type SosDedup interface {
	Recall(ctx context.Context, userID string) (id string, ok bool, err error)
	Remember(ctx context.Context, userID, sosID string) error
}

// SosService logs emergency requests. Stored status is always "open"; any
// client-supplied status is discarded.
type SosService struct {
	store  ports.DocumentStore
	guard  SosDedup // nil when Redis is unavailable
	logger zerolog.Logger
}

func NewSosService(store ports.DocumentStore, guard SosDedup, logger zerolog.Logger) *SosService {
	return &SosService{store: store, guard: guard, logger: logger}
}

func (s *SosService) Create(ctx context.Context, input ports.CreateSosInput) (*ports.SosResult, error) {
	sos := domain.Sos{
		UserID:        input.UserID,
		Location:      input.Location,
		Notes:         input.Notes,
		EmergencyType: domain.EmergencyType(input.EmergencyType),
	}
	sos.ApplyDefaults()
	if err := sos.Validate(); err != nil {
		return nil, err
	}
	sos.Status = domain.SosOpen

	// Guard failures never block an emergency.
	if s.guard != nil && sos.UserID != "" {
		id, ok, err := s.guard.Recall(ctx, sos.UserID)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Str("user_id", sos.UserID).Msg("sos guard recall failed, logging anyway")
		case ok:
			metrics.SosDedupTotal.WithLabelValues("hit").Inc()
			s.logger.Info().Str("sos_id", id).Str("user_id", sos.UserID).Msg("recent sos replayed")
			return &ports.SosResult{ID: id, Status: string(domain.SosOpen), Message: sosMessage}, nil
		default:
			metrics.SosDedupTotal.WithLabelValues("miss").Inc()
		}
	}

	id, err := s.store.Create(ctx, collectionSos, sosDocument(sos))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to log sos")
		return nil, err
	}

	if s.guard != nil && sos.UserID != "" {
		if err := s.guard.Remember(ctx, sos.UserID, id); err != nil {
			s.logger.Warn().Err(err).Str("user_id", sos.UserID).Msg("failed to set sos guard key")
		}
	}

	metrics.SosCreatedTotal.WithLabelValues(string(sos.EmergencyType)).Inc()
	s.logger.Info().
		Str("sos_id", id).
		Str("emergency_type", string(sos.EmergencyType)).
		Msg("sos logged")

	return &ports.SosResult{ID: id, Status: string(domain.SosOpen), Message: sosMessage}, nil
}
