package mongo

import (
	"context"
	"fmt"

	"github.com/nujjum/accessibility-api/internal/core/domain"
	"github.com/nujjum/accessibility-api/internal/core/ports"
)

// Disconnected is the DocumentStore used when no database was configured or
// reachable at startup. The process keeps serving static endpoints and
// diagnostics; every persistence call fails with ErrNotConfigured wrapped in
// ErrStorage.
type Disconnected struct {
	// Reason is the connect error observed at startup, if any.
	Reason error
}

func (d Disconnected) Create(context.Context, string, ports.Document) (string, error) {
	return "", d.err()
}

func (d Disconnected) List(context.Context, string, ports.Document, int64) ([]ports.Document, error) {
	return nil, d.err()
}

func (d Disconnected) Ping(context.Context) error {
	if d.Reason != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotConfigured, d.Reason)
	}
	return domain.ErrNotConfigured
}

func (d Disconnected) Collections(context.Context) ([]string, error) {
	return nil, domain.ErrNotConfigured
}

func (d Disconnected) err() error {
	return fmt.Errorf("%w: %v", domain.ErrStorage, domain.ErrNotConfigured)
}
