package services

import (
	"context"

	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
)

type healthService struct {
	BaseService
	store portsrepo.LedgerStore
}

// NewHealthService creates a service pinging store.
func NewHealthService(store portsrepo.LedgerStore) portssvc.HealthSvc {
	return &healthService{store: store}
}

func (s *healthService) Ping(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		s.LogError(ctx, err, "Storage health check failed")
		return err
	}
	return nil
}
