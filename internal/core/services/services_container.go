package services

import (
	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, store portsrepo.LedgerStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Entity = NewEntityService(store, store, WithEntityBalanceConvention(cfg.SupplierBalanceConvention))
	container.Transaction = NewTransactionService(store, store)
	container.Ledger = NewLedgerService(store, store, cfg.SupplierBalanceConvention)
	container.Dashboard = NewDashboardService(store, store,
		WithDashboardBalanceConvention(cfg.SupplierBalanceConvention),
		WithRecentActivityLimit(cfg.RecentActivityLimit),
	)
	container.Settings = NewSettingsService(store)
	container.Backup = NewBackupService(store)

	// Export renders through the ledger and settings services
	container.Export = NewExportService(container.Ledger, container.Settings)

	container.Auth = NewAuthService(cfg)
	container.Health = NewHealthService(store)

	return container
}
