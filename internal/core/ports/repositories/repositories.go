package repositories

import "context"

// LedgerStore is everything the services need from a persistence backend.
// File, PostgreSQL and Redis backends all implement it.
//
// Writes are last-write-wins: two callers editing the same entity's ledger
// concurrently are not reconciled.
type LedgerStore interface {
	EntityRepositoryFacade
	TransactionRepositoryFacade
	SettingsRepository

	// Reset deletes every entity, transaction and the settings document.
	Reset(ctx context.Context) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
