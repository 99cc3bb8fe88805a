package repositories

import (
	"context"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
)

// SettingsRepository persists the settings document.
type SettingsRepository interface {
	// LoadSettings returns the persisted subset of settings, or an empty document when none was saved.
	LoadSettings(ctx context.Context) (domain.SettingsDocument, error)

	// SaveSettings replaces the persisted settings document.
	SaveSettings(ctx context.Context, doc domain.SettingsDocument) error
}
