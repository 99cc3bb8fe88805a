package services

import (
	"context"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/SscSPs/ledger_book_app/internal/models"
)

// SettingsSvc reads and changes application preferences.
type SettingsSvc interface {
	// GetSettings returns the defaults overlaid with every persisted key.
	GetSettings(ctx context.Context) (domain.Settings, error)
	// UpdateSettings changes the provided fields and keeps unknown persisted keys.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (domain.Settings, error)
}

// BackupSvc moves the whole data set in and out of the backup envelope.
type BackupSvc interface {
	CreateBackup(ctx context.Context) (*models.Backup, error)
	// Restore parses raw as a backup document and merges it into the store.
	// Per-record failures are reported, not returned as an error.
	Restore(ctx context.Context, raw []byte) (*domain.RestoreReport, error)
	// Reset deletes everything; confirm must equal dto.ResetConfirmation.
	Reset(ctx context.Context, confirm string) error
}

// AuthSvc issues API tokens for the single configured operator.
type AuthSvc interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

// HealthSvc reports whether the storage backend is reachable.
type HealthSvc interface {
	Ping(ctx context.Context) error
}
