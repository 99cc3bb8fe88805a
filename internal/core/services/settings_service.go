package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
)

type settingsService struct {
	BaseService
	repo portsrepo.SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repo portsrepo.SettingsRepository) portssvc.SettingsSvc {
	return &settingsService{repo: repo}
}

var _ portssvc.SettingsSvc = (*settingsService)(nil)

func (s *settingsService) load(ctx context.Context) (domain.SettingsDocument, domain.Settings, error) {
	doc, err := s.repo.LoadSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings")
		return nil, domain.Settings{}, err
	}
	settings, invalid := domain.MergeSettings(doc)
	if len(invalid) > 0 {
		s.LogWarn(ctx, "Ignoring persisted settings with invalid values", slog.Any("keys", invalid))
	}
	return doc, settings, nil
}

func (s *settingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	_, settings, err := s.load(ctx)
	return settings, err
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (domain.Settings, error) {
	doc, current, err := s.load(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	updated := req.ApplyTo(current)
	if err := updated.Validate(); err != nil {
		return domain.Settings{}, err
	}
	newDoc, err := updated.Document(doc)
	if err != nil {
		return domain.Settings{}, err
	}
	if err := s.repo.SaveSettings(ctx, newDoc); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return domain.Settings{}, err
	}
	s.LogInfo(ctx, "Settings updated")
	return updated, nil
}
