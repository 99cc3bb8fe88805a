package dto

import "github.com/SscSPs/ledger_book_app/internal/core/domain"

// UpdateSettingsRequest defines the settings to change.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateSettingsRequest struct {
	CurrencySymbol       *string                `json:"currency_symbol" binding:"omitempty,min=1"`
	DateFormat           *string                `json:"date_format" binding:"omitempty,min=1"`
	BalanceDisplay       *domain.BalanceDisplay `json:"balance_display" binding:"omitempty,oneof=signed absolute"`
	NotificationEnabled  *bool                  `json:"notification_enabled"`
	Theme                *string                `json:"theme" binding:"omitempty,oneof=dark light"`
	AutoBackup           *bool                  `json:"auto_backup"`
	AutoCalculateBalance *bool                  `json:"auto_calculate_balance"`
	AutoSaveInterval     *int                   `json:"auto_save_interval" binding:"omitempty,min=1"`
	AutoDateFormat       *bool                  `json:"auto_date_format"`
}

// ApplyTo returns s with every provided field replaced.
func (r UpdateSettingsRequest) ApplyTo(s domain.Settings) domain.Settings {
	if r.CurrencySymbol != nil {
		s.CurrencySymbol = *r.CurrencySymbol
	}
	if r.DateFormat != nil {
		s.DateFormat = *r.DateFormat
	}
	if r.BalanceDisplay != nil {
		s.BalanceDisplay = *r.BalanceDisplay
	}
	if r.NotificationEnabled != nil {
		s.NotificationEnabled = *r.NotificationEnabled
	}
	if r.Theme != nil {
		s.Theme = *r.Theme
	}
	if r.AutoBackup != nil {
		s.AutoBackup = *r.AutoBackup
	}
	if r.AutoCalculateBalance != nil {
		s.AutoCalculateBalance = *r.AutoCalculateBalance
	}
	if r.AutoSaveInterval != nil {
		s.AutoSaveInterval = *r.AutoSaveInterval
	}
	if r.AutoDateFormat != nil {
		s.AutoDateFormat = *r.AutoDateFormat
	}
	return s
}
