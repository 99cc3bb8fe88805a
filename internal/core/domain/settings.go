package domain

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
)

// BalanceDisplay controls whether formatted balances keep their sign.
type BalanceDisplay string

const (
	BalanceSigned   BalanceDisplay = "signed"
	BalanceAbsolute BalanceDisplay = "absolute"
)

// Settings are the application preferences. The JSON names are the persisted keys.
type Settings struct {
	CurrencySymbol       string         `json:"currency_symbol" validate:"required"`
	DateFormat           string         `json:"date_format" validate:"required"`
	BalanceDisplay       BalanceDisplay `json:"balance_display" validate:"oneof=signed absolute"`
	NotificationEnabled  bool           `json:"notification_enabled"`
	Theme                string         `json:"theme" validate:"oneof=dark light"`
	AutoBackup           bool           `json:"auto_backup"`
	AutoCalculateBalance bool           `json:"auto_calculate_balance"`
	AutoSaveInterval     int            `json:"auto_save_interval" validate:"gte=1"`
	AutoDateFormat       bool           `json:"auto_date_format"`
}

// DefaultSettings returns the settings used for any key that was never persisted.
func DefaultSettings() Settings {
	return Settings{
		CurrencySymbol:       "₹",
		DateFormat:           "%Y-%m-%d",
		BalanceDisplay:       BalanceSigned,
		NotificationEnabled:  true,
		Theme:                "dark",
		AutoBackup:           true,
		AutoCalculateBalance: true,
		AutoSaveInterval:     5,
		AutoDateFormat:       true,
	}
}

// Validate checks every field of s.
func (s Settings) Validate() error {
	return validateStruct(s)
}

// SettingsDocument is the persisted key/value form of the settings. It may hold
// only a subset of the known keys, and keys this version does not know about.
type SettingsDocument map[string]json.RawMessage

// MergeSettings overlays doc onto the defaults key by key. A key whose value
// has the wrong type keeps its default and is returned in invalidKeys.
func MergeSettings(doc SettingsDocument) (s Settings, invalidKeys []string) {
	s = DefaultSettings()
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		single, err := json.Marshal(map[string]json.RawMessage{k: doc[k]})
		if err != nil {
			invalidKeys = append(invalidKeys, k)
			continue
		}
		candidate := s
		if err := json.Unmarshal(single, &candidate); err != nil {
			invalidKeys = append(invalidKeys, k)
			continue
		}
		s = candidate
	}
	return s, invalidKeys
}

// Document writes every field of s over a copy of base, so unknown keys in
// base survive a save.
func (s Settings) Document(base SettingsDocument) (SettingsDocument, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding settings: %v", apperrors.ErrValidation, err)
	}
	var known SettingsDocument
	if err := json.Unmarshal(raw, &known); err != nil {
		return nil, fmt.Errorf("%w: encoding settings: %v", apperrors.ErrValidation, err)
	}
	out := make(SettingsDocument, len(base)+len(known))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range known {
		out[k] = v
	}
	return out, nil
}
