package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSettings_PersistedWinsPerKey(t *testing.T) {
	doc := domain.SettingsDocument{
		"currency_symbol":    json.RawMessage(`"$"`),
		"auto_save_interval": json.RawMessage(`"ten"`),
		"legacy_flag":        json.RawMessage(`true`),
	}
	s, invalid := domain.MergeSettings(doc)

	assert.Equal(t, "$", s.CurrencySymbol)
	assert.Equal(t, 5, s.AutoSaveInterval, "bad value keeps default")
	assert.Equal(t, []string{"auto_save_interval"}, invalid)
	assert.Equal(t, "dark", s.Theme)
	assert.Equal(t, "%Y-%m-%d", s.DateFormat)
}

func TestMergeSettings_EmptyIsDefaults(t *testing.T) {
	s, invalid := domain.MergeSettings(nil)
	assert.Equal(t, domain.DefaultSettings(), s)
	assert.Empty(t, invalid)
}

func TestSettings_DocumentKeepsUnknownKeys(t *testing.T) {
	base := domain.SettingsDocument{"legacy_flag": json.RawMessage(`true`)}
	s := domain.DefaultSettings()
	s.Theme = "light"

	doc, err := s.Document(base)
	require.NoError(t, err)
	assert.JSONEq(t, `true`, string(doc["legacy_flag"]))
	assert.JSONEq(t, `"light"`, string(doc["theme"]))
	assert.NotContains(t, base, "theme", "base is not mutated")
}

func TestSettings_Validate(t *testing.T) {
	s := domain.DefaultSettings()
	assert.NoError(t, s.Validate())

	s.BalanceDisplay = "sideways"
	s.AutoSaveInterval = 0
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "balance_display must be one of [signed absolute]")
	assert.Contains(t, err.Error(), "auto_save_interval must be at least 1")
}
