package dto

import (
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/SscSPs/ledger_book_app/internal/utils"
)

// DashboardSummaryResponse adds display strings to domain.DashboardSummary.
type DashboardSummaryResponse struct {
	domain.DashboardSummary
	FormattedReceivable string `json:"formattedReceivable"`
	FormattedPayable    string `json:"formattedPayable"`
	FormattedNet        string `json:"formattedNet"`
}

// RecentActivityParams defines query parameters for the activity feed.
type RecentActivityParams struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// ToDashboardSummaryResponse formats a summary with settings.
func ToDashboardSummaryResponse(s domain.DashboardSummary, settings domain.Settings) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		DashboardSummary:    s,
		FormattedReceivable: utils.FormatCurrency(s.TotalReceivable, settings),
		FormattedPayable:    utils.FormatCurrency(s.TotalPayable, settings),
		FormattedNet:        utils.FormatCurrency(s.NetPosition, settings),
	}
}
