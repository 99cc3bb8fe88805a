package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"Date", "Particulars", "Debit", "Credit", "Balance"}

type exportService struct {
	BaseService
	ledgers  portssvc.LedgerSvc
	settings portssvc.SettingsSvc
}

// NewExportService creates an export service rendering ledgers from ledgers.
func NewExportService(ledgers portssvc.LedgerSvc, settings portssvc.SettingsSvc) portssvc.ExportSvc {
	return &exportService{ledgers: ledgers, settings: settings}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

// exportFilename builds "<kind>_ledger_<Name_With_Underscores>.<ext>"; characters
// other than letters, digits, '-' and '_' are dropped.
func exportFilename(entity *domain.Entity, format domain.ExportFormat) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return '_'
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			return r
		default:
			return -1
		}
	}, strings.TrimSpace(entity.Name))
	if name == "" {
		name = entity.EntityID
	}
	return fmt.Sprintf("%s_ledger_%s.%s", entity.Kind, name, format)
}

func (s *exportService) ExportLedger(ctx context.Context, kind domain.EntityKind, entityID string, format domain.ExportFormat) (*domain.ExportFile, error) {
	entity, view, err := s.ledgers.GetLedger(ctx, kind, entityID)
	if err != nil {
		return nil, err
	}
	if err := view.Err(); err != nil {
		s.LogWarn(ctx, "Refusing to export ledger with unreadable rows", slog.String("entity_id", entityID))
		return nil, err
	}
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case domain.ExportXLSX:
		data, err = renderXLSX(entity, view, settings)
	case domain.ExportCSV:
		data, err = renderCSV(view, settings)
	default:
		_, err = domain.ParseExportFormat(string(format))
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to render ledger export", slog.String("format", string(format)))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger exported",
		slog.String("entity_id", entityID),
		slog.String("format", string(format)),
		slog.Int("rows", len(view.Rows)))
	return &domain.ExportFile{
		Filename:    exportFilename(entity, format),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

func renderCSV(view domain.LedgerView, settings domain.Settings) ([]byte, error) {
	var buf bytes.Buffer
	// UTF-8 BOM so spreadsheet apps detect the encoding of the currency symbol.
	buf.Write([]byte{0xEF, 0xBB, 0xBF})
	w := csv.NewWriter(&buf)
	records := [][]string{exportHeaders}
	for _, r := range view.Rows {
		records = append(records, []string{
			utils.FormatDate(r.Date, settings),
			r.Particular,
			utils.FormatWithPrecision(r.Debit, 2),
			utils.FormatWithPrecision(r.Credit, 2),
			utils.FormatWithPrecision(r.RunningBalance, 2),
		})
	}
	records = append(records, []string{
		"TOTAL",
		"",
		utils.FormatWithPrecision(view.TotalDebit, 2),
		utils.FormatWithPrecision(view.TotalCredit, 2),
		utils.FormatWithPrecision(view.FinalBalance, 2),
	})
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func renderXLSX(entity *domain.Entity, view domain.LedgerView, settings domain.Settings) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := entity.Kind.Label() + " Ledger"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	// 2 is the built-in "0.00" number format.
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, err
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	setRow := func(row int, date, particular string, amounts ...decimal.Decimal) error {
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), date); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), particular); err != nil {
			return err
		}
		for i, amt := range amounts {
			cell, _ := excelize.CoordinatesToCellName(3+i, row)
			if err := f.SetCellFloat(sheetName, cell, amt.InexactFloat64(), 2, 64); err != nil {
				return err
			}
		}
		return nil
	}

	row := 2
	for _, r := range view.Rows {
		if err := setRow(row, utils.FormatDate(r.Date, settings), r.Particular, r.Debit, r.Credit, r.RunningBalance); err != nil {
			return nil, err
		}
		row++
	}
	if err := setRow(row, "TOTAL", "", view.TotalDebit, view.TotalCredit, view.FinalBalance); err != nil {
		return nil, err
	}

	if err := f.SetCellStyle(sheetName, "A1", "E1", boldStyle); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), boldStyle); err != nil {
		return nil, err
	}
	if row > 2 {
		if err := f.SetCellStyle(sheetName, "C2", fmt.Sprintf("E%d", row-1), amountStyle); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(sheetName, "A", "A", 12)
	_ = f.SetColWidth(sheetName, "B", "B", 30)
	_ = f.SetColWidth(sheetName, "C", "E", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
