package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
)

// ExportFormat is a ledger export file type.
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportCSV  ExportFormat = "csv"
)

// ParseExportFormat accepts "xlsx" or "csv"; empty means xlsx.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return ExportXLSX, nil
	case ExportXLSX, ExportCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q", apperrors.ErrValidation, s)
	}
}

// ContentType is the MIME type served for the format.
func (f ExportFormat) ContentType() string {
	if f == ExportCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// ExportFile is a rendered ledger ready to be downloaded or written to disk.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
