package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/SscSPs/ledger_book_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func useFileBackend(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORAGE_BACKEND", "file")
	t.Setenv("DATA_DIR", dir)
	t.Setenv("AUTH_ENABLED", "false")
	return dir
}

func seedCustomer(t *testing.T) string {
	t.Helper()
	var id string
	require.NoError(t, withServices(context.Background(), func(svc *portssvc.ServiceContainer) error {
		e, err := svc.Entity.CreateEntity(context.Background(), domain.Customer, dto.CreateEntityRequest{Name: "Asha Traders", Phone: "555-0101"})
		if err != nil {
			return err
		}
		id = e.EntityID
		_, err = svc.Transaction.AddTransaction(context.Background(), domain.Customer, id, dto.TransactionRequest{Date: "2024-03-01", Particular: "Invoice 1", Credit: "150"})
		return err
	}))
	return id
}

func TestHashPassword(t *testing.T) {
	out, _, err := execute(t, "s3cret\n", "hash-password")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("s3cret", strings.TrimSpace(out)))

	_, _, err = execute(t, "", "hash-password")
	assert.Error(t, err)
}

func TestLedgerCommand(t *testing.T) {
	useFileBackend(t)
	id := seedCustomer(t)

	out, _, err := execute(t, "", "ledger", "customer", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Asha Traders")
	assert.Contains(t, out, "Invoice 1")
	assert.Contains(t, out, "Status: Due")

	_, _, err = execute(t, "", "ledger", "vendor", id)
	assert.Error(t, err)
}

func TestLedgerExportCSV(t *testing.T) {
	useFileBackend(t)
	id := seedCustomer(t)
	target := filepath.Join(t.TempDir(), "asha.csv")

	_, _, err := execute(t, "", "ledger", "customer", id, "--export", target)
	exportPath = ""
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Date,Particulars,Debit,Credit,Balance")
	assert.Contains(t, string(data), "TOTAL")
}

func TestBackupRestoreAndReset(t *testing.T) {
	useFileBackend(t)
	seedCustomer(t)
	backupFile := filepath.Join(t.TempDir(), "backup.json")

	_, _, err := execute(t, "", "backup", "-o", backupFile)
	backupOutput = ""
	require.NoError(t, err)
	raw, err := os.ReadFile(backupFile)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "customers")
	assert.Contains(t, doc, "backup_date")

	_, _, err = execute(t, "", "reset", "--confirm", "yes")
	assert.Error(t, err)

	_, _, err = execute(t, "", "reset", "--confirm", dto.ResetConfirmation)
	resetConfirm = ""
	require.NoError(t, err)

	out, _, err := execute(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Customers:              0")

	out, _, err = execute(t, "", "restore", backupFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Entities restored:     1")
	assert.Contains(t, out, "Transactions restored: 1")

	out, _, err = execute(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Customers:              1")
}
