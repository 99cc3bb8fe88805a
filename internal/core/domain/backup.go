package domain

import "fmt"

// BackupVersion is written into every backup document.
const BackupVersion = "1.0"

// BackupRequiredKeys must all be present in a document before restore touches storage.
var BackupRequiredKeys = []string{
	"customers",
	"suppliers",
	"settings",
	"customer_transactions",
	"supplier_transactions",
}

// RestoreFailure records one record that could not be written during restore.
type RestoreFailure struct {
	Kind          EntityKind `json:"kind,omitempty"`
	EntityID      string     `json:"entityID,omitempty"`
	TransactionID string     `json:"transactionID,omitempty"`
	Reason        string     `json:"reason"`
}

func (f RestoreFailure) String() string {
	switch {
	case f.TransactionID != "":
		return fmt.Sprintf("%s %s transaction %s: %s", f.Kind, f.EntityID, f.TransactionID, f.Reason)
	case f.EntityID != "":
		return fmt.Sprintf("%s %s: %s", f.Kind, f.EntityID, f.Reason)
	default:
		return f.Reason
	}
}

// RestoreReport summarises a restore. Restore merges: records already present
// but absent from the backup are left alone.
type RestoreReport struct {
	SettingsRestored     bool             `json:"settingsRestored"`
	EntitiesRestored     int              `json:"entitiesRestored"`
	TransactionsRestored int              `json:"transactionsRestored"`
	Failures             []RestoreFailure `json:"failures,omitempty"`
}

// OK reports whether every record was written.
func (r RestoreReport) OK() bool {
	return len(r.Failures) == 0
}
