package ledger

import (
	"errors"

	"github.com/clubledger-dev/clubledger/internal/model"
)

// ErrDuplicateID is returned when inserting a record whose ID already exists.
var ErrDuplicateID = errors.New("duplicate record id")

// ErrNoSuchRecord is returned when deleting a record that does not exist.
var ErrNoSuchRecord = errors.New("no such record")

// ErrEntryReconciled is returned when deleting a bank entry that is still
// reconciled. It must be unreconciled first.
var ErrEntryReconciled = errors.New("cannot delete a reconciled bank entry")

// ReadTx is a consistent read-only view over the ledger collections.
type ReadTx interface {
	BankEntry(id string) (model.BankEntry, bool)
	BankEntries() []model.BankEntry
	Invoice(id string) (model.Invoice, bool)
	Invoices() []model.Invoice
	Movement(id string) (model.Movement, bool)
	Movements() []model.Movement
	FinancialEntry(id string) (model.FinancialEntry, bool)
	FinancialEntries() []model.FinancialEntry
	Records() []model.ReconciliationRecord
	RecordsByBankEntry(entryID string) []model.ReconciliationRecord
	Payer(id string) (model.Payer, bool)
	Payers() []model.Payer
}

// Tx extends ReadTx with writes. All writes within one Update call are
// applied together or not at all.
type Tx interface {
	ReadTx

	PutBankEntry(entry model.BankEntry) error
	DeleteBankEntry(id string) error
	PutInvoice(inv model.Invoice) error
	PutMovement(mov model.Movement) error
	PutPayer(p model.Payer) error

	InsertFinancialEntry(fe model.FinancialEntry) error
	DeleteFinancialEntry(id string) error
	InsertRecord(rec model.ReconciliationRecord) error
	DeleteRecord(id string) error
}

// Store is the transactional ledger collaborator the reconciliation
// engine runs against. Update calls execute serially; two concurrent
// commits against the same bank entry cannot both observe it pending.
type Store interface {
	// View runs fn over a consistent snapshot. fn must not retain the
	// ReadTx after returning.
	View(fn func(ReadTx) error) error

	// Update runs fn inside a transaction. If fn returns an error the
	// ledger is left exactly as it was.
	Update(fn func(Tx) error) error
}
