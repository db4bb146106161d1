package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Classification splits financial entries into income and expense, using
// the club's bookkeeping terms.
type Classification string

const (
	ClassReceita Classification = "receita"
	ClassDespesa Classification = "despesa"
)

// Valid reports whether c is one of the two known classifications.
func (c Classification) Valid() bool {
	return c == ClassReceita || c == ClassDespesa
}

// FinancialEntry is the committed accounting record produced by
// reconciling a BankEntry. It is created and deleted only by the
// reconciliation engine, never edited in place.
type FinancialEntry struct {
	ID             string
	Date           time.Time
	Classification Classification
	Amount         decimal.Decimal // always a positive magnitude
	CostCenter     string
	PayerID        string // empty for entries with no identified payer
	Target         Target // receivable this entry settles, zero if none
	BankEntryID    string
	PaymentMethod  string
}

// ReconciliationRecord is the audit/undo record for one allocation item:
// which FinancialEntry settled which receivable on behalf of which
// BankEntry, and what the receivable looked like before.
type ReconciliationRecord struct {
	ID               string
	BankEntryID      string
	FinancialEntryID string
	Target           Target

	// Snapshot of the receivable before the commit, used for reversal.
	PriorState         PaymentState
	PriorReceiptNumber string // invoices only
}
