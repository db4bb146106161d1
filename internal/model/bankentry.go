package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankEntry is one normalized line from an imported bank statement.
type BankEntry struct {
	ID          string
	Account     string // bank account label, may be empty
	Date        time.Time
	Description string
	Amount      decimal.Decimal     // negative = despesa, positive = receita
	Balance     decimal.NullDecimal // running balance as reported by the bank
	Reference   string
	SourceFile  string
	CostCenter  string // default classification assigned at import

	Reconciled bool
	// FinancialEntryID links the single entry created by a direct
	// (unallocated) reconciliation. Empty when the entry was settled
	// through allocation items or is still pending.
	FinancialEntryID string
}

// IsCredit reports whether the entry is money coming into the club.
func (e BankEntry) IsCredit() bool {
	return e.Amount.IsPositive()
}

// Magnitude returns the entry amount as a positive value.
func (e BankEntry) Magnitude() decimal.Decimal {
	return e.Amount.Abs()
}
