package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentState represents the lifecycle state of a receivable.
type PaymentState string

const (
	StatePending   PaymentState = "pending"
	StatePaid      PaymentState = "paid"
	StateOverdue   PaymentState = "overdue"
	StatePartial   PaymentState = "partial"
	StateCancelled PaymentState = "cancelled"
)

// TargetKind discriminates the two receivable kinds an allocation can settle.
type TargetKind string

const (
	TargetInvoice  TargetKind = "invoice"
	TargetMovement TargetKind = "movement"
)

// Target identifies one receivable: a formal invoice or a generic movement.
// The zero value means "no linked receivable".
type Target struct {
	Kind TargetKind
	ID   string
}

// IsZero reports whether the target references nothing.
func (t Target) IsZero() bool {
	return t.Kind == "" && t.ID == ""
}

// Invoice is a club-issued receivable tied to one payer.
type Invoice struct {
	ID            string
	PayerID       string
	Amount        decimal.Decimal
	DueDate       time.Time
	State         PaymentState
	ReceiptNumber string // stamped when paid via reconciliation
	CostCenter    string
}

// Movement is a generic receivable or payable not backed by a formal
// invoice (merchandise sale, sponsorship, refund). The payer may be a
// free-text name instead of a registered member.
type Movement struct {
	ID          string
	PayerID     string // empty when PayerName is used
	PayerName   string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	State       PaymentState
	CostCenter  string
}
