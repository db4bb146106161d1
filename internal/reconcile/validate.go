package reconcile

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/clubledger-dev/clubledger/internal/model"
)

// AllocationItem assigns part of a bank entry's amount to one receivable.
// Amount is always a positive magnitude regardless of the entry's sign.
type AllocationItem struct {
	Target model.Target
	Amount decimal.Decimal
}

// overAllocationTolerance absorbs float rounding when comparing an
// allocation total against the entry amount.
var overAllocationTolerance = decimal.New(5, -3) // 0.005

// ValidateAllocation checks the legality of a proposed allocation without
// touching the ledger. Rules are evaluated in order and the first violated
// rule is returned.
func ValidateAllocation(entry model.BankEntry, classification model.Classification, costCenter string, items []AllocationItem) error {
	if len(items) == 0 {
		if !classification.Valid() || costCenter == "" {
			return fmt.Errorf("entry %s: %w", entry.ID, ErrEmptyClassification)
		}
		return nil
	}

	for _, item := range items {
		if !item.Amount.IsPositive() {
			return fmt.Errorf("target %s %s: %w", item.Target.Kind, item.Target.ID, ErrNoAllocationSelected)
		}
	}

	seen := make(map[model.Target]bool, len(items))
	for _, item := range items {
		if seen[item.Target] {
			return fmt.Errorf("target %s %s: %w", item.Target.Kind, item.Target.ID, ErrDuplicateTarget)
		}
		seen[item.Target] = true
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	if total.Sub(entry.Magnitude()).GreaterThan(overAllocationTolerance) {
		return fmt.Errorf("allocated %s against entry amount %s: %w",
			total.StringFixed(2), entry.Magnitude().StringFixed(2), ErrOverAllocation)
	}

	// An allocation total below the entry amount is a partial
	// reconciliation. It is accepted: the entry is still marked processed
	// and the remainder is not reopened as a new entry.
	return nil
}

// IsPartial reports whether the allocation covers less than the entry amount.
func IsPartial(entry model.BankEntry, items []AllocationItem) bool {
	if len(items) == 0 {
		return false
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total.LessThan(entry.Magnitude().Sub(overAllocationTolerance))
}
