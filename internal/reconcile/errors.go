package reconcile

import (
	"errors"
	"fmt"
)

// Validation errors. All are raised before any write, so a rejected
// allocation leaves the ledger untouched.
var (
	// ErrEmptyClassification rejects a direct (unallocated) reconciliation
	// with no classification or cost center to book against.
	ErrEmptyClassification = errors.New("classification and cost center required for direct reconciliation")

	// ErrNoAllocationSelected rejects allocation items without a positive amount.
	ErrNoAllocationSelected = errors.New("every allocation item needs a positive amount")

	// ErrDuplicateTarget rejects an allocation naming the same receivable twice.
	ErrDuplicateTarget = errors.New("duplicate allocation target")

	// ErrOverAllocation rejects an allocation whose total exceeds the entry amount.
	ErrOverAllocation = errors.New("allocation exceeds bank entry amount")
)

// State errors. The requested operation does not apply to the current
// ledger state; nothing is written.
var (
	ErrEntryNotFound     = errors.New("bank entry not found")
	ErrTargetNotFound    = errors.New("allocation target not found")
	ErrAlreadyReconciled = errors.New("bank entry already reconciled")
	ErrNotReconciled     = errors.New("bank entry is not reconciled")
)

// PersistenceError wraps a ledger-store failure during a transaction.
// The transaction is rolled back in full before it surfaces.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// engineError reports whether err belongs to the engine's error taxonomy,
// as opposed to an unexpected failure from the store itself.
func engineError(err error) bool {
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return true
	}
	for _, known := range []error{
		ErrEmptyClassification, ErrNoAllocationSelected, ErrDuplicateTarget,
		ErrOverAllocation, ErrEntryNotFound, ErrTargetNotFound,
		ErrAlreadyReconciled, ErrNotReconciled,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}

// wrapStore maps an unexpected store failure to a PersistenceError while
// letting taxonomy errors pass through untouched.
func wrapStore(op string, err error) error {
	if err == nil || engineError(err) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
