package reconcile

import (
	"fmt"

	"github.com/clubledger-dev/clubledger/internal/ledger"
	"github.com/clubledger-dev/clubledger/internal/model"
)

// UnreconcileResult describes a reversed reconciliation.
type UnreconcileResult struct {
	Entry                    model.BankEntry
	RemovedFinancialEntryIDs []string
	RestoredTargets          []model.Target
}

// Unreconcile reverses a bank entry's reconciliation in one transaction:
// every touched receivable is restored to its snapshotted prior state,
// the financial entries created by the commit are deleted together with
// their reconciliation records, and the entry returns to pending.
//
// Safe to call twice: the second call finds nothing to reverse and fails
// with ErrNotReconciled instead of touching the ledger again.
func (s *Service) Unreconcile(entryID string) (UnreconcileResult, error) {
	var result UnreconcileResult

	err := s.store.Update(func(tx ledger.Tx) error {
		entry, ok := tx.BankEntry(entryID)
		if !ok {
			return fmt.Errorf("entry %s: %w", entryID, ErrEntryNotFound)
		}

		records := tx.RecordsByBankEntry(entryID)
		if len(records) == 0 && entry.FinancialEntryID == "" {
			return fmt.Errorf("entry %s: %w", entryID, ErrNotReconciled)
		}

		var removed []string
		var restored []model.Target

		// Direct reconciliation: the single linked financial entry is
		// the only thing to remove.
		if len(records) == 0 {
			if err := tx.DeleteFinancialEntry(entry.FinancialEntryID); err != nil {
				return wrapStore("delete financial entry", err)
			}
			removed = append(removed, entry.FinancialEntryID)
		}

		for _, rec := range records {
			if err := s.restoreTarget(tx, rec); err != nil {
				return err
			}
			restored = append(restored, rec.Target)

			if err := tx.DeleteFinancialEntry(rec.FinancialEntryID); err != nil {
				return wrapStore("delete financial entry", err)
			}
			removed = append(removed, rec.FinancialEntryID)

			if err := tx.DeleteRecord(rec.ID); err != nil {
				return wrapStore("delete reconciliation record", err)
			}
		}

		entry.Reconciled = false
		entry.FinancialEntryID = ""
		if err := tx.PutBankEntry(entry); err != nil {
			return wrapStore("update bank entry", err)
		}

		result = UnreconcileResult{
			Entry:                    entry,
			RemovedFinancialEntryIDs: removed,
			RestoredTargets:          restored,
		}
		return nil
	})
	if err != nil {
		return UnreconcileResult{}, wrapStore("unreconcile", err)
	}

	s.log.Infof("unreconciled entry %s: removed %d financial entries",
		result.Entry.ID, len(result.RemovedFinancialEntryIDs))
	return result, nil
}

func (s *Service) restoreTarget(tx ledger.Tx, rec model.ReconciliationRecord) error {
	switch rec.Target.Kind {
	case model.TargetInvoice:
		inv, ok := tx.Invoice(rec.Target.ID)
		if !ok {
			return fmt.Errorf("invoice %s: %w", rec.Target.ID, ErrTargetNotFound)
		}
		inv.State = rec.PriorState
		inv.ReceiptNumber = rec.PriorReceiptNumber
		if err := tx.PutInvoice(inv); err != nil {
			return wrapStore("restore invoice", err)
		}
	case model.TargetMovement:
		mov, ok := tx.Movement(rec.Target.ID)
		if !ok {
			return fmt.Errorf("movement %s: %w", rec.Target.ID, ErrTargetNotFound)
		}
		mov.State = rec.PriorState
		if err := tx.PutMovement(mov); err != nil {
			return wrapStore("restore movement", err)
		}
	case "":
		// Free classification with no linked receivable.
	default:
		return fmt.Errorf("target kind %q: %w", rec.Target.Kind, ErrTargetNotFound)
	}
	return nil
}
