package reconcile

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/clubledger-dev/clubledger/internal/id"
	"github.com/clubledger-dev/clubledger/internal/ledger"
	"github.com/clubledger-dev/clubledger/internal/model"
)

// CommitParams holds the caller's choices for one reconciliation.
type CommitParams struct {
	EntryID        string
	Classification model.Classification
	CostCenter     string
	PaymentMethod  string // DefaultPaymentMethod when empty
	Allocation     []AllocationItem
}

// CommitResult describes a committed reconciliation.
type CommitResult struct {
	Entry   model.BankEntry
	Created []model.FinancialEntry
	Partial bool
}

// Commit validates and executes a reconciliation in one transaction.
//
// With an empty allocation it books a single financial entry for the full
// entry amount and links it from the bank entry. With allocation items it
// books one financial entry per item, snapshots each receivable's prior
// state in a reconciliation record, and moves the receivable to paid or
// partial based on the amount allocated in this call. Either way the bank
// entry ends up reconciled, even when the allocation total is below the
// entry amount.
func (s *Service) Commit(params CommitParams) (CommitResult, error) {
	var result CommitResult

	err := s.store.Update(func(tx ledger.Tx) error {
		entry, ok := tx.BankEntry(params.EntryID)
		if !ok {
			return fmt.Errorf("entry %s: %w", params.EntryID, ErrEntryNotFound)
		}
		if entry.Reconciled {
			return fmt.Errorf("entry %s: %w", entry.ID, ErrAlreadyReconciled)
		}

		if err := ValidateAllocation(entry, params.Classification, params.CostCenter, params.Allocation); err != nil {
			return err
		}

		method := params.PaymentMethod
		if method == "" {
			method = DefaultPaymentMethod
		}
		classification := params.Classification
		if !classification.Valid() {
			if entry.IsCredit() {
				classification = model.ClassReceita
			} else {
				classification = model.ClassDespesa
			}
		}

		created, err := s.commitItems(tx, entry, classification, method, params)
		if err != nil {
			return err
		}

		entry.Reconciled = true
		if len(params.Allocation) == 0 {
			entry.FinancialEntryID = created[0].ID
		}
		if err := tx.PutBankEntry(entry); err != nil {
			return wrapStore("update bank entry", err)
		}

		result = CommitResult{
			Entry:   entry,
			Created: created,
			Partial: IsPartial(entry, params.Allocation),
		}
		return nil
	})
	if err != nil {
		return CommitResult{}, wrapStore("commit", err)
	}

	s.log.Infof("reconciled entry %s: %d financial entries, partial=%v",
		result.Entry.ID, len(result.Created), result.Partial)
	return result, nil
}

func (s *Service) commitItems(tx ledger.Tx, entry model.BankEntry, classification model.Classification, method string, params CommitParams) ([]model.FinancialEntry, error) {
	if len(params.Allocation) == 0 {
		fe := model.FinancialEntry{
			ID:             id.New(),
			Date:           entry.Date,
			Classification: classification,
			Amount:         entry.Magnitude(),
			CostCenter:     params.CostCenter,
			BankEntryID:    entry.ID,
			PaymentMethod:  method,
		}
		if err := tx.InsertFinancialEntry(fe); err != nil {
			return nil, wrapStore("insert financial entry", err)
		}
		return []model.FinancialEntry{fe}, nil
	}

	receiptSeq := nextReceiptSeq(tx, entry.Date.Year())

	created := make([]model.FinancialEntry, 0, len(params.Allocation))
	for _, item := range params.Allocation {
		var err error
		var fe model.FinancialEntry

		switch item.Target.Kind {
		case model.TargetInvoice:
			fe, err = s.settleInvoice(tx, entry, classification, method, params.CostCenter, item, &receiptSeq)
		case model.TargetMovement:
			fe, err = s.settleMovement(tx, entry, classification, method, params.CostCenter, item)
		default:
			err = fmt.Errorf("target kind %q: %w", item.Target.Kind, ErrTargetNotFound)
		}
		if err != nil {
			return nil, err
		}
		created = append(created, fe)
	}
	return created, nil
}

func (s *Service) settleInvoice(tx ledger.Tx, entry model.BankEntry, classification model.Classification, method, costCenter string, item AllocationItem, receiptSeq *int) (model.FinancialEntry, error) {
	inv, ok := tx.Invoice(item.Target.ID)
	if !ok {
		return model.FinancialEntry{}, fmt.Errorf("invoice %s: %w", item.Target.ID, ErrTargetNotFound)
	}

	fe := model.FinancialEntry{
		ID:             id.New(),
		Date:           entry.Date,
		Classification: classification,
		Amount:         item.Amount,
		CostCenter:     firstNonEmpty(inv.CostCenter, costCenter, entry.CostCenter),
		PayerID:        inv.PayerID,
		Target:         item.Target,
		BankEntryID:    entry.ID,
		PaymentMethod:  method,
	}
	if err := tx.InsertFinancialEntry(fe); err != nil {
		return model.FinancialEntry{}, wrapStore("insert financial entry", err)
	}

	rec := model.ReconciliationRecord{
		ID:                 id.New(),
		BankEntryID:        entry.ID,
		FinancialEntryID:   fe.ID,
		Target:             item.Target,
		PriorState:         inv.State,
		PriorReceiptNumber: inv.ReceiptNumber,
	}
	if err := tx.InsertRecord(rec); err != nil {
		return model.FinancialEntry{}, wrapStore("insert reconciliation record", err)
	}

	// Coverage is judged on this call's allocated amount alone, not
	// cumulatively across earlier settlements of the same invoice.
	if covers(item.Amount, inv.Amount) {
		inv.State = model.StatePaid
		if inv.ReceiptNumber == "" {
			inv.ReceiptNumber = id.FormatReceiptNumber(entry.Date.Year(), *receiptSeq)
			*receiptSeq++
		}
	} else {
		inv.State = model.StatePartial
	}
	if err := tx.PutInvoice(inv); err != nil {
		return model.FinancialEntry{}, wrapStore("update invoice", err)
	}
	return fe, nil
}

func (s *Service) settleMovement(tx ledger.Tx, entry model.BankEntry, classification model.Classification, method, costCenter string, item AllocationItem) (model.FinancialEntry, error) {
	mov, ok := tx.Movement(item.Target.ID)
	if !ok {
		return model.FinancialEntry{}, fmt.Errorf("movement %s: %w", item.Target.ID, ErrTargetNotFound)
	}

	fe := model.FinancialEntry{
		ID:             id.New(),
		Date:           entry.Date,
		Classification: classification,
		Amount:         item.Amount,
		CostCenter:     firstNonEmpty(mov.CostCenter, costCenter, entry.CostCenter),
		PayerID:        mov.PayerID,
		Target:         item.Target,
		BankEntryID:    entry.ID,
		PaymentMethod:  method,
	}
	if err := tx.InsertFinancialEntry(fe); err != nil {
		return model.FinancialEntry{}, wrapStore("insert financial entry", err)
	}

	rec := model.ReconciliationRecord{
		ID:               id.New(),
		BankEntryID:      entry.ID,
		FinancialEntryID: fe.ID,
		Target:           item.Target,
		PriorState:       mov.State,
	}
	if err := tx.InsertRecord(rec); err != nil {
		return model.FinancialEntry{}, wrapStore("insert reconciliation record", err)
	}

	if covers(item.Amount, mov.Amount) {
		mov.State = model.StatePaid
	} else {
		mov.State = model.StatePartial
	}
	if err := tx.PutMovement(mov); err != nil {
		return model.FinancialEntry{}, wrapStore("update movement", err)
	}
	return fe, nil
}

// covers reports whether allocated settles total in full, within the
// rounding tolerance.
func covers(allocated, total decimal.Decimal) bool {
	return allocated.GreaterThanOrEqual(total.Sub(overAllocationTolerance))
}

// nextReceiptSeq returns the next free receipt sequence for a year by
// scanning existing invoice receipt numbers.
func nextReceiptSeq(tx ledger.ReadTx, year int) int {
	maxSeq := 0
	for _, inv := range tx.Invoices() {
		y, seq, err := id.ParseReceiptNumber(inv.ReceiptNumber)
		if err != nil || y != year {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
