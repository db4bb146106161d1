package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubledger-dev/clubledger/internal/model"
)

const dateFormat = "2006-01-02"

// Headers for the ledger CSV files.
const (
	BankEntryHeader      = "id,account,date,description,amount,balance,reference,source_file,cost_center,reconciled,financial_entry_id"
	InvoiceHeader        = "id,payer_id,amount,due_date,state,receipt_number,cost_center"
	MovementHeader       = "id,payer_id,payer_name,description,amount,date,state,cost_center"
	FinancialEntryHeader = "id,date,classification,amount,cost_center,payer_id,target_kind,target_id,bank_entry_id,payment_method"
	RecordHeader         = "id,bank_entry_id,financial_entry_id,target_kind,target_id,prior_state,prior_receipt_number"
	PayerHeader          = "id,name,membership_number"
)

const (
	beNumFields  = 11
	beColID      = 0
	beColAccount = 1
	beColDate    = 2
	beColDesc    = 3
	beColAmount  = 4
	beColBalance = 5
	beColRef     = 6
	beColSource  = 7
	beColCenter  = 8
	beColRecon   = 9
	beColFinID   = 10
)

// MarshalBankEntry converts a BankEntry to a CSV row.
func MarshalBankEntry(e model.BankEntry) []string {
	row := make([]string, beNumFields)
	row[beColID] = e.ID
	row[beColAccount] = e.Account
	row[beColDate] = e.Date.Format(dateFormat)
	row[beColDesc] = e.Description
	row[beColAmount] = e.Amount.StringFixed(2)
	if e.Balance.Valid {
		row[beColBalance] = e.Balance.Decimal.StringFixed(2)
	}
	row[beColRef] = e.Reference
	row[beColSource] = e.SourceFile
	row[beColCenter] = e.CostCenter
	row[beColRecon] = strconv.FormatBool(e.Reconciled)
	row[beColFinID] = e.FinancialEntryID
	return row
}

// UnmarshalBankEntry converts a CSV row to a BankEntry.
func UnmarshalBankEntry(record []string) (model.BankEntry, error) {
	if len(record) != beNumFields {
		return model.BankEntry{}, fmt.Errorf("expected %d fields, got %d", beNumFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[beColDate])
	if err != nil {
		return model.BankEntry{}, fmt.Errorf("parsing date %q: %w", record[beColDate], err)
	}

	amount, err := decimal.NewFromString(record[beColAmount])
	if err != nil {
		return model.BankEntry{}, fmt.Errorf("parsing amount %q: %w", record[beColAmount], err)
	}

	var balance decimal.NullDecimal
	if record[beColBalance] != "" {
		b, err := decimal.NewFromString(record[beColBalance])
		if err != nil {
			return model.BankEntry{}, fmt.Errorf("parsing balance %q: %w", record[beColBalance], err)
		}
		balance = decimal.NewNullDecimal(b)
	}

	reconciled, err := strconv.ParseBool(record[beColRecon])
	if err != nil {
		return model.BankEntry{}, fmt.Errorf("parsing reconciled %q: %w", record[beColRecon], err)
	}

	return model.BankEntry{
		ID:               record[beColID],
		Account:          record[beColAccount],
		Date:             date,
		Description:      record[beColDesc],
		Amount:           amount,
		Balance:          balance,
		Reference:        record[beColRef],
		SourceFile:       record[beColSource],
		CostCenter:       record[beColCenter],
		Reconciled:       reconciled,
		FinancialEntryID: record[beColFinID],
	}, nil
}

const (
	invNumFields  = 7
	invColID      = 0
	invColPayer   = 1
	invColAmount  = 2
	invColDueDate = 3
	invColState   = 4
	invColReceipt = 5
	invColCenter  = 6
)

// MarshalInvoice converts an Invoice to a CSV row.
func MarshalInvoice(inv model.Invoice) []string {
	row := make([]string, invNumFields)
	row[invColID] = inv.ID
	row[invColPayer] = inv.PayerID
	row[invColAmount] = inv.Amount.StringFixed(2)
	row[invColDueDate] = inv.DueDate.Format(dateFormat)
	row[invColState] = string(inv.State)
	row[invColReceipt] = inv.ReceiptNumber
	row[invColCenter] = inv.CostCenter
	return row
}

// UnmarshalInvoice converts a CSV row to an Invoice.
func UnmarshalInvoice(record []string) (model.Invoice, error) {
	if len(record) != invNumFields {
		return model.Invoice{}, fmt.Errorf("expected %d fields, got %d", invNumFields, len(record))
	}

	amount, err := decimal.NewFromString(record[invColAmount])
	if err != nil {
		return model.Invoice{}, fmt.Errorf("parsing amount %q: %w", record[invColAmount], err)
	}

	dueDate, err := time.Parse(dateFormat, record[invColDueDate])
	if err != nil {
		return model.Invoice{}, fmt.Errorf("parsing due_date %q: %w", record[invColDueDate], err)
	}

	return model.Invoice{
		ID:            record[invColID],
		PayerID:       record[invColPayer],
		Amount:        amount,
		DueDate:       dueDate,
		State:         model.PaymentState(record[invColState]),
		ReceiptNumber: record[invColReceipt],
		CostCenter:    record[invColCenter],
	}, nil
}

const (
	movNumFields = 8
	movColID     = 0
	movColPayer  = 1
	movColName   = 2
	movColDesc   = 3
	movColAmount = 4
	movColDate   = 5
	movColState  = 6
	movColCenter = 7
)

// MarshalMovement converts a Movement to a CSV row.
func MarshalMovement(mov model.Movement) []string {
	row := make([]string, movNumFields)
	row[movColID] = mov.ID
	row[movColPayer] = mov.PayerID
	row[movColName] = mov.PayerName
	row[movColDesc] = mov.Description
	row[movColAmount] = mov.Amount.StringFixed(2)
	row[movColDate] = mov.Date.Format(dateFormat)
	row[movColState] = string(mov.State)
	row[movColCenter] = mov.CostCenter
	return row
}

// UnmarshalMovement converts a CSV row to a Movement.
func UnmarshalMovement(record []string) (model.Movement, error) {
	if len(record) != movNumFields {
		return model.Movement{}, fmt.Errorf("expected %d fields, got %d", movNumFields, len(record))
	}

	amount, err := decimal.NewFromString(record[movColAmount])
	if err != nil {
		return model.Movement{}, fmt.Errorf("parsing amount %q: %w", record[movColAmount], err)
	}

	date, err := time.Parse(dateFormat, record[movColDate])
	if err != nil {
		return model.Movement{}, fmt.Errorf("parsing date %q: %w", record[movColDate], err)
	}

	return model.Movement{
		ID:          record[movColID],
		PayerID:     record[movColPayer],
		PayerName:   record[movColName],
		Description: record[movColDesc],
		Amount:      amount,
		Date:        date,
		State:       model.PaymentState(record[movColState]),
		CostCenter:  record[movColCenter],
	}, nil
}

const (
	feNumFields = 10
	feColID     = 0
	feColDate   = 1
	feColClass  = 2
	feColAmount = 3
	feColCenter = 4
	feColPayer  = 5
	feColTKind  = 6
	feColTID    = 7
	feColBankID = 8
	feColMethod = 9
)

// MarshalFinancialEntry converts a FinancialEntry to a CSV row.
func MarshalFinancialEntry(fe model.FinancialEntry) []string {
	row := make([]string, feNumFields)
	row[feColID] = fe.ID
	row[feColDate] = fe.Date.Format(dateFormat)
	row[feColClass] = string(fe.Classification)
	row[feColAmount] = fe.Amount.StringFixed(2)
	row[feColCenter] = fe.CostCenter
	row[feColPayer] = fe.PayerID
	row[feColTKind] = string(fe.Target.Kind)
	row[feColTID] = fe.Target.ID
	row[feColBankID] = fe.BankEntryID
	row[feColMethod] = fe.PaymentMethod
	return row
}

// UnmarshalFinancialEntry converts a CSV row to a FinancialEntry.
func UnmarshalFinancialEntry(record []string) (model.FinancialEntry, error) {
	if len(record) != feNumFields {
		return model.FinancialEntry{}, fmt.Errorf("expected %d fields, got %d", feNumFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[feColDate])
	if err != nil {
		return model.FinancialEntry{}, fmt.Errorf("parsing date %q: %w", record[feColDate], err)
	}

	amount, err := decimal.NewFromString(record[feColAmount])
	if err != nil {
		return model.FinancialEntry{}, fmt.Errorf("parsing amount %q: %w", record[feColAmount], err)
	}

	return model.FinancialEntry{
		ID:             record[feColID],
		Date:           date,
		Classification: model.Classification(record[feColClass]),
		Amount:         amount,
		CostCenter:     record[feColCenter],
		PayerID:        record[feColPayer],
		Target: model.Target{
			Kind: model.TargetKind(record[feColTKind]),
			ID:   record[feColTID],
		},
		BankEntryID:   record[feColBankID],
		PaymentMethod: record[feColMethod],
	}, nil
}

const (
	recNumFields   = 7
	recColID       = 0
	recColBankID   = 1
	recColFinID    = 2
	recColTKind    = 3
	recColTID      = 4
	recColPrior    = 5
	recColPriorRcp = 6
)

// MarshalRecord converts a ReconciliationRecord to a CSV row.
func MarshalRecord(rec model.ReconciliationRecord) []string {
	row := make([]string, recNumFields)
	row[recColID] = rec.ID
	row[recColBankID] = rec.BankEntryID
	row[recColFinID] = rec.FinancialEntryID
	row[recColTKind] = string(rec.Target.Kind)
	row[recColTID] = rec.Target.ID
	row[recColPrior] = string(rec.PriorState)
	row[recColPriorRcp] = rec.PriorReceiptNumber
	return row
}

// UnmarshalRecord converts a CSV row to a ReconciliationRecord.
func UnmarshalRecord(record []string) (model.ReconciliationRecord, error) {
	if len(record) != recNumFields {
		return model.ReconciliationRecord{}, fmt.Errorf("expected %d fields, got %d", recNumFields, len(record))
	}

	return model.ReconciliationRecord{
		ID:               record[recColID],
		BankEntryID:      record[recColBankID],
		FinancialEntryID: record[recColFinID],
		Target: model.Target{
			Kind: model.TargetKind(record[recColTKind]),
			ID:   record[recColTID],
		},
		PriorState:         model.PaymentState(record[recColPrior]),
		PriorReceiptNumber: record[recColPriorRcp],
	}, nil
}

const (
	payNumFields = 3
	payColID     = 0
	payColName   = 1
	payColMember = 2
)

// MarshalPayer converts a Payer to a CSV row.
func MarshalPayer(p model.Payer) []string {
	return []string{p.ID, p.Name, p.MembershipNumber}
}

// UnmarshalPayer converts a CSV row to a Payer.
func UnmarshalPayer(record []string) (model.Payer, error) {
	if len(record) != payNumFields {
		return model.Payer{}, fmt.Errorf("expected %d fields, got %d", payNumFields, len(record))
	}
	return model.Payer{
		ID:               record[payColID],
		Name:             record[payColName],
		MembershipNumber: record[payColMember],
	}, nil
}

// readRows reads a headed CSV and returns the data rows.
func readRows(r io.Reader, numFields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// writeRows writes a header line followed by data rows.
func writeRows(w io.Writer, header string, rows [][]string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
