package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Ledger file names inside a ledger directory.
const (
	BankEntriesFile      = "bank-entries.csv"
	InvoicesFile         = "invoices.csv"
	MovementsFile        = "movements.csv"
	FinancialEntriesFile = "financial-entries.csv"
	RecordsFile          = "reconciliation-records.csv"
	PayersFile           = "payers.csv"
)

// Load reads the ledger CSV files under dir into a fresh MemoryStore.
// Missing files are treated as empty collections.
func Load(dir string) (*MemoryStore, error) {
	store := NewMemoryStore()

	err := store.Update(func(tx Tx) error {
		if err := loadFile(dir, BankEntriesFile, beNumFields, func(rec []string) error {
			e, err := UnmarshalBankEntry(rec)
			if err != nil {
				return err
			}
			return tx.PutBankEntry(e)
		}); err != nil {
			return err
		}

		if err := loadFile(dir, InvoicesFile, invNumFields, func(rec []string) error {
			inv, err := UnmarshalInvoice(rec)
			if err != nil {
				return err
			}
			return tx.PutInvoice(inv)
		}); err != nil {
			return err
		}

		if err := loadFile(dir, MovementsFile, movNumFields, func(rec []string) error {
			mov, err := UnmarshalMovement(rec)
			if err != nil {
				return err
			}
			return tx.PutMovement(mov)
		}); err != nil {
			return err
		}

		if err := loadFile(dir, FinancialEntriesFile, feNumFields, func(rec []string) error {
			fe, err := UnmarshalFinancialEntry(rec)
			if err != nil {
				return err
			}
			return tx.InsertFinancialEntry(fe)
		}); err != nil {
			return err
		}

		if err := loadFile(dir, RecordsFile, recNumFields, func(rec []string) error {
			r, err := UnmarshalRecord(rec)
			if err != nil {
				return err
			}
			return tx.InsertRecord(r)
		}); err != nil {
			return err
		}

		return loadFile(dir, PayersFile, payNumFields, func(rec []string) error {
			p, err := UnmarshalPayer(rec)
			if err != nil {
				return err
			}
			return tx.PutPayer(p)
		})
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func loadFile(dir, name string, numFields int, apply func([]string) error) error {
	f, err := os.Open(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	rows, err := readRows(f, numFields)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	for i, rec := range rows {
		if err := apply(rec); err != nil {
			return fmt.Errorf("%s row %d: %w", name, i+2, err)
		}
	}
	return nil
}

// Save writes the store's collections as CSV files under dir.
func Save(dir string, store *MemoryStore) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	return store.View(func(tx ReadTx) error {
		if err := saveFile(dir, BankEntriesFile, BankEntryHeader, marshalAll(tx.BankEntries(), MarshalBankEntry)); err != nil {
			return err
		}
		if err := saveFile(dir, InvoicesFile, InvoiceHeader, marshalAll(tx.Invoices(), MarshalInvoice)); err != nil {
			return err
		}
		if err := saveFile(dir, MovementsFile, MovementHeader, marshalAll(tx.Movements(), MarshalMovement)); err != nil {
			return err
		}
		if err := saveFile(dir, FinancialEntriesFile, FinancialEntryHeader, marshalAll(tx.FinancialEntries(), MarshalFinancialEntry)); err != nil {
			return err
		}
		if err := saveFile(dir, RecordsFile, RecordHeader, marshalAll(tx.Records(), MarshalRecord)); err != nil {
			return err
		}
		return saveFile(dir, PayersFile, PayerHeader, marshalAll(tx.Payers(), MarshalPayer))
	})
}

func saveFile(dir, name, header string, rows [][]string) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if err := writeRows(f, header, rows); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func marshalAll[V any](items []V, marshal func(V) []string) [][]string {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = marshal(item)
	}
	return rows
}
