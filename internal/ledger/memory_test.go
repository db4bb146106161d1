package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubledger-dev/clubledger/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestUpdate_Commits(t *testing.T) {
	store := NewMemoryStore()

	err := store.Update(func(tx Tx) error {
		return tx.PutBankEntry(model.BankEntry{
			ID:          "be-1",
			Date:        date(2025, 3, 1),
			Description: "Mensalidade Ana Silva",
			Amount:      dec("25.00"),
		})
	})
	require.NoError(t, err)

	err = store.View(func(tx ReadTx) error {
		entry, ok := tx.BankEntry("be-1")
		require.True(t, ok)
		assert.Equal(t, "Mensalidade Ana Silva", entry.Description)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdate_RollsBackOnError(t *testing.T) {
	store := NewMemoryStore()
	boom := errors.New("boom")

	err := store.Update(func(tx Tx) error {
		require.NoError(t, tx.PutBankEntry(model.BankEntry{ID: "be-1", Amount: dec("10.00")}))
		require.NoError(t, tx.PutInvoice(model.Invoice{ID: "inv-1", Amount: dec("10.00"), State: model.StatePending}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Nothing from the failed transaction is visible.
	_ = store.View(func(tx ReadTx) error {
		_, ok := tx.BankEntry("be-1")
		assert.False(t, ok)
		_, ok = tx.Invoice("inv-1")
		assert.False(t, ok)
		return nil
	})
}

func TestInsertFinancialEntry_Duplicate(t *testing.T) {
	store := NewMemoryStore()

	err := store.Update(func(tx Tx) error {
		return tx.InsertFinancialEntry(model.FinancialEntry{ID: "fe-1", Amount: dec("5.00")})
	})
	require.NoError(t, err)

	err = store.Update(func(tx Tx) error {
		return tx.InsertFinancialEntry(model.FinancialEntry{ID: "fe-1", Amount: dec("5.00")})
	})
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestDelete_Missing(t *testing.T) {
	store := NewMemoryStore()

	err := store.Update(func(tx Tx) error {
		return tx.DeleteFinancialEntry("nope")
	})
	require.ErrorIs(t, err, ErrNoSuchRecord)

	err = store.Update(func(tx Tx) error {
		return tx.DeleteRecord("nope")
	})
	require.ErrorIs(t, err, ErrNoSuchRecord)
}

func TestDeleteBankEntry_OnlyWhilePending(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Update(func(tx Tx) error {
		if err := tx.PutBankEntry(model.BankEntry{ID: "be-1", Amount: dec("10.00")}); err != nil {
			return err
		}
		return tx.PutBankEntry(model.BankEntry{ID: "be-2", Amount: dec("20.00"), Reconciled: true})
	}))

	require.NoError(t, store.Update(func(tx Tx) error {
		return tx.DeleteBankEntry("be-1")
	}))

	err := store.Update(func(tx Tx) error {
		return tx.DeleteBankEntry("be-2")
	})
	require.ErrorIs(t, err, ErrEntryReconciled)

	_ = store.View(func(tx ReadTx) error {
		_, ok := tx.BankEntry("be-1")
		assert.False(t, ok)
		_, ok = tx.BankEntry("be-2")
		assert.True(t, ok)
		return nil
	})
}

func TestRecordsByBankEntry(t *testing.T) {
	store := NewMemoryStore()

	err := store.Update(func(tx Tx) error {
		for _, rec := range []model.ReconciliationRecord{
			{ID: "r1", BankEntryID: "be-1", FinancialEntryID: "fe-1"},
			{ID: "r2", BankEntryID: "be-2", FinancialEntryID: "fe-2"},
			{ID: "r3", BankEntryID: "be-1", FinancialEntryID: "fe-3"},
		} {
			if err := tx.InsertRecord(rec); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	_ = store.View(func(tx ReadTx) error {
		recs := tx.RecordsByBankEntry("be-1")
		require.Len(t, recs, 2)
		assert.Equal(t, "r1", recs[0].ID)
		assert.Equal(t, "r3", recs[1].ID)
		return nil
	})
}

func TestView_SnapshotIsolation(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Update(func(tx Tx) error {
		return tx.PutPayer(model.Payer{ID: "p1", Name: "Ana Silva", MembershipNumber: "S123"})
	}))

	_ = store.View(func(tx ReadTx) error {
		// A concurrent update does not disturb this snapshot.
		require.NoError(t, store.Update(func(w Tx) error {
			return w.PutPayer(model.Payer{ID: "p2", Name: "Rui Costa"})
		}))
		assert.Len(t, tx.Payers(), 1)
		return nil
	})
}
