package reconcile

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubledger-dev/clubledger/internal/ledger"
	"github.com/clubledger-dev/clubledger/internal/model"
)

func TestSuggest_FullMatchRanksFirst(t *testing.T) {
	// Scenario: description names the payer and her membership number,
	// and an overdue invoice of hers matches the amount exactly.
	entry := model.BankEntry{
		ID:          "be-1",
		Date:        date(2025, 2, 10),
		Description: "TRF Ana Silva S123 mensalidade",
		Amount:      dec("25.00"),
	}
	payers := []model.Payer{
		{ID: "p1", Name: "Ana Silva", MembershipNumber: "S123"},
		{ID: "p2", Name: "Rui Costa", MembershipNumber: "S456"},
	}
	invoices := []model.Invoice{
		{ID: "inv-1", PayerID: "p1", Amount: dec("25.00"), DueDate: date(2025, 1, 31), State: model.StateOverdue},
	}

	got := Suggest(entry, invoices, payers)
	require.NotEmpty(t, got)

	first := got[0]
	assert.Equal(t, SuggestionInvoice, first.Kind)
	assert.Equal(t, "inv-1", first.Invoice.ID)
	assert.Equal(t, 120, first.Score, "name (50) + membership (40) + amount (30)")
}

func TestSuggest_OnlyOverdueInvoices(t *testing.T) {
	entry := model.BankEntry{Description: "ana silva", Amount: dec("25.00")}
	payers := []model.Payer{{ID: "p1", Name: "Ana Silva"}}
	invoices := []model.Invoice{
		{ID: "inv-pending", PayerID: "p1", Amount: dec("25.00"), State: model.StatePending},
		{ID: "inv-paid", PayerID: "p1", Amount: dec("25.00"), State: model.StatePaid},
		{ID: "inv-overdue", PayerID: "p1", Amount: dec("25.00"), State: model.StateOverdue},
	}

	got := Suggest(entry, invoices, payers)
	for _, s := range got {
		if s.Kind == SuggestionInvoice {
			assert.Equal(t, "inv-overdue", s.Invoice.ID)
		}
	}
}

func TestSuggest_PayerScoring(t *testing.T) {
	entry := model.BankEntry{Description: "TRF RUI COSTA S456", Amount: dec("10.00")}
	payers := []model.Payer{{ID: "p2", Name: "Rui Costa", MembershipNumber: "S456"}}

	got := Suggest(entry, nil, payers)
	require.Len(t, got, 1)
	assert.Equal(t, SuggestionPayer, got[0].Kind)
	assert.Equal(t, 75, got[0].Score, "name (40) + membership (35)")
}

func TestSuggest_CaseInsensitive(t *testing.T) {
	entry := model.BankEntry{Description: "trf ana silva", Amount: dec("1.00")}
	payers := []model.Payer{{ID: "p1", Name: "ANA SILVA"}}

	got := Suggest(entry, nil, payers)
	require.Len(t, got, 1)
	assert.Equal(t, 40, got[0].Score)
}

func TestSuggest_NoMatchesYieldEmptyList(t *testing.T) {
	entry := model.BankEntry{Description: "LEV MB 0042", Amount: dec("20.00")}
	payers := []model.Payer{{ID: "p1", Name: "Ana Silva", MembershipNumber: "S123"}}
	invoices := []model.Invoice{
		{ID: "inv-1", PayerID: "p1", Amount: dec("999.00"), State: model.StateOverdue},
	}

	got := Suggest(entry, invoices, payers)
	assert.Empty(t, got)
}

func TestSuggest_EmptyMembershipNumberNeverMatches(t *testing.T) {
	entry := model.BankEntry{Description: "whatever", Amount: dec("5.00")}
	payers := []model.Payer{{ID: "p1", Name: "Zé"}}

	got := Suggest(entry, nil, payers)
	assert.Empty(t, got, "empty membership number must not substring-match everything")
}

func TestSuggest_CapAtFive(t *testing.T) {
	entry := model.BankEntry{Description: "pagamento clube", Amount: dec("30.00")}
	var payers []model.Payer
	for i := 0; i < 8; i++ {
		payers = append(payers, model.Payer{ID: fmt.Sprintf("p%d", i), Name: "Clube"})
	}

	got := Suggest(entry, nil, payers)
	assert.Len(t, got, 5)
}

func TestSuggest_StableTieOrder(t *testing.T) {
	entry := model.BankEntry{Description: "clube", Amount: dec("30.00")}
	payers := []model.Payer{
		{ID: "p1", Name: "Clube"},
		{ID: "p2", Name: "Clube"},
		{ID: "p3", Name: "Clube"},
	}

	got := Suggest(entry, nil, payers)
	require.Len(t, got, 3)
	assert.Equal(t, "p1", got[0].Payer.ID)
	assert.Equal(t, "p2", got[1].Payer.ID)
	assert.Equal(t, "p3", got[2].Payer.ID)
}

func TestSuggest_AmountToleranceBoundary(t *testing.T) {
	entry := model.BankEntry{Description: "LEV MB", Amount: dec("-25.00")}
	invoices := []model.Invoice{
		{ID: "inv-close", PayerID: "p1", Amount: dec("25.005"), State: model.StateOverdue},
		{ID: "inv-far", PayerID: "p1", Amount: dec("25.02"), State: model.StateOverdue},
	}
	payers := []model.Payer{{ID: "p1", Name: "Ana Silva"}}

	got := Suggest(entry, invoices, payers)

	ids := make(map[string]bool)
	for _, s := range got {
		if s.Kind == SuggestionInvoice {
			ids[s.Invoice.ID] = true
		}
	}
	assert.True(t, ids["inv-close"])
	assert.False(t, ids["inv-far"])
}

func TestSuggestFor_ReadsFromStore(t *testing.T) {
	store := newStore(t, func(tx ledger.Tx) error {
		if err := tx.PutBankEntry(model.BankEntry{
			ID:          "be-1",
			Date:        date(2025, 2, 10),
			Description: "TRF Ana Silva",
			Amount:      dec("25.00"),
		}); err != nil {
			return err
		}
		if err := tx.PutPayer(model.Payer{ID: "p1", Name: "Ana Silva", MembershipNumber: "S123"}); err != nil {
			return err
		}
		return tx.PutInvoice(model.Invoice{ID: "inv-1", PayerID: "p1", Amount: dec("25.00"), DueDate: date(2025, 1, 31), State: model.StateOverdue})
	})
	svc := NewService(store)

	got, err := svc.SuggestFor("be-1")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, SuggestionInvoice, got[0].Kind)

	_, err = svc.SuggestFor("ghost")
	require.ErrorIs(t, err, ErrEntryNotFound)
}
