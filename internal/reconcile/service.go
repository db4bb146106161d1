package reconcile

import (
	"fmt"

	"github.com/labstack/gommon/log"

	"github.com/clubledger-dev/clubledger/internal/ledger"
)

// DefaultPaymentMethod is booked on financial entries created from bank
// statement lines unless the caller overrides it.
const DefaultPaymentMethod = "transferencia"

// Service executes reconciliation operations against a ledger store.
// All mutations run inside a single store transaction, so a failure at
// any point leaves the ledger unchanged.
type Service struct {
	store ledger.Store
	log   *log.Logger
}

// NewService creates a reconciliation Service over a ledger store.
func NewService(store ledger.Store) *Service {
	return &Service{store: store, log: log.New("reconcile")}
}

// SuggestFor returns ranked reconciliation candidates for a bank entry,
// read from a consistent ledger snapshot.
func (s *Service) SuggestFor(entryID string) ([]Suggestion, error) {
	var suggestions []Suggestion
	err := s.store.View(func(tx ledger.ReadTx) error {
		entry, ok := tx.BankEntry(entryID)
		if !ok {
			return fmt.Errorf("entry %s: %w", entryID, ErrEntryNotFound)
		}
		suggestions = Suggest(entry, tx.Invoices(), tx.Payers())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}
