package ledger

import (
	"fmt"
	"sort"
	"sync"

	"github.com/clubledger-dev/clubledger/internal/model"
)

// MemoryStore is an in-memory ledger with copy-on-write transactions.
// Update clones the current state, applies the writes to the clone, and
// swaps it in only when the transaction function succeeds, so a failed
// transaction leaves no trace. Updates are serialized by a mutex; View
// reads whatever state was last published.
type MemoryStore struct {
	mu    sync.RWMutex
	state *state
}

type state struct {
	bankEntries map[string]model.BankEntry
	invoices    map[string]model.Invoice
	movements   map[string]model.Movement
	financial   map[string]model.FinancialEntry
	records     map[string]model.ReconciliationRecord
	payers      map[string]model.Payer
}

func newState() *state {
	return &state{
		bankEntries: make(map[string]model.BankEntry),
		invoices:    make(map[string]model.Invoice),
		movements:   make(map[string]model.Movement),
		financial:   make(map[string]model.FinancialEntry),
		records:     make(map[string]model.ReconciliationRecord),
		payers:      make(map[string]model.Payer),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.bankEntries {
		c.bankEntries[k] = v
	}
	for k, v := range s.invoices {
		c.invoices[k] = v
	}
	for k, v := range s.movements {
		c.movements[k] = v
	}
	for k, v := range s.financial {
		c.financial[k] = v
	}
	for k, v := range s.records {
		c.records[k] = v
	}
	for k, v := range s.payers {
		c.payers[k] = v
	}
	return c
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: newState()}
}

// View runs fn over the current state snapshot.
func (m *MemoryStore) View(fn func(ReadTx) error) error {
	m.mu.RLock()
	snap := m.state
	m.mu.RUnlock()
	return fn(&memTx{state: snap})
}

// Update runs fn in a transaction and publishes the result on success.
func (m *MemoryStore) Update(fn func(Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.state.clone()
	if err := fn(&memTx{state: next}); err != nil {
		return err
	}
	m.state = next
	return nil
}

// memTx implements Tx over a state. Reads return values sorted by ID so
// callers see a deterministic order.
type memTx struct {
	state *state
}

func (t *memTx) BankEntry(id string) (model.BankEntry, bool) {
	e, ok := t.state.bankEntries[id]
	return e, ok
}

func (t *memTx) BankEntries() []model.BankEntry {
	return sortedValues(t.state.bankEntries, func(e model.BankEntry) string { return e.ID })
}

func (t *memTx) Invoice(id string) (model.Invoice, bool) {
	inv, ok := t.state.invoices[id]
	return inv, ok
}

func (t *memTx) Invoices() []model.Invoice {
	return sortedValues(t.state.invoices, func(i model.Invoice) string { return i.ID })
}

func (t *memTx) Movement(id string) (model.Movement, bool) {
	mov, ok := t.state.movements[id]
	return mov, ok
}

func (t *memTx) Movements() []model.Movement {
	return sortedValues(t.state.movements, func(m model.Movement) string { return m.ID })
}

func (t *memTx) FinancialEntry(id string) (model.FinancialEntry, bool) {
	fe, ok := t.state.financial[id]
	return fe, ok
}

func (t *memTx) FinancialEntries() []model.FinancialEntry {
	return sortedValues(t.state.financial, func(f model.FinancialEntry) string { return f.ID })
}

func (t *memTx) Records() []model.ReconciliationRecord {
	return sortedValues(t.state.records, func(r model.ReconciliationRecord) string { return r.ID })
}

func (t *memTx) RecordsByBankEntry(entryID string) []model.ReconciliationRecord {
	var out []model.ReconciliationRecord
	for _, r := range t.Records() {
		if r.BankEntryID == entryID {
			out = append(out, r)
		}
	}
	return out
}

func (t *memTx) Payer(id string) (model.Payer, bool) {
	p, ok := t.state.payers[id]
	return p, ok
}

func (t *memTx) Payers() []model.Payer {
	return sortedValues(t.state.payers, func(p model.Payer) string { return p.ID })
}

func (t *memTx) PutBankEntry(entry model.BankEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("bank entry: empty id")
	}
	t.state.bankEntries[entry.ID] = entry
	return nil
}

func (t *memTx) DeleteBankEntry(id string) error {
	e, ok := t.state.bankEntries[id]
	if !ok {
		return fmt.Errorf("bank entry %s: %w", id, ErrNoSuchRecord)
	}
	if e.Reconciled {
		return fmt.Errorf("bank entry %s: %w", id, ErrEntryReconciled)
	}
	delete(t.state.bankEntries, id)
	return nil
}

func (t *memTx) PutInvoice(inv model.Invoice) error {
	if inv.ID == "" {
		return fmt.Errorf("invoice: empty id")
	}
	t.state.invoices[inv.ID] = inv
	return nil
}

func (t *memTx) PutMovement(mov model.Movement) error {
	if mov.ID == "" {
		return fmt.Errorf("movement: empty id")
	}
	t.state.movements[mov.ID] = mov
	return nil
}

func (t *memTx) PutPayer(p model.Payer) error {
	if p.ID == "" {
		return fmt.Errorf("payer: empty id")
	}
	t.state.payers[p.ID] = p
	return nil
}

func (t *memTx) InsertFinancialEntry(fe model.FinancialEntry) error {
	if _, exists := t.state.financial[fe.ID]; exists {
		return fmt.Errorf("financial entry %s: %w", fe.ID, ErrDuplicateID)
	}
	t.state.financial[fe.ID] = fe
	return nil
}

func (t *memTx) DeleteFinancialEntry(id string) error {
	if _, exists := t.state.financial[id]; !exists {
		return fmt.Errorf("financial entry %s: %w", id, ErrNoSuchRecord)
	}
	delete(t.state.financial, id)
	return nil
}

func (t *memTx) InsertRecord(rec model.ReconciliationRecord) error {
	if _, exists := t.state.records[rec.ID]; exists {
		return fmt.Errorf("reconciliation record %s: %w", rec.ID, ErrDuplicateID)
	}
	t.state.records[rec.ID] = rec
	return nil
}

func (t *memTx) DeleteRecord(id string) error {
	if _, exists := t.state.records[id]; !exists {
		return fmt.Errorf("reconciliation record %s: %w", id, ErrNoSuchRecord)
	}
	delete(t.state.records, id)
	return nil
}

func sortedValues[V any](m map[string]V, key func(V) string) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	return out
}
