package reconcile

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/clubledger-dev/clubledger/internal/model"
)

// SuggestionKind discriminates what a suggestion points at.
type SuggestionKind string

const (
	SuggestionInvoice SuggestionKind = "invoice"
	SuggestionPayer   SuggestionKind = "payer"
)

// Suggestion is one ranked reconciliation candidate for a bank entry.
type Suggestion struct {
	Kind    SuggestionKind
	Invoice model.Invoice // set when Kind == SuggestionInvoice
	Payer   model.Payer   // set when Kind == SuggestionPayer
	Score   int
}

// maxSuggestions caps the number of returned candidates.
const maxSuggestions = 5

// Scoring weights. Purely additive; a candidate is returned only when it
// scores above zero.
const (
	scoreInvoicePayerName  = 50
	scoreInvoiceMemberNum  = 40
	scoreInvoiceAmountNear = 30
	scorePayerName         = 40
	scorePayerMemberNum    = 35
)

// amountMatchTolerance treats invoice and entry amounts within one cent
// as equal.
var amountMatchTolerance = decimal.New(1, -2) // 0.01

// Suggest proposes ranked candidates a bank entry may correspond to, based
// on case-insensitive substring matches against the entry description and
// amount proximity. Invoice candidates are drawn from overdue invoices
// only; payer candidates are scored regardless of invoice state. Purely
// advisory: no side effects, absent matches yield an empty list.
func Suggest(entry model.BankEntry, invoices []model.Invoice, payers []model.Payer) []Suggestion {
	desc := strings.ToLower(entry.Description)
	magnitude := entry.Magnitude()

	payersByID := make(map[string]model.Payer, len(payers))
	for _, p := range payers {
		payersByID[p.ID] = p
	}

	var out []Suggestion

	for _, inv := range invoices {
		if inv.State != model.StateOverdue {
			continue
		}
		score := 0
		if p, ok := payersByID[inv.PayerID]; ok {
			if containsFold(desc, p.Name) {
				score += scoreInvoicePayerName
			}
			if containsFold(desc, p.MembershipNumber) {
				score += scoreInvoiceMemberNum
			}
		}
		if inv.Amount.Sub(magnitude).Abs().LessThan(amountMatchTolerance) {
			score += scoreInvoiceAmountNear
		}
		if score > 0 {
			out = append(out, Suggestion{Kind: SuggestionInvoice, Invoice: inv, Score: score})
		}
	}

	for _, p := range payers {
		score := 0
		if containsFold(desc, p.Name) {
			score += scorePayerName
		}
		if containsFold(desc, p.MembershipNumber) {
			score += scorePayerMemberNum
		}
		if score > 0 {
			out = append(out, Suggestion{Kind: SuggestionPayer, Payer: p, Score: score})
		}
	}

	// Descending by score; the stable sort keeps input order on ties.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// containsFold reports whether desc (already lowercased) contains needle,
// ignoring case. Empty needles never match.
func containsFold(desc, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(desc, strings.ToLower(needle))
}
