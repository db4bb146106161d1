package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/clubledger-dev/clubledger/internal/model"
	"github.com/clubledger-dev/clubledger/internal/reconcile"
)

func newReconcileCommand() *cobra.Command {
	var dir string
	var classification string
	var costCenter string
	var method string
	var items []string

	cmd := &cobra.Command{
		Use:   "reconcile <entry-id>",
		Short: "Reconcile a bank entry against receivables or a cost center",
		Long: `Reconcile a bank entry.

With no --item flags the full entry amount is booked directly to the given
classification and cost center. With --item flags the amount is allocated
across receivables, e.g.:

  clubledger reconcile be-42 --item invoice:inv-7:25.00 --item movement:mov-3:15.00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(dir, args[0], classification, costCenter, method, items)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVar(&classification, "classification", "", "receita or despesa (inferred from sign when allocating)")
	cmd.Flags().StringVar(&costCenter, "cost-center", "", "cost center id for direct reconciliation")
	cmd.Flags().StringVar(&method, "method", "", "payment method (default from config)")
	cmd.Flags().StringArrayVar(&items, "item", nil, "allocation item kind:id:amount, repeatable")

	return cmd
}

func runReconcile(dir, entryID, classification, costCenter, method string, rawItems []string) error {
	ws, err := openWorkspace(dir)
	if err != nil {
		return err
	}

	allocation, err := parseItems(rawItems)
	if err != nil {
		return err
	}

	if costCenter != "" && !ws.centers.Exists(costCenter) {
		return fmt.Errorf("unknown cost center %q", costCenter)
	}
	if costCenter == "" && len(allocation) == 0 {
		costCenter = ws.cfg.Reconciliation.DefaultCostCenter
	}
	if method == "" {
		method = ws.cfg.Reconciliation.PaymentMethod
	}

	svc := reconcile.NewService(ws.store)
	result, err := svc.Commit(reconcile.CommitParams{
		EntryID:        entryID,
		Classification: model.Classification(classification),
		CostCenter:     costCenter,
		PaymentMethod:  method,
		Allocation:     allocation,
	})
	if err != nil {
		return err
	}

	details := fmt.Sprintf("%d financial entries, partial=%v", len(result.Created), result.Partial)
	if err := ws.saveAndLog("reconcile", entryID, details); err != nil {
		return err
	}

	fmt.Printf("Reconciled %s: %s\n", entryID, details)
	for _, fe := range result.Created {
		fmt.Printf("  %s %s %s (%s)\n", fe.ID, fe.Classification, fe.Amount.StringFixed(2), fe.CostCenter)
	}
	return nil
}

// parseItems parses --item flags of the form kind:id:amount.
func parseItems(raw []string) ([]reconcile.AllocationItem, error) {
	var items []reconcile.AllocationItem
	for _, r := range raw {
		parts := strings.SplitN(r, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid --item %q, want kind:id:amount", r)
		}

		var kind model.TargetKind
		switch parts[0] {
		case "invoice":
			kind = model.TargetInvoice
		case "movement":
			kind = model.TargetMovement
		default:
			return nil, fmt.Errorf("invalid --item kind %q, want invoice or movement", parts[0])
		}

		amount, err := decimal.NewFromString(parts[2])
		if err != nil {
			return nil, fmt.Errorf("invalid --item amount %q: %w", parts[2], err)
		}

		items = append(items, reconcile.AllocationItem{
			Target: model.Target{Kind: kind, ID: parts[1]},
			Amount: amount,
		})
	}
	return items, nil
}
