package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clubledger-dev/clubledger/internal/reconcile"
)

func newSuggestCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "suggest <entry-id>",
		Short: "Suggest reconciliation candidates for a bank entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(dir, args[0])
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")

	return cmd
}

func runSuggest(dir, entryID string) error {
	ws, err := openWorkspace(dir)
	if err != nil {
		return err
	}

	svc := reconcile.NewService(ws.store)
	suggestions, err := svc.SuggestFor(entryID)
	if err != nil {
		return err
	}

	if len(suggestions) == 0 {
		fmt.Println("No suggestions.")
		return nil
	}

	for i, s := range suggestions {
		switch s.Kind {
		case reconcile.SuggestionInvoice:
			fmt.Printf("%d. [%3d] invoice %s  %s due %s\n",
				i+1, s.Score, s.Invoice.ID, s.Invoice.Amount.StringFixed(2),
				s.Invoice.DueDate.Format("2006-01-02"))
		case reconcile.SuggestionPayer:
			fmt.Printf("%d. [%3d] payer %s  %s (%s)\n",
				i+1, s.Score, s.Payer.ID, s.Payer.Name, s.Payer.MembershipNumber)
		}
	}
	return nil
}
