package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clubledger-dev/clubledger/internal/reconcile"
)

func newUnreconcileCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "unreconcile <entry-id>",
		Short: "Reverse a bank entry's reconciliation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnreconcile(dir, args[0])
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")

	return cmd
}

func runUnreconcile(dir, entryID string) error {
	ws, err := openWorkspace(dir)
	if err != nil {
		return err
	}

	svc := reconcile.NewService(ws.store)
	result, err := svc.Unreconcile(entryID)
	if err != nil {
		return err
	}

	details := fmt.Sprintf("removed %d financial entries, restored %d receivables",
		len(result.RemovedFinancialEntryIDs), len(result.RestoredTargets))
	if err := ws.saveAndLog("unreconcile", entryID, details); err != nil {
		return err
	}

	fmt.Printf("Unreconciled %s: %s\n", entryID, details)
	return nil
}
