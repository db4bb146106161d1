package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/clubledger-dev/clubledger/internal/ledger"
	"github.com/clubledger-dev/clubledger/internal/model"
)

func newPendingCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List unreconciled bank entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPending(dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")

	return cmd
}

func runPending(dir string) error {
	ws, err := openWorkspace(dir)
	if err != nil {
		return err
	}

	var pending []model.BankEntry
	_ = ws.store.View(func(tx ledger.ReadTx) error {
		for _, e := range tx.BankEntries() {
			if !e.Reconciled {
				pending = append(pending, e)
			}
		}
		return nil
	})

	if len(pending) == 0 {
		fmt.Println("No pending bank entries.")
		return nil
	}

	sort.Slice(pending, func(i, j int) bool {
		if !pending[i].Date.Equal(pending[j].Date) {
			return pending[i].Date.Before(pending[j].Date)
		}
		return pending[i].ID < pending[j].ID
	})

	for _, e := range pending {
		fmt.Printf("%-12s %s %10s  %s\n",
			e.ID, e.Date.Format("2006-01-02"), e.Amount.StringFixed(2), e.Description)
	}
	fmt.Printf("%d pending entries\n", len(pending))
	return nil
}
