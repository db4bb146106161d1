package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/clubledger-dev/clubledger/internal/auditlog"
	"github.com/clubledger-dev/clubledger/internal/config"
	"github.com/clubledger-dev/clubledger/internal/costcenter"
	"github.com/clubledger-dev/clubledger/internal/gitops"
	"github.com/clubledger-dev/clubledger/internal/ledger"
)

// workspace is an opened ledger directory: config, cost-center chart and
// the ledger collections loaded into memory.
type workspace struct {
	dir     string
	cfg     *config.Config
	centers *costcenter.Service
	store   *ledger.MemoryStore
}

func openWorkspace(dir string) (*workspace, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(abs, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("not a clubledger directory (%s): %w", abs, err)
	}

	centers, err := costcenter.Load(abs)
	if err != nil {
		return nil, err
	}

	store, err := ledger.Load(abs)
	if err != nil {
		return nil, err
	}

	return &workspace{dir: abs, cfg: cfg, centers: centers, store: store}, nil
}

// saveAndLog persists the ledger, auto-commits when configured, and
// appends an audit log row for the action.
func (w *workspace) saveAndLog(action, entryID, details string) error {
	if err := ledger.Save(w.dir, w.store); err != nil {
		return err
	}

	hash := ""
	if w.cfg.Git.AutoCommit && gitops.IsRepo(w.dir) {
		var err error
		hash, err = gitops.CommitLedger(w.dir, fmt.Sprintf("%s: entry %s", action, entryID),
			w.cfg.Git.AuthorName, w.cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("auto-commit: %w", err)
		}
	}

	return auditlog.Append(w.dir, []auditlog.Entry{{
		Timestamp:   time.Now().UTC(),
		Action:      action,
		BankEntryID: entryID,
		Details:     details,
		CommitHash:  hash,
	}})
}
