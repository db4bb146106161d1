package id

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// New returns a fresh identifier for ledger records
// (financial entries, reconciliation records).
func New() string {
	return uuid.NewString()
}

// FormatReceiptNumber returns a receipt number like "RB-2025-001".
func FormatReceiptNumber(year, seq int) string {
	return fmt.Sprintf("RB-%04d-%03d", year, seq)
}

// ParseReceiptNumber parses "RB-2025-001" into year and sequence.
func ParseReceiptNumber(number string) (year, seq int, err error) {
	parts := strings.SplitN(number, "-", 3)
	if len(parts) != 3 || parts[0] != "RB" {
		return 0, 0, fmt.Errorf("invalid receipt number format: %q", number)
	}

	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in receipt number %q: %w", number, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sequence in receipt number %q: %w", number, err)
	}

	return year, seq, nil
}
