package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Unique(t *testing.T) {
	a := New()
	b := New()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestFormatReceiptNumber(t *testing.T) {
	assert.Equal(t, "RB-2025-001", FormatReceiptNumber(2025, 1))
	assert.Equal(t, "RB-2026-123", FormatReceiptNumber(2026, 123))
	assert.Equal(t, "RB-2025-1000", FormatReceiptNumber(2025, 1000))
}

func TestParseReceiptNumber(t *testing.T) {
	year, seq, err := ParseReceiptNumber("RB-2025-007")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 7, seq)
}

func TestParseReceiptNumber_RoundTrip(t *testing.T) {
	year, seq, err := ParseReceiptNumber(FormatReceiptNumber(2024, 42))
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 42, seq)
}

func TestParseReceiptNumber_Invalid(t *testing.T) {
	cases := []string{"", "RB-2025", "XX-2025-001", "RB-abcd-001", "RB-2025-xyz"}
	for _, c := range cases {
		_, _, err := ParseReceiptNumber(c)
		assert.Error(t, err, "input %q", c)
	}
}
