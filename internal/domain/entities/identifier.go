package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// Identifier prefixes. Identifiers look like BP-2024-00007.
const (
	ApplicationNumberPrefix = "BP"
	ReceiptNumberPrefix     = "RCPT"
)

// Sequence scopes used for per-year counters.
const (
	SequenceScopeApplication = "application"
	SequenceScopeReceipt     = "receipt"
)

// FormatIdentifier renders "{prefix}-{year}-{seq:05d}".
func FormatIdentifier(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%05d", prefix, year, seq)
}

// NextIdentifier returns the identifier that follows existingCount identifiers in the same year.
func NextIdentifier(prefix string, year, existingCount int) string {
	return FormatIdentifier(prefix, year, existingCount+1)
}

// ParseIdentifier splits an identifier into its prefix, year and sequence.
func ParseIdentifier(id string) (prefix string, year, seq int, ok bool) {
	parts := strings.Split(strings.TrimSpace(id), "-")
	if len(parts) != 3 || parts[0] == "" || len(parts[1]) != 4 || len(parts[2]) < 5 {
		return "", 0, 0, false
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, 0, false
	}
	s, err := strconv.Atoi(parts[2])
	if err != nil || s <= 0 {
		return "", 0, 0, false
	}
	return parts[0], y, s, true
}
