package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type SortField int

const (
	SortByInterestRate SortField = iota
	SortByTerm
	SortByMinAmount
	SortByBank
)

// ParseSortField maps the query-string key onto a sort field.
// Unknown or empty keys fall back to interest rate ordering.
func ParseSortField(s string) SortField {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "term":
		return SortByTerm
	case "minamount":
		return SortByMinAmount
	case "bank":
		return SortByBank
	default:
		return SortByInterestRate
	}
}

func (f SortField) String() string {
	switch f {
	case SortByTerm:
		return "term"
	case SortByMinAmount:
		return "minamount"
	case SortByBank:
		return "bank"
	default:
		return "interestrate"
	}
}

// DepositFilter selects active deposits. Nil fields impose no constraint.
type DepositFilter struct {
	BankID        *int64
	Currency      *Currency
	MinTermMonths *int
	MaxTermMonths *int
	// MinAmount is the amount the caller has on hand: deposits whose
	// own minimum is above it are excluded.
	MinAmount *decimal.Decimal

	SortBy         SortField
	SortDescending bool
}

// Ordering resolves the effective sort direction. Interest rate ordering
// runs the other way round: highest rate first unless SortDescending is set.
func (f DepositFilter) Ordering() (SortField, bool) {
	if f.SortBy == SortByInterestRate {
		return SortByInterestRate, !f.SortDescending
	}
	return f.SortBy, f.SortDescending
}
