// Package model defines domain types for budgy ledger entries and aggregates.
package model

import (
	"errors"
	"strings"
)

// Kind selects the income or expense collection of a ledger.
type Kind string

const (
	Income  Kind = "inc"
	Expense Kind = "exp"
)

// Kinds lists every valid Kind in display order.
var Kinds = []Kind{Income, Expense}

// ErrInvalidKind is returned for any discriminator other than Income or Expense.
var ErrInvalidKind = errors.New("invalid kind")

// ParseKind accepts the short ("inc", "exp") and long ("income", "expense")
// spellings, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inc", "income":
		return Income, nil
	case "exp", "expense":
		return Expense, nil
	}
	return "", ErrInvalidKind
}

// Valid reports whether k is Income or Expense.
func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

func (k Kind) String() string {
	return string(k)
}

// Label returns the human-readable name used in headers and forms.
func (k Kind) Label() string {
	switch k {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	}
	return "Unknown"
}

// Other returns the opposite kind. Invalid kinds map to Income.
func (k Kind) Other() Kind {
	if k == Income {
		return Expense
	}
	return Income
}
