package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyBGN Currency = "BGN"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

var Currencies = []Currency{CurrencyBGN, CurrencyEUR, CurrencyUSD}

// ParseCurrency accepts the symbolic name in any letter case.
func ParseCurrency(s string) (Currency, error) {
	switch c := Currency(strings.ToUpper(strings.TrimSpace(s))); c {
	case CurrencyBGN, CurrencyEUR, CurrencyUSD:
		return c, nil
	}
	return "", ErrInvalidCurrency
}

func (c Currency) String() string {
	return string(c)
}

type Deposit struct {
	ID          int64
	BankID      int64
	Name        string
	Description *string

	MinAmount    decimal.Decimal
	MaxAmount    *decimal.Decimal // nil - no upper bound
	InterestRate decimal.Decimal  // percent, 5.5 means 5.5%
	TermMonths   int
	Currency     Currency

	HasCapitalization        bool
	AllowsAdditionalDeposits bool
	AllowsPartialWithdrawal  bool
	AutoRenewal              bool
	IsActive                 bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// Owning bank, resolved by the repository through a join.
	Bank *Bank
}

type DepositRepository interface {
	CreateDeposit(ctx context.Context, deposit *Deposit) error
	UpdateDeposit(ctx context.Context, deposit *Deposit) error
	DeleteDeposit(ctx context.Context, depositID int64) error
	GetDepositByID(ctx context.Context, depositID int64) (*Deposit, error)
	ListDeposits(ctx context.Context, filter DepositFilter) ([]*Deposit, error)
	// GetBankDeposits ignores the active flag.
	GetBankDeposits(ctx context.Context, bankID int64) ([]*Deposit, error)
	CountActiveByCurrency(ctx context.Context) (map[Currency]int64, error)
}
