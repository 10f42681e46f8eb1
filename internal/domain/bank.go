package domain

import (
	"context"
	"time"
)

type Bank struct {
	ID        int64
	Name      string
	Logo      *string
	CreatedAt time.Time
}

type BankRepository interface {
	CreateBank(ctx context.Context, bank *Bank) error
	UpdateBank(ctx context.Context, bank *Bank) error
	// DeleteBank removes the bank and every deposit it owns.
	// Deleting a missing bank is not an error.
	DeleteBank(ctx context.Context, bankID int64) error
	GetBankByID(ctx context.Context, bankID int64) (*Bank, error)
	ListBanks(ctx context.Context) ([]*Bank, error)
}

// BankCache holds the name-ordered bank list between mutations.
type BankCache interface {
	GetBanks(ctx context.Context) ([]*Bank, bool)
	SetBanks(ctx context.Context, banks []*Bank)
	Invalidate(ctx context.Context)
}
