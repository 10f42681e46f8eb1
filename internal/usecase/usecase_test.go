package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-catalog-service/internal/testutil"
	bankdto "github.com/LavaJover/shvark-catalog-service/internal/usecase/dto/bank"
	depositdto "github.com/LavaJover/shvark-catalog-service/internal/usecase/dto/deposit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.CatalogEvent
	err    error
}

func (p *recordingPublisher) PublishCatalogEvent(_ context.Context, event domain.CatalogEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []domain.CatalogEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.CatalogEventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type memoryBankCache struct {
	banks       []*domain.Bank
	hits        int
	invalidated int
}

func (c *memoryBankCache) GetBanks(context.Context) ([]*domain.Bank, bool) {
	if c.banks == nil {
		return nil, false
	}
	c.hits++
	return c.banks, true
}

func (c *memoryBankCache) SetBanks(_ context.Context, banks []*domain.Bank) { c.banks = banks }

func (c *memoryBankCache) Invalidate(context.Context) {
	c.banks = nil
	c.invalidated++
}

type catalog struct {
	banks     *DefaultBankUsecase
	deposits  *DefaultDepositUsecase
	cache     *memoryBankCache
	publisher *recordingPublisher
	clock     time.Time
}

func newCatalog(t *testing.T) *catalog {
	db := testutil.NewTestDB(t)
	bankRepo := repository.NewDefaultBankRepository(db)
	depositRepo := repository.NewDefaultDepositRepository(db)

	c := &catalog{
		cache:     &memoryBankCache{},
		publisher: &recordingPublisher{},
		clock:     time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	c.banks = NewDefaultBankUsecase(bankRepo, depositRepo, c.cache, c.publisher)
	c.deposits = NewDefaultDepositUsecase(depositRepo, c.publisher)
	c.banks.now = func() time.Time { return c.clock }
	c.deposits.now = func() time.Time { return c.clock }
	return c
}

func (c *catalog) bank(t *testing.T, name string) *domain.Bank {
	t.Helper()
	bank, err := c.banks.CreateBank(context.Background(), &bankdto.CreateBankInput{Name: name})
	require.NoError(t, err)
	return bank
}

func (c *catalog) deposit(t *testing.T, bank *domain.Bank, mutate func(f *depositdto.DepositFields)) *domain.Deposit {
	t.Helper()
	input := &depositdto.CreateDepositInput{DepositFields: depositdto.DepositFields{
		BankID:       bank.ID,
		Name:         "Deposit",
		MinAmount:    decimal.NewFromInt(1000),
		InterestRate: decimal.RequireFromString("3.00"),
		TermMonths:   12,
	}}
	if mutate != nil {
		mutate(&input.DepositFields)
	}
	deposit, err := c.deposits.CreateDeposit(context.Background(), input)
	require.NoError(t, err)
	return deposit
}

func names(deposits []*domain.Deposit) []string {
	out := make([]string, len(deposits))
	for i, d := range deposits {
		out[i] = d.Name
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

func validationErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
	return verrs
}
