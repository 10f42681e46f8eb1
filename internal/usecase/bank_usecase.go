package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	bankdto "github.com/LavaJover/shvark-catalog-service/internal/usecase/dto/bank"
)

type BankUsecase interface {
	ListBanks(ctx context.Context) ([]*domain.Bank, error)
	GetBank(ctx context.Context, bankID int64) (*bankdto.GetBankOutput, error)
	CreateBank(ctx context.Context, input *bankdto.CreateBankInput) (*domain.Bank, error)
	UpdateBank(ctx context.Context, input *bankdto.UpdateBankInput) (*domain.Bank, error)
	DeleteBank(ctx context.Context, bankID int64) error
}

type DefaultBankUsecase struct {
	bankRepo    domain.BankRepository
	depositRepo domain.DepositRepository
	cache       domain.BankCache
	events      eventNotifier
	now         func() time.Time
}

func NewDefaultBankUsecase(
	bankRepo domain.BankRepository,
	depositRepo domain.DepositRepository,
	cache domain.BankCache,
	publisher domain.CatalogEventPublisher,
) *DefaultBankUsecase {
	return &DefaultBankUsecase{
		bankRepo:    bankRepo,
		depositRepo: depositRepo,
		cache:       cache,
		events:      eventNotifier{publisher: publisher},
		now:         utcNow,
	}
}

func (uc *DefaultBankUsecase) ListBanks(ctx context.Context) ([]*domain.Bank, error) {
	if banks, ok := uc.cache.GetBanks(ctx); ok {
		return banks, nil
	}

	banks, err := uc.bankRepo.ListBanks(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.SetBanks(ctx, banks)
	return banks, nil
}

func (uc *DefaultBankUsecase) GetBank(ctx context.Context, bankID int64) (*bankdto.GetBankOutput, error) {
	bank, err := uc.bankRepo.GetBankByID(ctx, bankID)
	if err != nil {
		return nil, err
	}

	deposits, err := uc.depositRepo.GetBankDeposits(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deposits of bank %d: %w", bankID, err)
	}

	return &bankdto.GetBankOutput{
		Bank:     bank,
		Deposits: deposits,
	}, nil
}

func (uc *DefaultBankUsecase) CreateBank(ctx context.Context, input *bankdto.CreateBankInput) (*domain.Bank, error) {
	var iv inputValidator
	iv.structFields(input)
	if err := iv.err(); err != nil {
		return nil, err
	}

	bank := &domain.Bank{
		Name:      input.Name,
		Logo:      input.Logo,
		CreatedAt: uc.now(),
	}
	if err := uc.bankRepo.CreateBank(ctx, bank); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	uc.events.notify(ctx, domain.BankCreated, bank.ID, bank.ID, bank.CreatedAt)
	slog.Info("bank created", "bank_id", bank.ID, "name", bank.Name)

	return bank, nil
}

// UpdateBank never touches CreatedAt.
func (uc *DefaultBankUsecase) UpdateBank(ctx context.Context, input *bankdto.UpdateBankInput) (*domain.Bank, error) {
	var iv inputValidator
	iv.structFields(input)
	if err := iv.err(); err != nil {
		return nil, err
	}

	err := uc.bankRepo.UpdateBank(ctx, &domain.Bank{
		ID:   input.ID,
		Name: input.Name,
		Logo: input.Logo,
	})
	if err != nil {
		return nil, err
	}

	bank, err := uc.bankRepo.GetBankByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	uc.events.notify(ctx, domain.BankUpdated, bank.ID, bank.ID, uc.now())
	slog.Info("bank updated", "bank_id", bank.ID)

	return bank, nil
}

// DeleteBank removes the bank with all of its deposits. A missing bank is a no-op.
func (uc *DefaultBankUsecase) DeleteBank(ctx context.Context, bankID int64) error {
	if _, err := uc.bankRepo.GetBankByID(ctx, bankID); err != nil {
		if errors.Is(err, domain.ErrBankNotFound) {
			return nil
		}
		return err
	}

	if err := uc.bankRepo.DeleteBank(ctx, bankID); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx)
	uc.events.notify(ctx, domain.BankDeleted, bankID, bankID, uc.now())
	slog.Info("bank deleted", "bank_id", bankID)

	return nil
}
