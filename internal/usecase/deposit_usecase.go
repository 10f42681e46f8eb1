package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	depositdto "github.com/LavaJover/shvark-catalog-service/internal/usecase/dto/deposit"
)

const (
	amountIntegerDigits = 16 // numeric(18,2)
	rateIntegerDigits   = 3  // numeric(5,2)
)

type DepositUsecase interface {
	ListDeposits(ctx context.Context, filter domain.DepositFilter) ([]*domain.Deposit, error)
	ListAllActiveDeposits(ctx context.Context) ([]*domain.Deposit, error)
	GetDeposit(ctx context.Context, depositID int64) (*domain.Deposit, error)
	CreateDeposit(ctx context.Context, input *depositdto.CreateDepositInput) (*domain.Deposit, error)
	UpdateDeposit(ctx context.Context, input *depositdto.UpdateDepositInput) (*domain.Deposit, error)
	DeleteDeposit(ctx context.Context, depositID int64) error
	CountActiveByCurrency(ctx context.Context) (map[domain.Currency]int64, error)
}

type DefaultDepositUsecase struct {
	depositRepo domain.DepositRepository
	events      eventNotifier
	now         func() time.Time
}

func NewDefaultDepositUsecase(
	depositRepo domain.DepositRepository,
	publisher domain.CatalogEventPublisher,
) *DefaultDepositUsecase {
	return &DefaultDepositUsecase{
		depositRepo: depositRepo,
		events:      eventNotifier{publisher: publisher},
		now:         utcNow,
	}
}

// ListDeposits returns active deposits matching every set predicate of the filter.
func (uc *DefaultDepositUsecase) ListDeposits(ctx context.Context, filter domain.DepositFilter) ([]*domain.Deposit, error) {
	sortBy, desc := filter.Ordering()
	slog.DebugContext(ctx, "listing deposits", "sort_by", sortBy.String(), "descending", desc)
	return uc.depositRepo.ListDeposits(ctx, filter)
}

// ListAllActiveDeposits is ListDeposits with an empty filter, highest rate first.
func (uc *DefaultDepositUsecase) ListAllActiveDeposits(ctx context.Context) ([]*domain.Deposit, error) {
	return uc.depositRepo.ListDeposits(ctx, domain.DepositFilter{})
}

// GetDeposit ignores the active flag.
func (uc *DefaultDepositUsecase) GetDeposit(ctx context.Context, depositID int64) (*domain.Deposit, error) {
	return uc.depositRepo.GetDepositByID(ctx, depositID)
}

func (uc *DefaultDepositUsecase) CreateDeposit(ctx context.Context, input *depositdto.CreateDepositInput) (*domain.Deposit, error) {
	if err := validateDepositFields(input, &input.DepositFields); err != nil {
		return nil, err
	}

	now := uc.now()
	deposit := newDeposit(&input.DepositFields)
	deposit.CreatedAt = now
	deposit.UpdatedAt = now

	if err := uc.depositRepo.CreateDeposit(ctx, deposit); err != nil {
		return nil, err
	}

	stored, err := uc.depositRepo.GetDepositByID(ctx, deposit.ID)
	if err != nil {
		return nil, err
	}

	uc.events.notify(ctx, domain.DepositCreated, stored.ID, stored.BankID, now)
	slog.Info("deposit created", "deposit_id", stored.ID, "bank_id", stored.BankID)

	return stored, nil
}

// UpdateDeposit overwrites every field except CreatedAt and stamps UpdatedAt.
func (uc *DefaultDepositUsecase) UpdateDeposit(ctx context.Context, input *depositdto.UpdateDepositInput) (*domain.Deposit, error) {
	if err := validateDepositFields(input, &input.DepositFields); err != nil {
		return nil, err
	}

	now := uc.now()
	deposit := newDeposit(&input.DepositFields)
	deposit.ID = input.ID
	deposit.UpdatedAt = now

	if err := uc.depositRepo.UpdateDeposit(ctx, deposit); err != nil {
		return nil, err
	}

	stored, err := uc.depositRepo.GetDepositByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	uc.events.notify(ctx, domain.DepositUpdated, stored.ID, stored.BankID, now)
	slog.Info("deposit updated", "deposit_id", stored.ID)

	return stored, nil
}

// DeleteDeposit is a no-op for a missing deposit.
func (uc *DefaultDepositUsecase) DeleteDeposit(ctx context.Context, depositID int64) error {
	deposit, err := uc.depositRepo.GetDepositByID(ctx, depositID)
	if err != nil {
		if errors.Is(err, domain.ErrDepositNotFound) {
			return nil
		}
		return err
	}

	if err := uc.depositRepo.DeleteDeposit(ctx, depositID); err != nil {
		return err
	}

	uc.events.notify(ctx, domain.DepositDeleted, depositID, deposit.BankID, uc.now())
	slog.Info("deposit deleted", "deposit_id", depositID)

	return nil
}

func (uc *DefaultDepositUsecase) CountActiveByCurrency(ctx context.Context) (map[domain.Currency]int64, error) {
	return uc.depositRepo.CountActiveByCurrency(ctx)
}

func newDeposit(f *depositdto.DepositFields) *domain.Deposit {
	currency := f.Currency
	if currency == "" {
		currency = domain.CurrencyBGN
	}
	isActive := true
	if f.IsActive != nil {
		isActive = *f.IsActive
	}

	return &domain.Deposit{
		BankID:                   f.BankID,
		Name:                     f.Name,
		Description:              f.Description,
		MinAmount:                f.MinAmount,
		MaxAmount:                f.MaxAmount,
		InterestRate:             f.InterestRate,
		TermMonths:               f.TermMonths,
		Currency:                 currency,
		HasCapitalization:        f.HasCapitalization,
		AllowsAdditionalDeposits: f.AllowsAdditionalDeposits,
		AllowsPartialWithdrawal:  f.AllowsPartialWithdrawal,
		AutoRenewal:              f.AutoRenewal,
		IsActive:                 isActive,
	}
}

// validateDepositFields checks the struct tags of input plus the decimal columns of f.
func validateDepositFields(input any, f *depositdto.DepositFields) error {
	var iv inputValidator
	iv.structFields(input)

	iv.amount("minAmount", f.MinAmount, amountIntegerDigits)
	iv.decimal("interestRate", f.InterestRate, rateIntegerDigits)
	if f.MaxAmount != nil {
		iv.amount("maxAmount", *f.MaxAmount, amountIntegerDigits)
		if f.MaxAmount.LessThan(f.MinAmount) {
			iv.add("maxAmount", "gtefield", "Value must be greater than or equal to minAmount")
		}
	}

	return iv.err()
}
