package mappers

import (
	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
)

// ToGORMDeposit never carries the bank relation, so saving a deposit
// cannot write through to the banks table.
func ToGORMDeposit(deposit *domain.Deposit) *models.DepositModel {
	model := &models.DepositModel{
		ID:                       deposit.ID,
		BankID:                   deposit.BankID,
		Name:                     deposit.Name,
		Description:              deposit.Description,
		MinAmount:                deposit.MinAmount,
		InterestRate:             deposit.InterestRate,
		TermMonths:               deposit.TermMonths,
		Currency:                 deposit.Currency.String(),
		HasCapitalization:        deposit.HasCapitalization,
		AllowsAdditionalDeposits: deposit.AllowsAdditionalDeposits,
		AllowsPartialWithdrawal:  deposit.AllowsPartialWithdrawal,
		AutoRenewal:              deposit.AutoRenewal,
		IsActive:                 deposit.IsActive,
		CreatedAt:                deposit.CreatedAt,
		UpdatedAt:                deposit.UpdatedAt,
	}
	if deposit.MaxAmount != nil {
		model.MaxAmount = decimal.NewNullDecimal(*deposit.MaxAmount)
	}
	return model
}

func ToDomainDeposit(model *models.DepositModel) *domain.Deposit {
	deposit := &domain.Deposit{
		ID:                       model.ID,
		BankID:                   model.BankID,
		Name:                     model.Name,
		Description:              model.Description,
		MinAmount:                model.MinAmount,
		InterestRate:             model.InterestRate,
		TermMonths:               model.TermMonths,
		Currency:                 domain.Currency(model.Currency),
		HasCapitalization:        model.HasCapitalization,
		AllowsAdditionalDeposits: model.AllowsAdditionalDeposits,
		AllowsPartialWithdrawal:  model.AllowsPartialWithdrawal,
		AutoRenewal:              model.AutoRenewal,
		IsActive:                 model.IsActive,
		CreatedAt:                model.CreatedAt,
		UpdatedAt:                model.UpdatedAt,
	}
	if model.MaxAmount.Valid {
		maxAmount := model.MaxAmount.Decimal
		deposit.MaxAmount = &maxAmount
	}
	if model.Bank != nil {
		deposit.Bank = ToDomainBank(model.Bank)
	}
	return deposit
}
