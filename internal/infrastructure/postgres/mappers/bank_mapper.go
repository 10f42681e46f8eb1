package mappers

import (
	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/postgres/models"
)

func ToGORMBank(bank *domain.Bank) *models.BankModel {
	return &models.BankModel{
		ID:        bank.ID,
		Name:      bank.Name,
		Logo:      bank.Logo,
		CreatedAt: bank.CreatedAt,
	}
}

func ToDomainBank(model *models.BankModel) *domain.Bank {
	return &domain.Bank{
		ID:        model.ID,
		Name:      model.Name,
		Logo:      model.Logo,
		CreatedAt: model.CreatedAt,
	}
}
