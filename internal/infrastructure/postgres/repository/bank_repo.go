package repository

import (
	"context"
	"errors"

	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultBankRepository struct {
	DB *gorm.DB
}

func NewDefaultBankRepository(db *gorm.DB) *DefaultBankRepository {
	return &DefaultBankRepository{
		DB: db,
	}
}

func (r *DefaultBankRepository) CreateBank(ctx context.Context, bank *domain.Bank) error {
	bankModel := mappers.ToGORMBank(bank)
	if err := r.DB.WithContext(ctx).Create(bankModel).Error; err != nil {
		return err
	}
	bank.ID = bankModel.ID
	return nil
}

func (r *DefaultBankRepository) UpdateBank(ctx context.Context, bank *domain.Bank) error {
	result := r.DB.WithContext(ctx).
		Model(&models.BankModel{ID: bank.ID}).
		Select("name", "logo").
		Updates(mappers.ToGORMBank(bank))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrBankNotFound
	}
	return nil
}

// DeleteBank removes the owned deposits explicitly as well, so the
// cascade holds even on engines running with foreign keys disabled.
func (r *DefaultBankRepository) DeleteBank(ctx context.Context, bankID int64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bank_id = ?", bankID).Delete(&models.DepositModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.BankModel{}, bankID).Error
	})
}

func (r *DefaultBankRepository) GetBankByID(ctx context.Context, bankID int64) (*domain.Bank, error) {
	var bankModel models.BankModel
	if err := r.DB.WithContext(ctx).First(&bankModel, bankID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBankNotFound
		}
		return nil, err
	}
	return mappers.ToDomainBank(&bankModel), nil
}

func (r *DefaultBankRepository) ListBanks(ctx context.Context) ([]*domain.Bank, error) {
	var bankModels []*models.BankModel
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&bankModels).Error; err != nil {
		return nil, err
	}

	banks := make([]*domain.Bank, len(bankModels))
	for i, bankModel := range bankModels {
		banks[i] = mappers.ToDomainBank(bankModel)
	}
	return banks, nil
}
