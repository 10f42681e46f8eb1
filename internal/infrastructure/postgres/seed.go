package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type seedDeposit struct {
	bank        int
	name        string
	description string
	minAmount   string
	rate        string
	termMonths  int
	currency    string

	capitalization     bool
	additionalDeposits bool
	partialWithdrawal  bool
	autoRenewal        bool
}

var seedBanks = []string{
	"УниКредит Булбанк",
	"Банка ДСК",
	"Пощенска банка",
	"Райфайзенбанк",
	"ОББ",
	"Първа инвестиционна банка",
}

var seedDeposits = []seedDeposit{
	{bank: 0, name: "Стандартен депозит BGN", description: "Срочен депозит в лева с фиксирана лихва", minAmount: "500", rate: "2.5", termMonths: 12, currency: "BGN", autoRenewal: true},
	{bank: 0, name: "Премиум депозит", description: "Депозит с по-висока лихва за суми над 10000 лв", minAmount: "10000", rate: "3.2", termMonths: 12, currency: "BGN", capitalization: true, autoRenewal: true},
	{bank: 1, name: "ДСК Директ депозит", description: "Депозит с онлайн управление", minAmount: "100", rate: "2.8", termMonths: 6, currency: "BGN", additionalDeposits: true},
	{bank: 1, name: "ДСК Спестовен депозит EUR", description: "Депозит в евро за дългосрочни спестявания", minAmount: "500", rate: "1.8", termMonths: 24, currency: "EUR", capitalization: true, autoRenewal: true},
	{bank: 2, name: "Гъвкав депозит", description: "Депозит с възможност за частично теглене", minAmount: "200", rate: "2.2", termMonths: 12, currency: "BGN", partialWithdrawal: true, additionalDeposits: true},
	{bank: 3, name: "Райфайзен Стандарт", description: "Класически срочен депозит", minAmount: "1000", rate: "2.6", termMonths: 12, currency: "BGN"},
	{bank: 3, name: "Райфайзен USD депозит", description: "Депозит в щатски долари", minAmount: "500", rate: "3.5", termMonths: 12, currency: "USD", capitalization: true},
	{bank: 4, name: "ОББ Растящ депозит", description: "Депозит с нарастваща лихва", minAmount: "500", rate: "2.9", termMonths: 18, currency: "BGN", capitalization: true, autoRenewal: true},
	{bank: 5, name: "Fibank Промо депозит", description: "Промоционален депозит с атрактивна лихва", minAmount: "1000", rate: "3.8", termMonths: 6, currency: "BGN"},
	{bank: 5, name: "Fibank Дългосрочен", description: "Депозит за 3 години с висока лихва", minAmount: "5000", rate: "4.2", termMonths: 36, currency: "BGN", capitalization: true, autoRenewal: true},
}

// SeedCatalog fills an empty catalog with the sample banks and deposits.
// It reports whether anything was inserted.
func SeedCatalog(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.BankModel{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	now := time.Now().UTC()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		banks := make([]*models.BankModel, len(seedBanks))
		for i, name := range seedBanks {
			banks[i] = &models.BankModel{Name: name, CreatedAt: now}
		}
		if err := tx.Create(&banks).Error; err != nil {
			return fmt.Errorf("seed banks: %w", err)
		}

		deposits := make([]*models.DepositModel, len(seedDeposits))
		for i, d := range seedDeposits {
			description := d.description
			deposits[i] = &models.DepositModel{
				BankID:                   banks[d.bank].ID,
				Name:                     d.name,
				Description:              &description,
				MinAmount:                decimal.RequireFromString(d.minAmount),
				InterestRate:             decimal.RequireFromString(d.rate),
				TermMonths:               d.termMonths,
				Currency:                 d.currency,
				HasCapitalization:        d.capitalization,
				AllowsAdditionalDeposits: d.additionalDeposits,
				AllowsPartialWithdrawal:  d.partialWithdrawal,
				AutoRenewal:              d.autoRenewal,
				IsActive:                 true,
				CreatedAt:                now,
				UpdatedAt:                now,
			}
		}
		if err := tx.Create(&deposits).Error; err != nil {
			return fmt.Errorf("seed deposits: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
