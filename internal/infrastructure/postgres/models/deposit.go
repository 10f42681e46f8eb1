package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DepositModel struct {
	ID     int64      `gorm:"primaryKey;autoIncrement"`
	BankID int64      `gorm:"not null;index"`
	Bank   *BankModel `gorm:"foreignKey:BankID;constraint:OnDelete:CASCADE"`

	Name        string  `gorm:"size:200;not null"`
	Description *string `gorm:"size:2000"`

	MinAmount    decimal.Decimal     `gorm:"type:numeric(18,2);not null"`
	MaxAmount    decimal.NullDecimal `gorm:"type:numeric(18,2)"`
	InterestRate decimal.Decimal     `gorm:"type:numeric(5,2);not null"`
	TermMonths   int                 `gorm:"not null"`
	Currency     string              `gorm:"size:3;not null"`

	HasCapitalization        bool `gorm:"not null"`
	AllowsAdditionalDeposits bool `gorm:"not null"`
	AllowsPartialWithdrawal  bool `gorm:"not null"`
	AutoRenewal              bool `gorm:"not null"`
	IsActive                 bool `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (DepositModel) TableName() string {
	return "deposits"
}
