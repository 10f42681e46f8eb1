package depositdto

import (
	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"github.com/shopspring/decimal"
)

// DepositFields is shared by create and update, which both overwrite the whole record.
type DepositFields struct {
	BankID      int64   `json:"bankId" validate:"gt=0"`
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`

	MinAmount    decimal.Decimal  `json:"minAmount"`
	MaxAmount    *decimal.Decimal `json:"maxAmount"`
	InterestRate decimal.Decimal  `json:"interestRate"`
	TermMonths   int              `json:"termMonths" validate:"gt=0"`
	// Empty means BGN.
	Currency domain.Currency `json:"currency" validate:"omitempty,oneof=BGN EUR USD"`

	HasCapitalization        bool `json:"hasCapitalization"`
	AllowsAdditionalDeposits bool `json:"allowsAdditionalDeposits"`
	AllowsPartialWithdrawal  bool `json:"allowsPartialWithdrawal"`
	AutoRenewal              bool `json:"autoRenewal"`
	// nil means active.
	IsActive *bool `json:"isActive"`
}

type CreateDepositInput struct {
	DepositFields
}

type UpdateDepositInput struct {
	ID int64 `json:"id" validate:"gt=0"`
	DepositFields
}
