package response

import (
	"encoding/json"

	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"github.com/shopspring/decimal"
)

type DepositResponse struct {
	ID                       int64        `json:"id"`
	Name                     string       `json:"name"`
	Description              *string      `json:"description"`
	MinAmount                json.Number  `json:"minAmount"`
	MaxAmount                *json.Number `json:"maxAmount"`
	InterestRate             json.Number  `json:"interestRate"`
	TermMonths               int          `json:"termMonths"`
	Currency                 string       `json:"currency"`
	HasCapitalization        bool         `json:"hasCapitalization"`
	AllowsAdditionalDeposits bool         `json:"allowsAdditionalDeposits"`
	AllowsPartialWithdrawal  bool         `json:"allowsPartialWithdrawal"`
	AutoRenewal              bool         `json:"autoRenewal"`
	Bank                     BankResponse `json:"bank"`
}

// NewDepositResponse needs the owning bank to be loaded.
func NewDepositResponse(d *domain.Deposit) (DepositResponse, error) {
	if d.Bank == nil {
		return DepositResponse{}, domain.ErrBankNotResolved
	}

	var maxAmount *json.Number
	if d.MaxAmount != nil {
		n := money(*d.MaxAmount)
		maxAmount = &n
	}

	return DepositResponse{
		ID:                       d.ID,
		Name:                     d.Name,
		Description:              d.Description,
		MinAmount:                money(d.MinAmount),
		MaxAmount:                maxAmount,
		InterestRate:             money(d.InterestRate),
		TermMonths:               d.TermMonths,
		Currency:                 d.Currency.String(),
		HasCapitalization:        d.HasCapitalization,
		AllowsAdditionalDeposits: d.AllowsAdditionalDeposits,
		AllowsPartialWithdrawal:  d.AllowsPartialWithdrawal,
		AutoRenewal:              d.AutoRenewal,
		Bank:                     NewBankResponse(d.Bank),
	}, nil
}

func NewDepositResponses(deposits []*domain.Deposit) ([]DepositResponse, error) {
	out := make([]DepositResponse, len(deposits))
	for i, d := range deposits {
		resp, err := NewDepositResponse(d)
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}

// money renders with a '.' separator and two fractional digits.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}
