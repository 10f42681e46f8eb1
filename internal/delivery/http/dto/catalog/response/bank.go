package response

import "github.com/LavaJover/shvark-catalog-service/internal/domain"

// BankResponse is the minimal bank view, nested into every deposit.
type BankResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewBankResponse(bank *domain.Bank) BankResponse {
	return BankResponse{ID: bank.ID, Name: bank.Name}
}

func NewBankResponses(banks []*domain.Bank) []BankResponse {
	out := make([]BankResponse, len(banks))
	for i, b := range banks {
		out[i] = NewBankResponse(b)
	}
	return out
}

type BankDetailResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Logo     *string           `json:"logo"`
	Deposits []DepositResponse `json:"deposits"`
}
