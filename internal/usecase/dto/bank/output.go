package bankdto

import "github.com/LavaJover/shvark-catalog-service/internal/domain"

type GetBankOutput struct {
	Bank *domain.Bank
	// Every deposit of the bank, inactive ones included.
	Deposits []*domain.Deposit
}
