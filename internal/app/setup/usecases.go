package setup

import "github.com/LavaJover/shvark-catalog-service/internal/usecase"

type UseCases struct {
	BankUsecase    usecase.BankUsecase
	DepositUsecase usecase.DepositUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	return &UseCases{
		BankUsecase: usecase.NewDefaultBankUsecase(
			deps.Repositories.BankRepo,
			deps.Repositories.DepositRepo,
			deps.BankCache,
			deps.Publisher,
		),
		DepositUsecase: usecase.NewDefaultDepositUsecase(
			deps.Repositories.DepositRepo,
			deps.Publisher,
		),
	}
}
