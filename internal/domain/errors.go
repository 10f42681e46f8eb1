package domain

import "errors"

var (
	ErrBankNotFound    = errors.New("bank not found")
	ErrDepositNotFound = errors.New("deposit not found")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrBankNotResolved = errors.New("deposit bank is not resolved")
)
