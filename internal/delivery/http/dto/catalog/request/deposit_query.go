package request

import (
	"strconv"
	"strings"

	"github.com/LavaJover/shvark-catalog-service/internal/domain"
	"github.com/LavaJover/shvark-catalog-service/internal/usecase"
	"github.com/shopspring/decimal"
)

// DepositListQuery is bound from the query string of GET /api/deposits.
// Filter parameters stay raw so that an empty value reads as absent.
type DepositListQuery struct {
	BankID         *string `form:"bankId"`
	Currency       *string `form:"currency"`
	MinTerm        *string `form:"minTerm"`
	MaxTerm        *string `form:"maxTerm"`
	MinAmount      *string `form:"minAmount"`
	SortBy         string  `form:"sortBy"`
	SortDescending bool    `form:"sortDescending"`
}

func (q *DepositListQuery) ToFilter() (domain.DepositFilter, error) {
	filter := domain.DepositFilter{
		SortBy:         domain.ParseSortField(q.SortBy),
		SortDescending: q.SortDescending,
	}

	var errs usecase.ValidationErrors
	if v, ok := present(q.BankID); ok {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, notInteger("bankId"))
		} else {
			filter.BankID = &id
		}
	}
	if v, ok := present(q.Currency); ok {
		currency, err := domain.ParseCurrency(v)
		if err != nil {
			errs = append(errs, usecase.ValidationError{
				Field:      "currency",
				Constraint: "oneof",
				Message:    "Value must be one of: BGN EUR USD",
			})
		} else {
			filter.Currency = &currency
		}
	}
	if v, ok := present(q.MinTerm); ok {
		term, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, notInteger("minTerm"))
		} else {
			filter.MinTermMonths = &term
		}
	}
	if v, ok := present(q.MaxTerm); ok {
		term, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, notInteger("maxTerm"))
		} else {
			filter.MaxTermMonths = &term
		}
	}
	if v, ok := present(q.MinAmount); ok {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			errs = append(errs, usecase.ValidationError{
				Field:      "minAmount",
				Constraint: "decimal",
				Message:    "Value must be a decimal number",
			})
		} else {
			filter.MinAmount = &amount
		}
	}

	if len(errs) > 0 {
		return domain.DepositFilter{}, errs
	}
	return filter, nil
}

func present(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	s := strings.TrimSpace(*v)
	return s, s != ""
}

func notInteger(field string) usecase.ValidationError {
	return usecase.ValidationError{Field: field, Constraint: "int", Message: "Value must be an integer"}
}
